package utils

import (
	"strings"

	"github.com/blagojts/viper"
)

// SetupConfigFile wires up the configuration sources beyond flags: IDEM_*
// environment variables and an optional yaml config file. Flag values bound by
// the command take precedence, followed by the environment, the config file
// and flag defaults.
func SetupConfigFile(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("IDEM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}
