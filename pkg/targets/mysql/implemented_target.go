package mysql

import (
	"github.com/blagojts/viper"
	"github.com/spf13/pflag"

	"github.com/discretewater/idem/pkg/targets"
	"github.com/discretewater/idem/pkg/targets/constants"
)

func NewTarget() targets.ImplementedTarget {
	return &target{}
}

type target struct{}

func (t *target) TargetName() string {
	return constants.FormatMySQL
}

func (t *target) TargetSpecificFlags(flagPrefix string, flagSet *pflag.FlagSet) {
	flagSet.String(flagPrefix+"host", "localhost", "Hostname of the MySQL server")
	flagSet.String(flagPrefix+"port", "3306", "Which port to connect to on the database host")
	flagSet.String(flagPrefix+"user", "root", "User to connect to MySQL as")
	flagSet.String(flagPrefix+"pass", "", "Password for the user connecting to MySQL (leave blank if not password protected)")
}

func (t *target) Bootstrap(flagPrefix string, v *viper.Viper) (targets.DBCreator, error) {
	return &dbCreator{opts: &ConnectionOptions{
		Host: v.GetString(flagPrefix + "host"),
		Port: v.GetString(flagPrefix + "port"),
		User: v.GetString(flagPrefix + "user"),
		Pass: v.GetString(flagPrefix + "pass"),
	}}, nil
}
