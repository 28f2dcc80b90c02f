package postgres

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
	return constants.FormatPostgres
}

func (t *target) TargetSpecificFlags(flagPrefix string, flagSet *pflag.FlagSet) {
	RegisterConnectionFlags(flagPrefix, flagSet)
}

// RegisterConnectionFlags adds the PostgreSQL wire flags under flagPrefix. The
// timescaledb target registers the same set.
func RegisterConnectionFlags(flagPrefix string, flagSet *pflag.FlagSet) {
	flagSet.String(flagPrefix+"postgres", "sslmode=disable",
		"String of additional PostgreSQL connection parameters, e.g., 'sslmode=disable'. Parameters for host and database will be ignored.")
	flagSet.String(flagPrefix+"host", "localhost", "Hostname of the PostgreSQL server")
	flagSet.String(flagPrefix+"port", "5432", "Which port to connect to on the database host")
	flagSet.String(flagPrefix+"user", "postgres", "User to connect to PostgreSQL as")
	flagSet.String(flagPrefix+"pass", "password", "Password for the user connecting to PostgreSQL (leave blank if not password protected)")
	flagSet.String(flagPrefix+"admin-db-name", "postgres", "Maintenance database to issue the administrative statements against")
	flagSet.Bool(flagPrefix+"force-text-format", false, "Send/receive data in text format")
}

func (t *target) Bootstrap(flagPrefix string, v *viper.Viper) (targets.DBCreator, error) {
	return NewCreator(OptionsFromViper(flagPrefix, v)), nil
}

// OptionsFromViper collects the target connection options registered under
// flagPrefix. Shared with the timescaledb target, which layers on top of the
// PostgreSQL wire options.
func OptionsFromViper(flagPrefix string, v *viper.Viper) *ConnectionOptions {
	return &ConnectionOptions{
		PostgresConnect: v.GetString(flagPrefix + "postgres"),
		Host:            v.GetString(flagPrefix + "host"),
		Port:            v.GetString(flagPrefix + "port"),
		User:            v.GetString(flagPrefix + "user"),
		Pass:            v.GetString(flagPrefix + "pass"),
		AdminDBName:     v.GetString(flagPrefix + "admin-db-name"),
		ForceTextFormat: v.GetBool(flagPrefix + "force-text-format"),
	}
}
