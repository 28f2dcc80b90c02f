package influx

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
	return constants.FormatInflux
}

func (t *target) TargetSpecificFlags(flagPrefix string, flagSet *pflag.FlagSet) {
	flagSet.String(flagPrefix+"url", "http://localhost:8086", "InfluxDB URL")
	flagSet.String(flagPrefix+"user", "", "User to connect to InfluxDB as (leave blank if authentication is disabled)")
	flagSet.String(flagPrefix+"pass", "", "Password for the user connecting to InfluxDB")
}

func (t *target) Bootstrap(flagPrefix string, v *viper.Viper) (targets.DBCreator, error) {
	return &dbCreator{opts: &ConnectionOptions{
		URL:  v.GetString(flagPrefix + "url"),
		User: v.GetString(flagPrefix + "user"),
		Pass: v.GetString(flagPrefix + "pass"),
	}}, nil
}
