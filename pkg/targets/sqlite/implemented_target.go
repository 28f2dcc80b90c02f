package sqlite

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
	return constants.FormatSQLite
}

func (t *target) TargetSpecificFlags(flagPrefix string, flagSet *pflag.FlagSet) {
	flagSet.String(flagPrefix+"path", ".", "Directory the SQLite database files live in")
}

func (t *target) Bootstrap(flagPrefix string, v *viper.Viper) (targets.DBCreator, error) {
	return &dbCreator{opts: &ConnectionOptions{
		Path: v.GetString(flagPrefix + "path"),
	}}, nil
}
