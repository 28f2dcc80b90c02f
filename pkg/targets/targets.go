package targets

import (
	"github.com/blagojts/viper"
	"github.com/spf13/pflag"
)

// ImplementedTarget is a database engine the bootstrapper knows how to
// administer. Each target contributes its own connection flags and builds
// the DBCreator that talks to its server.
type ImplementedTarget interface {
	Bootstrap(flagPrefix string, v *viper.Viper) (DBCreator, error)
	TargetSpecificFlags(flagPrefix string, flagSet *pflag.FlagSet)
	TargetName() string
}
