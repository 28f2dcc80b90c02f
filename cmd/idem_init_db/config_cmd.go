package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/discretewater/idem/bootstrap"
	"github.com/discretewater/idem/internal/utils"
	"github.com/discretewater/idem/pkg/targets/constants"
	"github.com/discretewater/idem/pkg/targets/initializers"
)

const exampleConfigFile = "./config.yaml"

func initConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Generate an example config yaml file for a target",
		Run:   runGenerateConfig,
	}
	cmd.Flags().String("target", constants.FormatPostgres, "Target database the example config is generated for")
	return cmd
}

func runGenerateConfig(cmd *cobra.Command, _ []string) {
	targetName, err := cmd.Flags().GetString("target")
	if err != nil {
		fatal("could not read target flag: %v", err)
	}
	if !utils.IsIn(targetName, constants.SupportedFormats()) {
		fatal("invalid target %s, supported: %s", targetName, strings.Join(constants.SupportedFormats(), ","))
	}

	contents, err := yaml.Marshal(exampleConfigFor(targetName))
	if err != nil {
		fatal("could not render example config: %v", err)
	}
	if err := os.WriteFile(exampleConfigFile, contents, 0644); err != nil {
		fatal("could not write example config: %v", err)
	}
	fmt.Println("Wrote example config to", exampleConfigFile)
}

// exampleConfigFor collects the flag defaults of the runner and of one target
// into the nesting the config file uses.
func exampleConfigFor(targetName string) map[string]interface{} {
	runnerFlagSet := pflag.NewFlagSet("runner", pflag.ContinueOnError)
	bootstrap.RunnerConfig{}.AddToFlagSet(runnerFlagSet)

	dbFlagSet := pflag.NewFlagSet("db-specific", pflag.ContinueOnError)
	initializers.GetTarget(targetName).TargetSpecificFlags("", dbFlagSet)

	exampleConfig := flagsToMap(runnerFlagSet)
	exampleConfig["bootstrap"] = map[string]interface{}{
		"db-specific": flagsToMap(dbFlagSet),
	}
	return exampleConfig
}

func flagsToMap(fs *pflag.FlagSet) map[string]interface{} {
	m := make(map[string]interface{})
	fs.VisitAll(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "bool":
			v, _ := fs.GetBool(f.Name)
			m[f.Name] = v
		case "int":
			v, _ := fs.GetInt(f.Name)
			m[f.Name] = v
		default:
			m[f.Name] = f.Value.String()
		}
	})
	return m
}
