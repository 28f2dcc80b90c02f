package main

import (
	"fmt"
	"log"
	"os"

	"github.com/blagojts/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/discretewater/idem/bootstrap"
	"github.com/discretewater/idem/internal/utils"
	"github.com/discretewater/idem/pkg/targets"
	"github.com/discretewater/idem/pkg/targets/constants"
	"github.com/discretewater/idem/pkg/targets/initializers"
)

const dbSpecificFlagPrefix = "bootstrap.db-specific."

var fatal = log.Fatalf

type cmdRunner func(*cobra.Command, []string)

func initInitDBCMD() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:              "idem_init_db",
		Short:            "Ensure a database exists on a specified target server",
		PersistentPreRun: initViperConfig,
	}
	cmd.PersistentFlags().AddFlagSet(runnerFlags())
	err := viper.BindPFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	if err != nil {
		return nil, fmt.Errorf("could not bind flags to configuration: %v", err)
	}

	subCommands := initTargetSubCommands()
	cmd.AddCommand(subCommands...)
	cmd.AddCommand(initConfigCmd())
	return cmd, nil
}

func runnerFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("", pflag.ContinueOnError)
	bootstrap.RunnerConfig{}.AddToFlagSet(fs)
	return fs
}

func initTargetSubCommands() []*cobra.Command {
	allFormats := constants.SupportedFormats()
	commands := make([]*cobra.Command, len(allFormats))
	for i, format := range allFormats {
		target := initializers.GetTarget(format)
		cmd := &cobra.Command{
			Use:   format,
			Short: "Ensure a database exists on " + format,
			Run:   createRunBootstrap(target),
		}

		target.TargetSpecificFlags(dbSpecificFlagPrefix, cmd.PersistentFlags())
		commands[i] = cmd
	}

	return commands
}

func createRunBootstrap(target targets.ImplementedTarget) cmdRunner {
	return func(cmd *cobra.Command, args []string) {
		if err := viper.BindPFlags(cmd.PersistentFlags()); err != nil {
			panic(fmt.Errorf("could not bind db-specific flags for %s: %v", target.TargetName(), err))
		}
		runner, dbc, err := parseConfig(target, viper.GetViper())
		if err != nil {
			panic(err)
		}

		fmt.Printf("Connecting to %s...\n", target.TargetName())
		if _, err := runner.Run(dbc); err != nil {
			if bootstrap.IsConnectFailure(err) {
				fmt.Printf("Error connecting to %s: %v\n", target.TargetName(), err)
				fmt.Println("Tip: Ensure docker container is running (docker-compose up -d)")
				os.Exit(1)
			}
			fatal("bootstrap failed: %v", err)
		}
		fmt.Println("Done.")
	}
}

func initViperConfig(*cobra.Command, []string) {
	if err := utils.SetupConfigFile(cfgFile); err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}
	if viper.ConfigFileUsed() != "" {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
