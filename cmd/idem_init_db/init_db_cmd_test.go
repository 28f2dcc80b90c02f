package main

import (
	"testing"

	"github.com/blagojts/viper"

	"github.com/discretewater/idem/pkg/targets/constants"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestInitDBCMDHasTargetSubcommands(t *testing.T) {
	resetViper(t)
	cmd, err := initInitDBCMD()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		found[sub.Name()] = true
	}
	for _, format := range constants.SupportedFormats() {
		if !found[format] {
			t.Errorf("missing subcommand for target %s", format)
		}
	}
	if !found["config"] {
		t.Error("missing config subcommand")
	}
}

func TestRunnerFlagsOnRootCommand(t *testing.T) {
	resetViper(t)
	cmd, err := initInitDBCMD()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"db-name", "do-create-db", "do-abort-on-exist", "do-drop-existing", "debug", "results-file", "config"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("missing root flag %s", name)
		}
	}
}

func TestTargetSubcommandHasPrefixedFlags(t *testing.T) {
	resetViper(t)
	cmd, err := initInitDBCMD()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub, _, err := cmd.Find([]string{constants.FormatPostgres})
	if err != nil {
		t.Fatalf("could not find postgres subcommand: %v", err)
	}
	if sub.PersistentFlags().Lookup("bootstrap.db-specific.host") == nil {
		t.Error("postgres subcommand should register its connection flags under the db-specific prefix")
	}
}

func TestExampleConfigStructure(t *testing.T) {
	cfg := exampleConfigFor(constants.FormatPostgres)
	if got := cfg["db-name"]; got != "idem_test" {
		t.Errorf("incorrect default db-name: %v", got)
	}
	if got := cfg["do-create-db"]; got != true {
		t.Errorf("creation should default to on, got %v", got)
	}

	nested, ok := cfg["bootstrap"].(map[string]interface{})
	if !ok {
		t.Fatal("missing bootstrap section")
	}
	dbSpecific, ok := nested["db-specific"].(map[string]interface{})
	if !ok {
		t.Fatal("missing db-specific section")
	}
	if got := dbSpecific["host"]; got != "localhost" {
		t.Errorf("incorrect default host: %v", got)
	}
	if got := dbSpecific["admin-db-name"]; got != "postgres" {
		t.Errorf("incorrect default admin database: %v", got)
	}
}
