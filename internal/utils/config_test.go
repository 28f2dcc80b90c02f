package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blagojts/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestSetupConfigFileReadsEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("IDEM_DB_NAME", "from_env")
	t.Setenv("IDEM_BOOTSTRAP_DB_SPECIFIC_HOST", "db.example.com")

	if err := SetupConfigFile(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := viper.GetString("db-name"); got != "from_env" {
		t.Errorf("db-name not read from the environment: got %q", got)
	}
	if got := viper.GetString("bootstrap.db-specific.host"); got != "db.example.com" {
		t.Errorf("db-specific host not read from the environment: got %q", got)
	}
}

func TestSetupConfigFileReadsFile(t *testing.T) {
	resetViper(t)
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte("db-name: from_file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := SetupConfigFile(cfgFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := viper.GetString("db-name"); got != "from_file" {
		t.Errorf("db-name not read from the config file: got %q", got)
	}
}

func TestSetupConfigFileEnvBeatsFile(t *testing.T) {
	resetViper(t)
	cfgFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgFile, []byte("db-name: from_file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("IDEM_DB_NAME", "from_env")

	if err := SetupConfigFile(cfgFile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := viper.GetString("db-name"); got != "from_env" {
		t.Errorf("environment should take precedence over the config file: got %q", got)
	}
}

func TestSetupConfigFileMissingExplicitFile(t *testing.T) {
	resetViper(t)
	err := SetupConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for an explicitly named config file that does not exist")
	}
}

func TestSetupConfigFileWithoutAnyFile(t *testing.T) {
	resetViper(t)
	if err := SetupConfigFile(""); err != nil {
		t.Fatalf("a missing config file in the search path should not be an error, got: %v", err)
	}
}
