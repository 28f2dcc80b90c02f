package bootstrap

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"

	"github.com/discretewater/idem/pkg/targets"
)

const errDBExistsFmt = "database \"%s\" exists: aborting."

var printFn = fmt.Printf

// RunnerConfig contains all the configuration for a bootstrap pass.
type RunnerConfig struct {
	DBName         string `yaml:"db-name" mapstructure:"db-name" json:"db-name"`
	DoCreateDB     bool   `yaml:"do-create-db" mapstructure:"do-create-db" json:"do-create-db"`
	DoAbortOnExist bool   `yaml:"do-abort-on-exist" mapstructure:"do-abort-on-exist" json:"do-abort-on-exist"`
	DoDropExisting bool   `yaml:"do-drop-existing" mapstructure:"do-drop-existing" json:"do-drop-existing"`
	Debug          int    `yaml:"debug" mapstructure:"debug" json:"debug"`
	ResultsFile    string `yaml:"results-file" mapstructure:"results-file" json:"results-file"`
}

// AddToFlagSet adds the runner flags with their defaults to fs.
func (c RunnerConfig) AddToFlagSet(fs *pflag.FlagSet) {
	fs.String("db-name", "idem_test", "Name of database to ensure exists")
	fs.Bool("do-create-db", true, "Whether to create the database if it is missing. Set this flag to false to only check.")
	fs.Bool("do-abort-on-exist", false, "Whether to abort if a database with the given name already exists.")
	fs.Bool("do-drop-existing", false, "Whether to drop an existing database with the given name and recreate it from scratch.")
	fs.Int("debug", 0, "Whether to print debug messages.")
	fs.String("results-file", "", "Write the bootstrap results summary json to this file")
}

// Runner drives a target's DBCreator through a single bootstrap pass.
type Runner interface {
	DatabaseName() string
	Run(dbc targets.DBCreator) (*Result, error)
}

type commonRunner struct {
	RunnerConfig
}

// GetRunner returns a Runner for the given configuration.
func GetRunner(c RunnerConfig) Runner {
	return &commonRunner{RunnerConfig: c}
}

func (r *commonRunner) DatabaseName() string {
	return r.DBName
}

// connectError marks failures from the connect phase so callers can tell an
// unreachable server apart from a failed administrative statement.
type connectError struct {
	cause error
}

func (e *connectError) Error() string { return e.cause.Error() }
func (e *connectError) Cause() error  { return e.cause }
func (e *connectError) Unwrap() error { return e.cause }

// IsConnectFailure reports whether err came from connecting to the server.
func IsConnectFailure(err error) bool {
	_, ok := err.(*connectError)
	return ok
}

// Run connects to the server, checks whether the configured database exists
// and creates it if it is missing. Databases that already exist are left
// untouched unless DoDropExisting asks for a clean slate, so a second pass
// against the same server is a no-op.
func (r *commonRunner) Run(dbc targets.DBCreator) (*Result, error) {
	if r.Debug > 0 {
		r.echoConfig()
	}

	start := time.Now()
	if err := dbc.Init(); err != nil {
		return nil, &connectError{cause: err}
	}
	closeFn := func() error { return nil }
	if dbcc, ok := dbc.(targets.DBCreatorCloser); ok {
		closeFn = dbcc.Close
	}
	defer func() {
		if err := closeFn(); err != nil {
			printFn("could not close connection: %v\n", err)
		}
	}()

	exists, err := dbc.DBExists(r.DBName)
	if err != nil {
		return nil, err
	}
	if exists && r.DoAbortOnExist {
		return nil, errors.Errorf(errDBExistsFmt, r.DBName)
	}

	outcome := OutcomeAlreadyExists
	created := false
	switch {
	case !r.DoCreateDB:
		if exists {
			printFn("Database '%s' already exists.\n", r.DBName)
		} else {
			printFn("Database '%s' does not exist.\n", r.DBName)
			outcome = OutcomeMissing
		}
	case exists && r.DoDropExisting:
		printFn("Database '%s' already exists. Dropping and recreating...\n", r.DBName)
		if err := dbc.RemoveOldDB(r.DBName); err != nil {
			return nil, err
		}
		if err := dbc.CreateDB(r.DBName); err != nil {
			return nil, err
		}
		printFn("Database '%s' created successfully.\n", r.DBName)
		outcome = OutcomeDroppedAndCreated
		created = true
	case exists:
		printFn("Database '%s' already exists.\n", r.DBName)
	default:
		printFn("Database '%s' does not exist. Creating...\n", r.DBName)
		if err := dbc.CreateDB(r.DBName); err != nil {
			return nil, err
		}
		printFn("Database '%s' created successfully.\n", r.DBName)
		outcome = OutcomeCreated
		created = true
	}

	if created {
		if dbcp, ok := dbc.(targets.DBCreatorPost); ok {
			if err := dbcp.PostCreateDB(r.DBName); err != nil {
				return nil, errors.Wrap(err, "could not execute PostCreateDB")
			}
		}
	}

	end := time.Now()
	took := end.Sub(start)
	r.summary(took)

	result := &Result{
		ResultFormatVersion: ResultFormatVersion,
		RunnerConfig:        r.RunnerConfig,
		Existed:             exists,
		Outcome:             outcome,
		StartTime:           start.Unix(),
		EndTime:             end.Unix(),
		DurationMillis:      took.Milliseconds(),
	}
	if r.ResultsFile != "" {
		if err := r.saveResult(result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *commonRunner) echoConfig() {
	c, err := yaml.Marshal(r.RunnerConfig)
	if err != nil {
		printFn("could not print config: %v\n", err)
		return
	}
	printFn("Bootstrap configuration:\n%s", c)
}

func (r *commonRunner) summary(took time.Duration) {
	printFn("\nSummary:\n")
	printFn("ensured database %s in %0.3fsec\n", r.DBName, took.Seconds())
}

func (r *commonRunner) saveResult(result *Result) error {
	printFn("Saving results json file to %s\n", r.ResultsFile)
	file, err := json.MarshalIndent(result, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.ResultsFile, file, 0644)
}
