package postgres

import (
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	_ "github.com/jackc/pgx/v4/stdlib"
)

const pgxDriver = "pgx"
const pqDriver = "postgres"

// ConnectionOptions holds the server coordinates and connection behavior used
// for administrative statements.
type ConnectionOptions struct {
	// PostgresConnect is a string of additional libpq connection parameters.
	// Parameters for host, dbname and user are ignored.
	PostgresConnect string `yaml:"postgres" mapstructure:"postgres" json:"postgres"`

	Host string `yaml:"host" mapstructure:"host" json:"host"`
	Port string `yaml:"port" mapstructure:"port" json:"port"`
	User string `yaml:"user" mapstructure:"user" json:"user"`
	Pass string `yaml:"pass" mapstructure:"pass" json:"-"`

	// AdminDBName is the maintenance database the server-level statements are
	// issued against. The target database never has to exist for it to work.
	AdminDBName string `yaml:"admin-db-name" mapstructure:"admin-db-name" json:"admin-db-name"`

	// ForceTextFormat switches from the pgx driver to the pq driver and turns
	// off prepared statements and binary parameters.
	ForceTextFormat bool `yaml:"force-text-format" mapstructure:"force-text-format" json:"force-text-format"`
}

// DriverName returns the database/sql driver selected by the options.
func (o *ConnectionOptions) DriverName() string {
	if o.ForceTextFormat {
		return pqDriver
	}
	return pgxDriver
}

// GetConnectString builds the libpq connection string for dbName. Host, dbname
// and user occurrences in PostgresConnect are discarded so the explicit
// options always win.
func (o *ConnectionOptions) GetConnectString(dbName string) string {
	re := regexp.MustCompile(`(host|dbname|user)=\S*\b`)
	connectString := strings.TrimSpace(re.ReplaceAllString(o.PostgresConnect, ""))
	connectString = fmt.Sprintf("host=%s dbname=%s user=%s %s", o.Host, dbName, o.User, connectString)
	if len(o.Port) > 0 {
		connectString = fmt.Sprintf("%s port=%s", connectString, o.Port)
	}
	if len(o.Pass) > 0 {
		connectString = fmt.Sprintf("%s password=%s", connectString, o.Pass)
	}
	if o.ForceTextFormat {
		connectString = fmt.Sprintf("%s disable_prepared_binary_result=yes binary_parameters=no", connectString)
	}

	return connectString
}

// Creator administers databases on a PostgreSQL server over a connection to
// the maintenance database.
type Creator struct {
	opts   *ConnectionOptions
	driver string
	db     *sql.DB
}

// NewCreator returns a Creator for the server described by opts.
func NewCreator(opts *ConnectionOptions) *Creator {
	return &Creator{opts: opts, driver: opts.DriverName()}
}

// Init opens the connection to the maintenance database and verifies the
// server is reachable. Statements issued over the connection run in autocommit
// mode; CREATE DATABASE refuses to run inside a transaction block.
func (c *Creator) Init() error {
	db, err := sql.Open(c.driver, c.opts.GetConnectString(c.opts.AdminDBName))
	if err != nil {
		return err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return errors.Wrapf(err, "could not connect to maintenance database %s", c.opts.AdminDBName)
	}
	c.db = db
	return nil
}

// Close releases the maintenance connection.
func (c *Creator) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// DBExists reports whether a database named dbName is present in the server
// catalog.
func (c *Creator) DBExists(dbName string) (bool, error) {
	r, err := c.db.Query("SELECT 1 FROM pg_database WHERE datname = $1", dbName)
	if err != nil {
		return false, errors.Wrap(err, "could not query pg_database")
	}
	defer r.Close()
	return r.Next(), r.Err()
}

// CreateDB creates the database named dbName.
func (c *Creator) CreateDB(dbName string) error {
	if _, err := c.db.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName)); err != nil {
		return errors.Wrapf(err, "could not create database %s", dbName)
	}
	return nil
}

// RemoveOldDB drops the database named dbName if it is present.
func (c *Creator) RemoveOldDB(dbName string) error {
	if _, err := c.db.Exec("DROP DATABASE IF EXISTS " + pq.QuoteIdentifier(dbName)); err != nil {
		return errors.Wrapf(err, "could not drop database %s", dbName)
	}
	return nil
}
