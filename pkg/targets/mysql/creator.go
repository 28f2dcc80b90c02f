package mysql

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/go-sql-driver/mysql"
)

// ConnectionOptions holds the MySQL server coordinates used for
// administrative statements.
type ConnectionOptions struct {
	Host string `yaml:"host" mapstructure:"host" json:"host"`
	Port string `yaml:"port" mapstructure:"port" json:"port"`
	User string `yaml:"user" mapstructure:"user" json:"user"`
	Pass string `yaml:"pass" mapstructure:"pass" json:"-"`
}

// adminDSN connects to the server without selecting a schema, so the target
// database never has to exist for the connection to succeed.
func (o *ConnectionOptions) adminDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/", o.User, o.Pass, o.Host, o.Port)
}

type dbCreator struct {
	opts *ConnectionOptions
	db   *sqlx.DB
}

func (d *dbCreator) Init() error {
	db, err := sqlx.Connect("mysql", d.opts.adminDSN())
	if err != nil {
		return errors.Wrap(err, "could not connect to MySQL server")
	}
	d.db = db
	return nil
}

func (d *dbCreator) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}

func (d *dbCreator) DBExists(dbName string) (bool, error) {
	var name string
	err := d.db.Get(&name, "SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?", dbName)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "could not query INFORMATION_SCHEMA")
	}
	return true, nil
}

func (d *dbCreator) CreateDB(dbName string) error {
	if _, err := d.db.Exec("CREATE DATABASE " + quoteIdent(dbName)); err != nil {
		return errors.Wrapf(err, "could not create database %s", dbName)
	}
	return nil
}

func (d *dbCreator) RemoveOldDB(dbName string) error {
	if _, err := d.db.Exec("DROP DATABASE IF EXISTS " + quoteIdent(dbName)); err != nil {
		return errors.Wrapf(err, "could not drop database %s", dbName)
	}
	return nil
}

// quoteIdent quotes a schema object name for MySQL.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
