package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	_ "github.com/mattn/go-sqlite3"
)

// ConnectionOptions locate the directory SQLite database files live in. Each
// database is a single <name>.db file inside it.
type ConnectionOptions struct {
	Path string `yaml:"path" mapstructure:"path" json:"path"`
}

type dbCreator struct {
	opts *ConnectionOptions
}

// Init verifies the database directory is present. A missing directory is the
// file-backed analogue of an unreachable server.
func (d *dbCreator) Init() error {
	info, err := os.Stat(d.opts.Path)
	if err != nil {
		return errors.Wrapf(err, "could not open database directory %s", d.opts.Path)
	}
	if !info.IsDir() {
		return errors.Errorf("database path %s is not a directory", d.opts.Path)
	}
	return nil
}

func (d *dbCreator) dbPath(dbName string) string {
	return filepath.Join(d.opts.Path, dbName+".db")
}

func (d *dbCreator) DBExists(dbName string) (bool, error) {
	_, err := os.Stat(d.dbPath(dbName))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateDB materializes an empty database file. The driver only touches the
// file once a connection does real work, so ping it.
func (d *dbCreator) CreateDB(dbName string) error {
	db, err := sql.Open("sqlite3", d.dbPath(dbName))
	if err != nil {
		return errors.Wrapf(err, "could not create database %s", dbName)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return errors.Wrapf(err, "could not create database %s", dbName)
	}
	return nil
}

func (d *dbCreator) RemoveOldDB(dbName string) error {
	if err := os.Remove(d.dbPath(dbName)); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "could not drop database %s", dbName)
	}
	return nil
}
