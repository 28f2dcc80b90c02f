package mongo

import (
	"time"

	"github.com/globalsign/mgo"
	"github.com/pkg/errors"
)

const dialTimeout = 5 * time.Second

// markerCollection is created inside a new database to materialize it. The
// server only lists a database once it holds at least one collection.
const markerCollection = "bootstrap"

// ConnectionOptions holds the MongoDB server coordinates used for
// administrative commands.
type ConnectionOptions struct {
	URL string `yaml:"url" mapstructure:"url" json:"url"`
}

type dbCreator struct {
	opts    *ConnectionOptions
	session *mgo.Session
}

func (d *dbCreator) Init() error {
	session, err := mgo.DialWithTimeout(d.opts.URL, dialTimeout)
	if err != nil {
		return errors.Wrapf(err, "could not connect to MongoDB at %s", d.opts.URL)
	}
	d.session = session
	return nil
}

func (d *dbCreator) Close() error {
	if d.session != nil {
		d.session.Close()
	}
	return nil
}

func (d *dbCreator) DBExists(dbName string) (bool, error) {
	names, err := d.session.DatabaseNames()
	if err != nil {
		return false, errors.Wrap(err, "could not list databases")
	}
	for _, name := range names {
		if name == dbName {
			return true, nil
		}
	}
	return false, nil
}

func (d *dbCreator) CreateDB(dbName string) error {
	if err := d.session.DB(dbName).C(markerCollection).Create(&mgo.CollectionInfo{}); err != nil {
		return errors.Wrapf(err, "could not create database %s", dbName)
	}
	return nil
}

func (d *dbCreator) RemoveOldDB(dbName string) error {
	if err := d.session.DB(dbName).DropDatabase(); err != nil {
		return errors.Wrapf(err, "could not drop database %s", dbName)
	}
	return nil
}
