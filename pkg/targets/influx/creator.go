package influx

import (
	"fmt"
	"time"

	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/influxdata/influxql"
	"github.com/pkg/errors"
)

const pingTimeout = 5 * time.Second

// ConnectionOptions holds the InfluxDB server coordinates used for
// administrative queries.
type ConnectionOptions struct {
	URL  string `yaml:"url" mapstructure:"url" json:"url"`
	User string `yaml:"user" mapstructure:"user" json:"user"`
	Pass string `yaml:"pass" mapstructure:"pass" json:"-"`
}

type dbCreator struct {
	opts   *ConnectionOptions
	client client.Client
}

func (d *dbCreator) Init() error {
	c, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     d.opts.URL,
		Username: d.opts.User,
		Password: d.opts.Pass,
	})
	if err != nil {
		return errors.Wrap(err, "could not create InfluxDB client")
	}
	if _, _, err := c.Ping(pingTimeout); err != nil {
		c.Close()
		return errors.Wrapf(err, "could not ping InfluxDB at %s", d.opts.URL)
	}
	d.client = c
	return nil
}

func (d *dbCreator) Close() error {
	if d.client == nil {
		return nil
	}
	return d.client.Close()
}

// query runs a single InfluxQL statement and folds statement-level errors into
// the returned error.
func (d *dbCreator) query(cmd string) (*client.Response, error) {
	resp, err := d.client.Query(client.NewQuery(cmd, "", ""))
	if err != nil {
		return nil, err
	}
	if err := resp.Error(); err != nil {
		return nil, err
	}
	return resp, nil
}

func (d *dbCreator) DBExists(dbName string) (bool, error) {
	resp, err := d.query("SHOW DATABASES")
	if err != nil {
		return false, errors.Wrap(err, "could not list databases")
	}
	for _, name := range databasesFromResponse(resp) {
		if name == dbName {
			return true, nil
		}
	}
	return false, nil
}

func (d *dbCreator) CreateDB(dbName string) error {
	if _, err := d.query(fmt.Sprintf("CREATE DATABASE %s", influxql.QuoteIdent(dbName))); err != nil {
		return errors.Wrapf(err, "could not create database %s", dbName)
	}
	return nil
}

func (d *dbCreator) RemoveOldDB(dbName string) error {
	if _, err := d.query(fmt.Sprintf("DROP DATABASE %s", influxql.QuoteIdent(dbName))); err != nil {
		return errors.Wrapf(err, "could not drop database %s", dbName)
	}
	return nil
}

// databasesFromResponse extracts the database names from a SHOW DATABASES
// response. The server returns them as single-column rows.
func databasesFromResponse(resp *client.Response) []string {
	var names []string
	for _, result := range resp.Results {
		for _, row := range result.Series {
			for _, values := range row.Values {
				if len(values) == 0 {
					continue
				}
				if name, ok := values[0].(string); ok {
					names = append(names, name)
				}
			}
		}
	}
	return names
}
