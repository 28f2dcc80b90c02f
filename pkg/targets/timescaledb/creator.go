package timescaledb

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/discretewater/idem/pkg/targets/postgres"
)

// dbCreator administers databases on a TimescaleDB server. At the server level
// the work is identical to plain PostgreSQL; after a database is created the
// timescaledb extension is installed into it so hypertable helpers are
// available to whatever connects next.
type dbCreator struct {
	*postgres.Creator
	opts *postgres.ConnectionOptions
}

func newCreator(opts *postgres.ConnectionOptions) *dbCreator {
	return &dbCreator{Creator: postgres.NewCreator(opts), opts: opts}
}

// PostCreateDB connects to the freshly created database and installs the
// extension. The maintenance connection cannot be reused here because CREATE
// EXTENSION applies to the database it runs in.
func (d *dbCreator) PostCreateDB(dbName string) error {
	db, err := sql.Open(d.opts.DriverName(), d.opts.GetConnectString(dbName))
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("CREATE EXTENSION IF NOT EXISTS timescaledb CASCADE"); err != nil {
		return errors.Wrapf(err, "could not install timescaledb extension in %s", dbName)
	}
	return nil
}
