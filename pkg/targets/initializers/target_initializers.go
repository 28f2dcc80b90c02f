package initializers

import (
	"fmt"
	"strings"

	"github.com/discretewater/idem/pkg/targets"
	"github.com/discretewater/idem/pkg/targets/constants"
	"github.com/discretewater/idem/pkg/targets/influx"
	"github.com/discretewater/idem/pkg/targets/mongo"
	"github.com/discretewater/idem/pkg/targets/mysql"
	"github.com/discretewater/idem/pkg/targets/postgres"
	"github.com/discretewater/idem/pkg/targets/sqlite"
	"github.com/discretewater/idem/pkg/targets/timescaledb"
)

// GetTarget returns the implemented target for one of the supported formats.
func GetTarget(format string) targets.ImplementedTarget {
	switch format {
	case constants.FormatPostgres:
		return postgres.NewTarget()
	case constants.FormatTimescaleDB:
		return timescaledb.NewTarget()
	case constants.FormatMySQL:
		return mysql.NewTarget()
	case constants.FormatInflux:
		return influx.NewTarget()
	case constants.FormatMongo:
		return mongo.NewTarget()
	case constants.FormatSQLite:
		return sqlite.NewTarget()
	}

	supportedFormatsStr := strings.Join(constants.SupportedFormats(), ",")
	panic(fmt.Sprintf("Unrecognized format %s, supported: %s", format, supportedFormatsStr))
}
