package constants

// Names of the target engines the bootstrapper supports.
const (
	FormatPostgres    = "postgres"
	FormatTimescaleDB = "timescaledb"
	FormatMySQL       = "mysql"
	FormatInflux      = "influx"
	FormatMongo       = "mongo"
	FormatSQLite      = "sqlite"
)

// SupportedFormats returns all the formats supported by the bootstrapper.
func SupportedFormats() []string {
	return []string{
		FormatPostgres,
		FormatTimescaleDB,
		FormatMySQL,
		FormatInflux,
		FormatMongo,
		FormatSQLite,
	}
}
