package postgres

// SQL queries for PostgreSQL health metadata.
const (
	queryServerVersion = `SHOW server_version`

	queryDatabaseSize = `
		SELECT pg_database_size(current_database())`

	queryActiveConns = `
		SELECT count(*)::int
		FROM pg_stat_activity
		WHERE datname = current_database()`
)
