package db

import "database/sql"

// DBProvider is implemented by clients that expose a sql.DB handle, letting
// the release store run against plain Postgres or Supabase interchangeably.
type DBProvider interface {
	DB() *sql.DB
}
