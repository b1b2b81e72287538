package storage

import (
	"context"

	_ "github.com/lib/pq"

	"hcm-analyzer/utils"
)

var postgresDialect = dialect{
	name:       "postgres",
	driver:     "postgres",
	schema:     schemaSQL,
	dollarArgs: true,
}

// NewPostgresStore opens a connection to PostgreSQL, retrying the ping while
// the server comes up, runs schema migrations and returns a ready store.
func NewPostgresStore(ctx context.Context, dsn string, retry *utils.RetryConfig, logger *utils.Logger) (*SQLStore, error) {
	return openStore(ctx, postgresDialect, dsn, retry, logger)
}
