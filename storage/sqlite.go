package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"hcm-analyzer/utils"
)

var sqliteDialect = dialect{
	name:       "sqlite",
	driver:     "sqlite",
	schema:     schemaSQL,
	singleConn: true,
}

// NewSQLiteStore opens or creates the SQLite database at path. Parent
// directories are created as needed.
func NewSQLiteStore(ctx context.Context, path string, logger *utils.Logger) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("sqlite: create dir: %w", err)
	}
	return openStore(ctx, sqliteDialect, path, nil, logger)
}
