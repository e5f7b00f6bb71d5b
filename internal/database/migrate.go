package database

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jmoiron/sqlx"
)

// Migrate applies every *.up.sql file under migrations/ in the given
// filesystem, in lexical order. Applied versions are recorded in
// schema_migrations, so re-running is safe. It returns the number of newly
// applied migrations.
func Migrate(ctx context.Context, db *sqlx.DB, migrations fs.FS) (int, error) {
	if _, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(255) NOT NULL,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (version)
		)`); err != nil {
		return 0, fmt.Errorf("db.ExecContext(create schema_migrations) > %w", err)
	}

	var appliedVersions []string
	if err := db.SelectContext(ctx, &appliedVersions, "SELECT version FROM schema_migrations ORDER BY version"); err != nil {
		return 0, fmt.Errorf("db.SelectContext(schema_migrations) > %w", err)
	}
	applied := make(map[string]struct{}, len(appliedVersions))
	for _, version := range appliedVersions {
		applied[version] = struct{}{}
	}

	files, err := fs.Glob(migrations, "migrations/*.up.sql")
	if err != nil {
		return 0, fmt.Errorf("fs.Glob() > %w", err)
	}
	sort.Strings(files)

	count := 0
	for _, file := range files {
		if _, ok := applied[file]; ok {
			continue
		}

		statements, err := fs.ReadFile(migrations, file)
		if err != nil {
			return count, fmt.Errorf("fs.ReadFile(%s) > %w", file, err)
		}
		// Requires a connection with multi-statements enabled; Open sets it.
		if _, err := db.ExecContext(ctx, string(statements)); err != nil {
			return count, fmt.Errorf("db.ExecContext(%s) > %w", file, err)
		}
		if _, err := db.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", file); err != nil {
			return count, fmt.Errorf("db.ExecContext(record %s) > %w", file, err)
		}
		count++
	}

	return count, nil
}
