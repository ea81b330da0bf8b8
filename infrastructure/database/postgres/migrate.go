package postgres

import (
	"database/sql"
	"embed"

	"github.com/pkg/errors"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed sql
var migrations embed.FS

func migrationSource() *migrate.EmbedFileSystemMigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "sql",
	}
}

// Migrate applies every pending embedded migration and returns how many ran.
func Migrate(db *sql.DB) (int, error) {
	n, err := migrate.Exec(db, "postgres", migrationSource(), migrate.Up)
	if err != nil {
		return 0, errors.Wrap(err, "failed to apply migrations")
	}

	return n, nil
}

// MigrateDown rolls back at most steps migrations, all of them when steps is 0.
func MigrateDown(db *sql.DB, steps int) (int, error) {
	n, err := migrate.ExecMax(db, "postgres", migrationSource(), migrate.Down, steps)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll back migrations")
	}

	return n, nil
}
