package db

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"

	"booking-core/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/lock"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrations exposes the embedded goose migrations, rooted at the directory.
func Migrations() (fs.FS, error) {
	return fs.Sub(migrationFS, "migrations")
}

// Migrate applies every pending migration. Concurrent startups of several
// instances serialize on a postgres session lock.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	fsys, err := Migrations()
	if err != nil {
		return errs.Wrap(err, "failed to open embedded migrations")
	}

	locker, err := lock.NewPostgresSessionLocker()
	if err != nil {
		return errs.Wrap(err, "failed to create migration locker")
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, fsys, goose.WithSessionLocker(locker))
	if err != nil {
		return errs.Wrap(err, "failed to create migration provider")
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to apply migrations")
	}
	for _, r := range results {
		slog.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
	return nil
}
