// Package migrations applies the embedded SQL schema with golang-migrate.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"creatorhub/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

const sourceDir = "sql"

// Runner applies schema migrations over an existing connection pool.
type Runner struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewRunner creates a Runner for db.
func NewRunner(db *sql.DB, logger *slog.Logger) *Runner {
	return &Runner{db: db, logger: logger}
}

// Up applies every pending migration.
func (r *Runner) Up(ctx context.Context) error {
	return r.run(ctx, "up", func(m *migrate.Migrate) error {
		return m.Up()
	})
}

// Steps applies n migrations forward, or -n backward when n is negative.
func (r *Runner) Steps(ctx context.Context, n int) error {
	return r.run(ctx, "steps", func(m *migrate.Migrate) error {
		return m.Steps(n)
	})
}

// Version returns the applied version. A database without migrations reports 0.
func (r *Runner) Version(ctx context.Context) (version uint, dirty bool, err error) {
	err = r.withMigrate(ctx, func(m *migrate.Migrate) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			return nil
		}

		return verr
	})

	return version, dirty, err
}

func (r *Runner) run(ctx context.Context, command string, fn func(m *migrate.Migrate) error) error {
	return r.withMigrate(ctx, func(m *migrate.Migrate) error {
		if err := fn(m); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				r.logger.InfoContext(ctx, "No migrations to apply", slog.String("command", command))

				return nil
			}

			return errors.Wrapf(err, "migrate %s", command)
		}

		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return errors.Wrap(err, "failed to read migration version")
		}

		r.logger.InfoContext(ctx, "Database migration completed",
			slog.String("command", command),
			slog.Uint64("version", uint64(version)),
			slog.Bool("dirty", dirty),
		)

		return nil
	})
}

// withMigrate pins one pooled connection for the migrate instance and returns it afterwards.
func (r *Runner) withMigrate(ctx context.Context, fn func(m *migrate.Migrate) error) (err error) {
	src, err := Source()
	if err != nil {
		return err
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire migration connection")
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrate instance")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	return fn(m)
}

// Source exposes the embedded migrations as a golang-migrate source driver.
func Source() (source.Driver, error) {
	driver, err := iofs.New(files, sourceDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration source")
	}

	return driver, nil
}
