// Package sqlstore keeps canteen data in MySQL or SQLite. Queries use "?"
// placeholders and portable column types so both drivers share one code path.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"kantine-klima/internal/config"
)

type Storage struct {
	db     *sql.DB
	driver string
	log    *slog.Logger
}

// New opens the configured database, creates missing tables and, when
// cfg.Seed is set, loads the built-in portfolio into an empty database.
func New(ctx context.Context, log *slog.Logger, cfg config.Storage) (*Storage, error) {
	const op = "storage.sqlstore.New"

	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case "mysql":
		db, err = openMySQL(cfg)
	case "sqlite":
		db, err = openSQLite(cfg.SQLitePath)
	default:
		err = fmt.Errorf("unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: ping failed: %w", op, err)
	}

	s := &Storage{db: db, driver: cfg.Driver, log: log.With(slog.String("driver", cfg.Driver))}

	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if cfg.Seed {
		if err := s.Seed(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s, nil
}

// isDuplicate reports a unique key violation. Seeding races between two
// instances on the same database end up here.
func isDuplicate(err error) bool {
	return isMySQLDuplicate(err) || isSQLiteDuplicate(err)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Driver() string {
	return s.driver
}
