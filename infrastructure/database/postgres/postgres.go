package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/jasonco/storefront-analytics/internal/config"
	"github.com/jasonco/storefront-analytics/pkg/log"
)

const (
	defaultDriver = "postgres"
	pingInterval  = 500 * time.Millisecond
)

// Connection is the process wide pool. Every repository shares it.
type Connection struct {
	*sql.DB
}

// NewConnection opens the pool and waits until the database answers or ctx expires.
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = defaultDriver
	}

	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := waitForDatabase(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.L.WithFields(log.Fields{
		"max_open_conns":    cfg.MaxOpenConns,
		"max_idle_conns":    cfg.MaxIdleConns,
		"conn_max_lifetime": cfg.ConnMaxLifetime.String(),
	}).Debug("Database pool configured")

	return &Connection{DB: db}, nil
}

func waitForDatabase(ctx context.Context, db *sql.DB) error {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Wrap(err, "database not reachable")
		case <-ticker.C:
			log.L.WithError(err).Debug("Waiting for database")
		}
	}
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction commits when fn succeeds and rolls back on error or panic.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(err, "rollback failed: %v", rbErr)
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "failed to commit transaction")
}
