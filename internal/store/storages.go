package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-http-consumer/internal/config"
	"github.com/MKhiriev/go-http-consumer/internal/logger"
)

// Storages bundles the repositories built on one connection. A zero value
// (no DSN configured) carries a nil ExchangeRepository and persistence is
// skipped by the pipeline.
type Storages struct {
	ExchangeRepository ExchangeRepository

	db *DB
}

// NewStorages opens the configured backend, applies migrations and builds the
// repositories. An empty DSN returns empty Storages.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("func", "NewStorages").Msg("no database configured, exchanges will not be persisted")
		return &Storages{}, nil
	}

	var (
		db  *DB
		err error
	)
	switch DialectFromDSN(cfg.DB.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	default:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		ExchangeRepository: NewExchangeRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the underlying connection, if any.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
