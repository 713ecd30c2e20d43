package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-http-consumer/internal/logger"
	"github.com/MKhiriev/go-http-consumer/models"
	"github.com/jackc/pgerrcode"
)

const (
	exchangesTable = "exchanges"

	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// exchangeRepository is the SQL implementation of [ExchangeRepository]. The
// same code serves PostgreSQL and SQLite; only the placeholder format and the
// error classification differ.
type exchangeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewExchangeRepository constructs an [ExchangeRepository] over db.
func NewExchangeRepository(db *DB, logger *logger.Logger) ExchangeRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating exchange repository")
	return &exchangeRepository{
		db:     db,
		logger: logger,
	}
}

// SaveExchange inserts record into the exchanges table.
//
// Error handling:
//   - unique violation on either backend → [ErrExchangeAlreadyExists].
//   - retryable PostgreSQL errors are attempted up to three times.
//   - zero affected rows → [ErrExchangeNotSaved].
func (r *exchangeRepository) SaveExchange(ctx context.Context, record models.ExchangeRecord) error {
	log := logger.FromContext(ctx)

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := r.db.builder().
		Insert(exchangesTable).
		Columns("id", "route_id", "correlation_id", "body", "created_at").
		Values(record.ID, record.RouteID, record.CorrelationID, record.Body, createdAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*exchangeRepository.SaveExchange").Msg("failed to build insert")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = r.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*exchangeRepository.SaveExchange").
			Str("exchange_id", record.ID).
			Msg("failed to insert exchange")
		if r.isUniqueViolation(err) {
			return ErrExchangeAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Error().
			Str("func", "*exchangeRepository.SaveExchange").
			Str("exchange_id", record.ID).
			Msg("no rows affected")
		return ErrExchangeNotSaved
	}

	return nil
}

// CountExchanges returns how many exchanges were stored for routeID.
func (r *exchangeRepository) CountExchanges(ctx context.Context, routeID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select("COUNT(*)").
		From(exchangesTable).
		Where("route_id = ?", routeID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*exchangeRepository.CountExchanges").Msg("failed to build select")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).
			Str("func", "*exchangeRepository.CountExchanges").
			Str("route_id", routeID).
			Msg("failed to count exchanges")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *exchangeRepository) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if r.db.classify(err) != Retryable || attempt == maxAttempts {
			return err
		}

		r.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying database call")
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}

func (r *exchangeRepository) isUniqueViolation(err error) bool {
	if isPgCode(err, pgerrcode.UniqueViolation) {
		return true
	}
	return isSQLiteUniqueViolation(err)
}
