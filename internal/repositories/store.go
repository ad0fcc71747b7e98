package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/jmoiron/sqlx"
)

// EntityStore bundles the read repositories of all four entities behind a
// single read-only store. It never issues DDL or writes.
type EntityStore struct {
	*UserReadRepository
	*ListingReadRepository
	*LeadReadRepository
	*TransactionReadRepository

	db *sqlx.DB
}

// NewEntityStore creates an EntityStore over db.
func NewEntityStore(db *sqlx.DB) *EntityStore {
	return &EntityStore{
		UserReadRepository:        NewUserReadRepository(db),
		ListingReadRepository:     NewListingReadRepository(db),
		LeadReadRepository:        NewLeadReadRepository(db),
		TransactionReadRepository: NewTransactionReadRepository(db),
		db:                        db,
	}
}

// Ping checks connectivity with the database.
func (s *EntityStore) Ping(ctx context.Context) error {
	err := s.db.PingContext(ctx)
	if err != nil {
		logger.Log.Errorw("entity store ping failed", "error", err)
		if ctx.Err() == nil {
			return fmt.Errorf("ping: %w: %w", models.ErrStoreUnavailable, err)
		}
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// scanRows streams the rows of query into fn one record at a time.
// An error returned by fn stops the scan and is returned unchanged.
func scanRows[T any](ctx context.Context, db *sqlx.DB, op, query string, args []any, fn func(T) error) error {
	rows, err := db.QueryxContext(ctx, query, args...)
	if err != nil {
		logQuery(query, args, 0, err)
		return storeError(op, err)
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var rec T
		if err := rows.StructScan(&rec); err != nil {
			logQuery(query, args, count, err)
			return storeError(op, err)
		}
		count++
		if err := fn(rec); err != nil {
			return err
		}
	}

	err = rows.Err()
	logQuery(query, args, count, err)
	return storeError(op, err)
}

// getByID fetches a single record and maps sql.ErrNoRows to NotFoundError.
func getByID[T any](ctx context.Context, db *sqlx.DB, entity models.Entity, query string, id int64) (*T, error) {
	var rec T
	err := db.GetContext(ctx, &rec, query, id)

	logQuery(query, []any{id}, rec, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: entity, ID: id}
	}
	if err != nil {
		return nil, storeError("get "+string(entity), err)
	}
	return &rec, nil
}

// storeError wraps err and marks connectivity failures with ErrStoreUnavailable.
// Context cancellation and deadlines stay plain so callers can treat them per query.
func storeError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	var netErr net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) || errors.As(err, &netErr) {
		return fmt.Errorf("%s: %w: %w", op, models.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// logQuery logs a query in a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
