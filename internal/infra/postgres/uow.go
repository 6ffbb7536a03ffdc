package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/pgconv"
	"staybook/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const storeName = "postgres"

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type UnitOfWork struct {
	pool     *pgxpool.Pool
	observer infra.RetryObserver
}

func NewUnitOfWork(pool *pgxpool.Pool, observer infra.RetryObserver) *UnitOfWork {
	return &UnitOfWork{pool: pool, observer: observer}
}

// Within runs fn at READ COMMITTED. Writers that need mutual exclusion take row
// locks (LockByID); the bookings exclusion constraint backs the overlap check.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 50 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, newTx(pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
		}

		if !isRetryable(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		u.observer.ObserveRetry(storeName)
		wait := infra.Backoff(attempt, base)
		slog.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return errMaxRetriesExceeded
}

func isRetryable(err error) bool {
	switch pgconv.ErrorCode(err) {
	case pgconv.CodeSerializationFailure, pgconv.CodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	db DBTX

	listings *ListingRepository
	bookings *BookingRepository
	reviews  *ReviewRepository
	users    *UserRepository
}

func newTx(db DBTX) *pgTx {
	return &pgTx{db: db}
}

func (t *pgTx) Listings() shared.ListingRepository {
	if t.listings == nil {
		t.listings = NewListingRepository(t.db)
	}
	return t.listings
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = NewBookingRepository(t.db)
	}
	return t.bookings
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviews == nil {
		t.reviews = NewReviewRepository(t.db)
	}
	return t.reviews
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = NewUserRepository(t.db)
	}
	return t.users
}
