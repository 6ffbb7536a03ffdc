package mongo

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/infra"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/shared"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// Write conflicts abort at once instead of waiting, so each contender on a busy
// listing may lose several rounds before it runs alone.
const (
	storeName          = "mongo"
	labelUnknownCommit = "UnknownTransactionCommitResult"
	maxRetries         = 8
	maxCommitRetries   = 3
	retryBase          = 20 * time.Millisecond
)

var (
	errSessionStart       = errs.New("failed to start session")
	errTransactionStart   = errs.New("failed to start transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type UnitOfWork struct {
	db       *mongo.Database
	observer infra.RetryObserver
}

func NewUnitOfWork(db *mongo.Database, observer infra.RetryObserver) *UnitOfWork {
	return &UnitOfWork{db: db, observer: observer}
}

// Within runs fn in a snapshot transaction. Writers that race on one listing both
// bump its booking_seq in LockByID; the loser gets a TransientTransactionError and
// is retried, by which time the winner's writes are visible.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	sess, err := u.db.Client().StartSession()
	if err != nil {
		return errs.Mark(err, errSessionStart)
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	txnOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := sess.StartTransaction(txnOpts); err != nil {
			return errs.Mark(err, errTransactionStart)
		}
		sc := mongo.NewSessionContext(ctx, sess)

		err = fn(sc, newTx(u.db))
		if err == nil {
			if err = commit(sc, sess); err == nil {
				return nil
			}
		} else if abortErr := sess.AbortTransaction(context.WithoutCancel(ctx)); abortErr != nil {
			slog.Warn("abort failed", "attempt", attempt+1, "error", abortErr.Error())
		}

		if !hasLabel(err, labelTransient) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		u.observer.ObserveRetry(storeName)
		wait := infra.Backoff(attempt, retryBase)
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

// commit retries the commit itself while its outcome is unknown; committing twice is safe.
func commit(ctx context.Context, sess mongo.Session) error {
	var err error
	for i := 0; i < maxCommitRetries; i++ {
		err = sess.CommitTransaction(ctx)
		if err == nil || !hasLabel(err, labelUnknownCommit) {
			break
		}
	}
	if err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

type mongoTx struct {
	db *mongo.Database

	listings *ListingRepository
	bookings *BookingRepository
	reviews  *ReviewRepository
	users    *UserRepository
}

func newTx(db *mongo.Database) *mongoTx {
	return &mongoTx{db: db}
}

func (t *mongoTx) Listings() shared.ListingRepository {
	if t.listings == nil {
		t.listings = NewListingRepository(t.db)
	}
	return t.listings
}

func (t *mongoTx) Bookings() shared.BookingRepository {
	if t.bookings == nil {
		t.bookings = NewBookingRepository(t.db)
	}
	return t.bookings
}

func (t *mongoTx) Reviews() shared.ReviewRepository {
	if t.reviews == nil {
		t.reviews = NewReviewRepository(t.db)
	}
	return t.reviews
}

func (t *mongoTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = NewUserRepository(t.db)
	}
	return t.users
}
