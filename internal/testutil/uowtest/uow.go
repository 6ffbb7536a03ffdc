//go:build unit

// Package uowtest wires gomock repositories behind a unit of work that runs its
// callback once, the way a store without contention would, or several times to
// stand in for transient aborts.
package uowtest

import (
	"context"

	"staybook/internal/testutil/mock/sharedmock"
	"staybook/internal/usecase/shared"

	"go.uber.org/mock/gomock"
)

type Fixture struct {
	UoW      *sharedmock.MockUnitOfWork
	Tx       *sharedmock.MockTx
	Listings *sharedmock.MockListingRepository
	Bookings *sharedmock.MockBookingRepository
	Reviews  *sharedmock.MockReviewRepository
	Users    *sharedmock.MockUserRepository
}

func New(ctrl *gomock.Controller) *Fixture {
	f := &Fixture{
		UoW:      sharedmock.NewMockUnitOfWork(ctrl),
		Tx:       sharedmock.NewMockTx(ctrl),
		Listings: sharedmock.NewMockListingRepository(ctrl),
		Bookings: sharedmock.NewMockBookingRepository(ctrl),
		Reviews:  sharedmock.NewMockReviewRepository(ctrl),
		Users:    sharedmock.NewMockUserRepository(ctrl),
	}
	f.Tx.EXPECT().Listings().Return(f.Listings).AnyTimes()
	f.Tx.EXPECT().Bookings().Return(f.Bookings).AnyTimes()
	f.Tx.EXPECT().Reviews().Return(f.Reviews).AnyTimes()
	f.Tx.EXPECT().Users().Return(f.Users).AnyTimes()
	return f
}

// ExpectWithin makes the next Within call run fn against the mocked Tx.
func (f *Fixture) ExpectWithin() *gomock.Call {
	return f.UoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.Tx)
		})
}

// ExpectWithinRetried makes the next Within call run fn attempts times, as a store
// does after transient aborts, and return the result of the last attempt.
func (f *Fixture) ExpectWithinRetried(attempts int) *gomock.Call {
	return f.UoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			var err error
			for range attempts {
				err = fn(ctx, f.Tx)
			}
			return err
		})
}
