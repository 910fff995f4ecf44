//go:build unit

package commands_test

import (
	"context"
	"testing"

	"library-circulation/internal/domain/reservation"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/usecase/commands"
	"library-circulation/internal/usecase/shared"
	"library-circulation/tests/common/builder"
	sharedmock "library-circulation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reservationFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	reservations *sharedmock.MockReservationCommandRepository
	audit        *sharedmock.MockAuditRecorder
	svc          *commands.ReservationCommands
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &reservationFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		reservations: sharedmock.NewMockReservationCommandRepository(ctrl),
		audit:        sharedmock.NewMockAuditRecorder(ctrl),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Audit().Return(f.audit).AnyTimes()
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = commands.NewReservationCommands(f.uow, clock.NewMockClock(testNow))
	return f
}

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()
	actor := builder.NewMemberBuilder().BuildActor()

	t.Run("success", func(t *testing.T) {
		f := newReservationFixture(t)
		bk := builder.NewBookBuilder().AsOutOfStock().BuildSnapshot()
		mem := builder.NewMemberBuilder().AsAdmin().BuildSnapshot()
		reservationID := uuid.New()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, mem.ID).Return(mem, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
				assert.Equal(t, reservation.StatusPending, res.Status())
				assert.Equal(t, "ADMIN", res.RoleName())
				assert.Equal(t, testNow, res.CreatedAt())
				return reservationID, nil
			})

		got, err := f.svc.Create(ctx, actor, bk.ID, mem.ID)
		require.NoError(t, err)
		assert.Equal(t, reservationID, got)
	})

	t.Run("unknown book", func(t *testing.T) {
		f := newReservationFixture(t)
		bookID := uuid.New()

		f.reads.EXPECT().BookByID(ctx, bookID).Return(nil, notFoundErr("book not found"))

		_, err := f.svc.Create(ctx, actor, bookID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookNotFound)
	})

	t.Run("unknown member", func(t *testing.T) {
		f := newReservationFixture(t)
		bk := builder.NewBookBuilder().BuildSnapshot()
		memberID := uuid.New()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, memberID).Return(nil, notFoundErr("member not found"))

		_, err := f.svc.Create(ctx, actor, bk.ID, memberID)
		assert.ErrorIs(t, err, commands.ErrMemberNotFound)
	})

	t.Run("inactive member", func(t *testing.T) {
		f := newReservationFixture(t)
		bk := builder.NewBookBuilder().BuildSnapshot()
		mem := builder.NewMemberBuilder().AsInactive().BuildSnapshot()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, mem.ID).Return(mem, nil)

		_, err := f.svc.Create(ctx, actor, bk.ID, mem.ID)
		assert.ErrorIs(t, err, commands.ErrMemberInactive)
	})
}

func TestReservationCommands_Cancel(t *testing.T) {
	ctx := context.Background()
	actor := builder.NewMemberBuilder().BuildActor()

	t.Run("success", func(t *testing.T) {
		f := newReservationFixture(t)
		reservationID := uuid.New()

		f.reservations.EXPECT().Cancel(ctx, reservationID, testNow).Return(true, nil)

		err := f.svc.Cancel(ctx, actor, reservationID)
		require.NoError(t, err)
	})

	t.Run("not pending", func(t *testing.T) {
		f := newReservationFixture(t)
		reservationID := uuid.New()

		f.reservations.EXPECT().Cancel(ctx, reservationID, testNow).Return(false, nil)

		err := f.svc.Cancel(ctx, actor, reservationID)
		assert.ErrorIs(t, err, commands.ErrReservationNotPending)
	})
}
