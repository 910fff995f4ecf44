//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"library-circulation/internal/domain/loan"
	"library-circulation/internal/domain/reservation"
	"library-circulation/internal/infra"
	"library-circulation/internal/pkg/clock"
	"library-circulation/internal/pkg/config"
	"library-circulation/internal/usecase/commands"
	"library-circulation/internal/usecase/shared"
	"library-circulation/tests/common/builder"
	sharedmock "library-circulation/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type circulationFixture struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	books        *sharedmock.MockBookCommandRepository
	loans        *sharedmock.MockLoanCommandRepository
	reservations *sharedmock.MockReservationCommandRepository
	audit        *sharedmock.MockAuditRecorder
	clk          *clock.MockClock
	svc          *commands.CirculationCommands
}

func newCirculationFixture(t *testing.T) *circulationFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &circulationFixture{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		books:        sharedmock.NewMockBookCommandRepository(ctrl),
		loans:        sharedmock.NewMockLoanCommandRepository(ctrl),
		reservations: sharedmock.NewMockReservationCommandRepository(ctrl),
		audit:        sharedmock.NewMockAuditRecorder(ctrl),
		clk:          clock.NewMockClock(testNow),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Books().Return(f.books).AnyTimes()
	f.tx.EXPECT().Loans().Return(f.loans).AnyTimes()
	f.tx.EXPECT().Reservations().Return(f.reservations).AnyTimes()
	f.tx.EXPECT().Audit().Return(f.audit).AnyTimes()

	cfg := config.BorrowingConfig{MaxActiveLoansPerMember: 5, MaxLoanDays: 14}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = commands.NewCirculationCommands(f.uow, f.clk, cfg, log)
	return f
}

// expectAudit records the next audit entry and asserts its action.
func (f *circulationFixture) expectAudit(t *testing.T, action string) {
	t.Helper()
	f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry shared.AuditEntry) error {
			assert.Equal(t, action, entry.Action)
			return nil
		})
}

func notFoundErr(msg string) error {
	return infra.NewRepositoryError(msg, infra.KindNotFound)
}

func TestCirculationCommands_Borrow(t *testing.T) {
	ctx := context.Background()
	actor := builder.NewMemberBuilder().AsLibrarian().BuildActor()

	t.Run("success", func(t *testing.T) {
		f := newCirculationFixture(t)
		bk := builder.NewBookBuilder().WithCopies(3, 2).BuildSnapshot()
		mem := builder.NewMemberBuilder().BuildSnapshot()
		loanID := uuid.New()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, mem.ID).Return(mem, nil)
		f.reads.EXPECT().CountActiveLoans(ctx, mem.ID).Return(int64(1), nil)
		f.reads.EXPECT().HasOverdueLoan(ctx, mem.ID, testNow).Return(false, nil)
		f.books.EXPECT().ConsumeCopy(ctx, bk.ID).Return(true, nil)
		f.loans.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, l *loan.Loan) (uuid.UUID, error) {
				assert.Equal(t, bk.ID, l.BookID())
				assert.Equal(t, mem.ID, l.MemberID())
				assert.Equal(t, testNow.AddDate(0, 0, 14), l.DueDate())
				return loanID, nil
			})
		f.expectAudit(t, "BORROW_BOOK")

		got, err := f.svc.Borrow(ctx, actor, bk.ID, mem.ID)
		require.NoError(t, err)
		assert.Equal(t, loanID, got)
	})

	t.Run("book not found", func(t *testing.T) {
		f := newCirculationFixture(t)
		bookID := uuid.New()

		f.reads.EXPECT().BookByID(ctx, bookID).Return(nil, notFoundErr("book not found"))

		_, err := f.svc.Borrow(ctx, actor, bookID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrBookNotFound)
	})

	t.Run("member not found", func(t *testing.T) {
		f := newCirculationFixture(t)
		bk := builder.NewBookBuilder().BuildSnapshot()
		memberID := uuid.New()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, memberID).Return(nil, notFoundErr("member not found"))

		_, err := f.svc.Borrow(ctx, actor, bk.ID, memberID)
		assert.ErrorIs(t, err, commands.ErrMemberNotFound)
	})

	t.Run("inactive member cannot borrow", func(t *testing.T) {
		f := newCirculationFixture(t)
		bk := builder.NewBookBuilder().BuildSnapshot()
		mem := builder.NewMemberBuilder().AsInactive().BuildSnapshot()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, mem.ID).Return(mem, nil)

		_, err := f.svc.Borrow(ctx, actor, bk.ID, mem.ID)
		assert.ErrorIs(t, err, commands.ErrMemberInactive)
	})

	t.Run("loan limit reached", func(t *testing.T) {
		f := newCirculationFixture(t)
		bk := builder.NewBookBuilder().BuildSnapshot()
		mem := builder.NewMemberBuilder().BuildSnapshot()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, mem.ID).Return(mem, nil)
		f.reads.EXPECT().CountActiveLoans(ctx, mem.ID).Return(int64(5), nil)

		_, err := f.svc.Borrow(ctx, actor, bk.ID, mem.ID)
		assert.ErrorIs(t, err, commands.ErrLoanLimitReached)
	})

	t.Run("overdue loans block borrowing", func(t *testing.T) {
		f := newCirculationFixture(t)
		bk := builder.NewBookBuilder().BuildSnapshot()
		mem := builder.NewMemberBuilder().BuildSnapshot()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, mem.ID).Return(mem, nil)
		f.reads.EXPECT().CountActiveLoans(ctx, mem.ID).Return(int64(0), nil)
		f.reads.EXPECT().HasOverdueLoan(ctx, mem.ID, testNow).Return(true, nil)

		_, err := f.svc.Borrow(ctx, actor, bk.ID, mem.ID)
		assert.ErrorIs(t, err, commands.ErrOverdueLoans)
	})

	t.Run("no copies queues a reservation", func(t *testing.T) {
		f := newCirculationFixture(t)
		bk := builder.NewBookBuilder().AsOutOfStock().BuildSnapshot()
		mem := builder.NewMemberBuilder().AsLibrarian().BuildSnapshot()
		reservationID := uuid.New()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, mem.ID).Return(mem, nil)
		f.reservations.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, res *reservation.Reservation) (uuid.UUID, error) {
				assert.Equal(t, bk.ID, res.BookID())
				assert.Equal(t, mem.ID, res.MemberID())
				assert.Equal(t, "LIBRARIAN", res.RoleName(), "role is snapshotted at enqueue time")
				return reservationID, nil
			})
		f.expectAudit(t, "RESERVATION_QUEUED")

		_, err := f.svc.Borrow(ctx, actor, bk.ID, mem.ID)
		require.Error(t, err)

		var queued commands.ReservationQueuedError
		require.ErrorAs(t, err, &queued)
		assert.Equal(t, reservationID, queued.ReservationID)
		assert.ErrorIs(t, err, commands.ErrNoCopiesAvailable)
	})

	t.Run("losing the last copy race surfaces no copies", func(t *testing.T) {
		f := newCirculationFixture(t)
		bk := builder.NewBookBuilder().WithCopies(3, 1).BuildSnapshot()
		mem := builder.NewMemberBuilder().BuildSnapshot()

		f.reads.EXPECT().BookByID(ctx, bk.ID).Return(bk, nil)
		f.reads.EXPECT().MemberByID(ctx, mem.ID).Return(mem, nil)
		f.reads.EXPECT().CountActiveLoans(ctx, mem.ID).Return(int64(0), nil)
		f.reads.EXPECT().HasOverdueLoan(ctx, mem.ID, testNow).Return(false, nil)
		// the conditional decrement finds no copy left
		f.books.EXPECT().ConsumeCopy(ctx, bk.ID).Return(false, nil)

		_, err := f.svc.Borrow(ctx, actor, bk.ID, mem.ID)
		assert.ErrorIs(t, err, commands.ErrNoCopiesAvailable)
	})

	t.Run("store failure is wrapped", func(t *testing.T) {
		f := newCirculationFixture(t)
		bookID := uuid.New()

		f.reads.EXPECT().BookByID(ctx, bookID).Return(nil, errors.New("connection refused"))

		_, err := f.svc.Borrow(ctx, actor, bookID, uuid.New())
		assert.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})
}

func TestCirculationCommands_Return(t *testing.T) {
	ctx := context.Background()
	actor := builder.NewMemberBuilder().AsLibrarian().BuildActor()

	t.Run("success without waiting reservations", func(t *testing.T) {
		f := newCirculationFixture(t)
		l := builder.NewLoanBuilder().BuildSnapshot()

		f.reads.EXPECT().LoanByID(ctx, l.ID).Return(l, nil)
		f.loans.EXPECT().MarkReturned(ctx, l.ID, testNow).Return(true, nil)
		f.books.EXPECT().ReleaseCopy(ctx, l.BookID).Return(true, nil)
		f.reservations.EXPECT().NextPending(ctx, l.BookID).Return(nil, nil)
		f.expectAudit(t, "RETURN_BOOK")

		err := f.svc.Return(ctx, actor, l.ID)
		require.NoError(t, err)
	})

	t.Run("loan not found", func(t *testing.T) {
		f := newCirculationFixture(t)
		loanID := uuid.New()

		f.reads.EXPECT().LoanByID(ctx, loanID).Return(nil, notFoundErr("loan not found"))

		err := f.svc.Return(ctx, actor, loanID)
		assert.ErrorIs(t, err, commands.ErrLoanNotFound)
	})

	t.Run("second return is rejected and releases nothing", func(t *testing.T) {
		f := newCirculationFixture(t)
		l := builder.NewLoanBuilder().BuildSnapshot()

		f.reads.EXPECT().LoanByID(ctx, l.ID).Return(l, nil)
		f.loans.EXPECT().MarkReturned(ctx, l.ID, testNow).Return(false, nil)

		err := f.svc.Return(ctx, actor, l.ID)
		assert.ErrorIs(t, err, commands.ErrLoanAlreadyReturned)
	})

	t.Run("return hands the copy to the next reservation", func(t *testing.T) {
		f := newCirculationFixture(t)
		l := builder.NewLoanBuilder().BuildSnapshot()
		res := builder.NewReservationBuilder().WithBookID(l.BookID).BuildDomain()

		f.reads.EXPECT().LoanByID(ctx, l.ID).Return(l, nil)
		f.loans.EXPECT().MarkReturned(ctx, l.ID, testNow).Return(true, nil)
		f.books.EXPECT().ReleaseCopy(ctx, l.BookID).Return(true, nil)
		f.reservations.EXPECT().NextPending(ctx, l.BookID).Return(res, nil)
		f.reservations.EXPECT().MarkFulfilled(ctx, res.ID(), testNow).Return(true, nil)
		f.books.EXPECT().ConsumeCopy(ctx, l.BookID).Return(true, nil)
		// the reserved member's limits are not re-checked at fulfillment;
		// any CountActiveLoans or HasOverdueLoan call here would fail the test
		f.loans.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, nl *loan.Loan) (uuid.UUID, error) {
				assert.Equal(t, res.MemberID(), nl.MemberID())
				assert.Equal(t, l.BookID, nl.BookID())
				return nl.ID(), nil
			})
		f.expectAudit(t, "RETURN_BOOK")

		err := f.svc.Return(ctx, actor, l.ID)
		require.NoError(t, err)
	})

	t.Run("reservation completes without a loan when the copy is gone", func(t *testing.T) {
		f := newCirculationFixture(t)
		l := builder.NewLoanBuilder().BuildSnapshot()
		res := builder.NewReservationBuilder().WithBookID(l.BookID).BuildDomain()

		f.reads.EXPECT().LoanByID(ctx, l.ID).Return(l, nil)
		f.loans.EXPECT().MarkReturned(ctx, l.ID, testNow).Return(true, nil)
		f.books.EXPECT().ReleaseCopy(ctx, l.BookID).Return(true, nil)
		f.reservations.EXPECT().NextPending(ctx, l.BookID).Return(res, nil)
		f.reservations.EXPECT().MarkFulfilled(ctx, res.ID(), testNow).Return(true, nil)
		f.books.EXPECT().ConsumeCopy(ctx, l.BookID).Return(false, nil)
		f.expectAudit(t, "RETURN_BOOK")

		err := f.svc.Return(ctx, actor, l.ID)
		require.NoError(t, err, "fulfillment without a loan is not an error")
	})

	t.Run("losing the fulfillment race is a no-op", func(t *testing.T) {
		f := newCirculationFixture(t)
		l := builder.NewLoanBuilder().BuildSnapshot()
		res := builder.NewReservationBuilder().WithBookID(l.BookID).BuildDomain()

		f.reads.EXPECT().LoanByID(ctx, l.ID).Return(l, nil)
		f.loans.EXPECT().MarkReturned(ctx, l.ID, testNow).Return(true, nil)
		f.books.EXPECT().ReleaseCopy(ctx, l.BookID).Return(true, nil)
		f.reservations.EXPECT().NextPending(ctx, l.BookID).Return(res, nil)
		f.reservations.EXPECT().MarkFulfilled(ctx, res.ID(), testNow).Return(false, nil)
		f.expectAudit(t, "RETURN_BOOK")

		err := f.svc.Return(ctx, actor, l.ID)
		require.NoError(t, err)
	})

	t.Run("full shelf does not block the return", func(t *testing.T) {
		f := newCirculationFixture(t)
		l := builder.NewLoanBuilder().BuildSnapshot()

		f.reads.EXPECT().LoanByID(ctx, l.ID).Return(l, nil)
		f.loans.EXPECT().MarkReturned(ctx, l.ID, testNow).Return(true, nil)
		f.books.EXPECT().ReleaseCopy(ctx, l.BookID).Return(false, nil)
		f.reservations.EXPECT().NextPending(ctx, l.BookID).Return(nil, nil)
		f.expectAudit(t, "RETURN_BOOK")

		err := f.svc.Return(ctx, actor, l.ID)
		require.NoError(t, err)
	})
}
