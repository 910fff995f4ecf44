//go:build unit

package loan_test

import (
	"testing"
	"time"

	"library-circulation/internal/domain/loan"
	"library-circulation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoan(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		bookID := uuid.New()
		memberID := uuid.New()

		l, err := loan.NewLoan(bookID, memberID, now, 14)
		require.NoError(t, err)
		require.NotNil(t, l)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, bookID, l.BookID())
		assert.Equal(t, memberID, l.MemberID())
		assert.Equal(t, now, l.BorrowedAt())
		assert.Equal(t, now.AddDate(0, 0, 14), l.DueDate())
		assert.Nil(t, l.ReturnedAt())
		assert.True(t, l.IsActive())
		assert.Equal(t, loan.StatusActive, l.Status())
	})

	t.Run("period validation", func(t *testing.T) {
		for _, days := range []int{0, -1} {
			l, err := loan.NewLoan(uuid.New(), uuid.New(), time.Now(), days)
			assert.Nil(t, l)
			assert.ErrorIs(t, err, loan.ErrInvalidPeriod)
		}

		l, err := loan.NewLoan(uuid.New(), uuid.New(), time.Now(), 1)
		require.NoError(t, err)
		assert.Equal(t, l.BorrowedAt().AddDate(0, 0, 1), l.DueDate())
	})

	t.Run("mark returned exactly once", func(t *testing.T) {
		l, err := builder.NewLoanBuilder().BuildDomain()
		require.NoError(t, err)

		returnedAt := time.Now()
		require.NoError(t, l.MarkReturned(returnedAt))
		require.NotNil(t, l.ReturnedAt())
		assert.Equal(t, returnedAt, *l.ReturnedAt())
		assert.False(t, l.IsActive())
		assert.Equal(t, loan.StatusReturned, l.Status())

		err = l.MarkReturned(returnedAt.Add(time.Hour))
		assert.ErrorIs(t, err, loan.ErrAlreadyReturned)
		assert.Equal(t, returnedAt, *l.ReturnedAt(), "first return timestamp must stand")
	})

	t.Run("overdue is derived from the due date", func(t *testing.T) {
		borrowedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		l, err := builder.NewLoanBuilder().WithPeriodDays(14).With(func(b *builder.LoanBuilder) {
			b.BorrowedAt = borrowedAt
		}).BuildDomain()
		require.NoError(t, err)

		dueDate := borrowedAt.AddDate(0, 0, 14)

		assert.False(t, l.IsOverdue(dueDate.Add(-time.Minute)))
		assert.False(t, l.IsOverdue(dueDate), "due date itself is not overdue")
		assert.True(t, l.IsOverdue(dueDate.Add(time.Minute)))
	})

	t.Run("returned loan is never overdue", func(t *testing.T) {
		l, err := builder.NewLoanBuilder().AsOverdue().BuildDomain()
		require.NoError(t, err)

		now := time.Now()
		require.True(t, l.IsOverdue(now))

		require.NoError(t, l.MarkReturned(now))
		assert.False(t, l.IsOverdue(now))
	})
}
