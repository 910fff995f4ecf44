//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt of "password123", precomputed so e2e fixtures skip the hash cost
const testPasswordHash = "$2b$12$n8ahBAynJla3qgaAkPPPbOnErQG0OBaDt14qACiU0EaWgzkAbNv.e"

// TestPassword is the plaintext behind every fixture member's hash.
const TestPassword = "password123"

func CreateTestMember(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	memberID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO members (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT DO NOTHING",
		memberID, "Test "+role, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM members WHERE email = $1 AND is_active = true", email).Scan(&memberID)
		require.NoError(t, err)
	}
	return memberID
}

func CreateTestBook(t *testing.T, db DBLike, title, isbn string, totalCopies, availableCopies int) uuid.UUID {
	t.Helper()

	bookID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO books (id, title, author, isbn, total_copies, available_copies) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (isbn) DO NOTHING",
		bookID, title, "Test Author", isbn, totalCopies, availableCopies)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM books WHERE isbn = $1", isbn).Scan(&bookID)
		require.NoError(t, err)
	}
	return bookID
}

func CreateTestLoan(t *testing.T, db DBLike, bookID, memberID uuid.UUID, borrowedAt, dueDate time.Time) uuid.UUID {
	t.Helper()

	loanID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO loans (id, book_id, member_id, borrowed_at, due_date) VALUES ($1, $2, $3, $4, $5)",
		loanID, bookID, memberID, borrowedAt, dueDate)
	require.NoError(t, err)
	return loanID
}

func CreateTestReservation(t *testing.T, db DBLike, bookID, memberID uuid.UUID, roleName string, createdAt time.Time) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (id, book_id, member_id, role_name, status, created_at) VALUES ($1, $2, $3, $4, 'PENDING', $5)",
		reservationID, bookID, memberID, roleName, createdAt)
	require.NoError(t, err)
	return reservationID
}

// ResetDB wipes all mutable state between subtests. Table order follows the
// foreign keys.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE audit_log, reservations, loans, books, members CASCADE")
	return err
}
