//go:build unit

package member_test

import (
	"testing"

	"library-circulation/internal/domain/member"
	"library-circulation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.MemberBuilder)
	errIs  error
}

func TestMember(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewMemberBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Alice Reader", actual.Name())
		assert.Equal(t, "alice@example.com", actual.Email().String())
		assert.Equal(t, member.RoleMember, actual.Role())
		assert.True(t, actual.IsActive())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.MemberBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "email is normalized to lower case",
				mutate: func(b *builder.MemberBuilder) { b.WithEmail("Upper.Case@Example.COM") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.MemberBuilder) { b.WithEmail("") },
				errIs:  member.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.MemberBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  member.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.MemberBuilder) { b.WithEmail("user@") },
				errIs:  member.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "ADMIN role",
				mutate: func(b *builder.MemberBuilder) { b.WithRole("ADMIN") },
			},
			{
				name:   "LIBRARIAN role",
				mutate: func(b *builder.MemberBuilder) { b.WithRole("LIBRARIAN") },
			},
			{
				name:   "MEMBER role",
				mutate: func(b *builder.MemberBuilder) { b.WithRole("MEMBER") },
			},
			{
				name:   "lowercase role is rejected",
				mutate: func(b *builder.MemberBuilder) { b.WithRole("admin") },
				errIs:  member.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.MemberBuilder) { b.WithRole("") },
				errIs:  member.ErrInvalidRole,
			},
		})
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.MemberBuilder) { b.WithName("") },
				errIs:  member.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.MemberBuilder) { b.WithName("   ") },
				errIs:  member.ErrEmptyName,
			},
		})
	})

	t.Run("email normalization", func(t *testing.T) {
		email, err := member.NewEmail("  Alice@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", email.String())
	})
}

func TestFulfillmentRank(t *testing.T) {
	cases := []struct {
		roleName string
		want     int
	}{
		{"ADMIN", 1},
		{"LIBRARIAN", 2},
		{"MEMBER", 3},
		{"", 3},
		{"admin", 3},
		{"something-else", 3},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, member.FulfillmentRank(c.roleName), "role %q", c.roleName)
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewMemberBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
