//go:build unit

package operator_test

import (
	"testing"
	"time"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/domain/operator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperator(t *testing.T) {
	email, err := operator.NewEmail("staff@example.com")
	require.NoError(t, err)

	actual := operator.NewOperator(email, "hashed_password", operator.RoleOperator)

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, "staff@example.com", actual.Email().Value())
	assert.Equal(t, "hashed_password", actual.PasswordHash())
	assert.Equal(t, operator.RoleOperator, actual.Role())
	assert.True(t, actual.IsActive())
	assert.Nil(t, actual.LastLogin())
}

func TestReconstructOperator(t *testing.T) {
	email, err := operator.NewEmail("staff@example.com")
	require.NoError(t, err)

	id := uuid.New()
	lastLogin := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	actual := operator.ReconstructOperator(id, email, "hashed", operator.RoleAdmin,
		&lastLogin, false, createdAt, createdAt)

	assert.Equal(t, id, actual.ID())
	assert.Equal(t, operator.RoleAdmin, actual.Role())
	assert.False(t, actual.IsActive())
	require.NotNil(t, actual.LastLogin())
	assert.Equal(t, lastLogin, *actual.LastLogin())
	assert.Equal(t, createdAt, actual.CreatedAt())
}

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "valid address", input: "valid@example.com"},
		{name: "surrounding whitespace trimmed", input: "  valid@example.com  "},
		{name: "empty", input: "", errIs: operator.ErrInvalidEmail},
		{name: "no at sign", input: "invalidemail.com", errIs: operator.ErrInvalidEmail},
		{name: "no domain", input: "invalid@", errIs: operator.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := operator.NewEmail(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"viewer", "operator", "admin"} {
		role, err := operator.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := operator.NewRole("superuser")
	assert.ErrorIs(t, err, operator.ErrInvalidRole)
}

func TestNewCredentials(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		creds, err := operator.NewCredentials("staff@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "staff@example.com", creds.Email().Value())
		assert.Equal(t, "password123", creds.Password().Value())
	})

	t.Run("bad email rejected first", func(t *testing.T) {
		_, err := operator.NewCredentials("not-an-email", "password123")
		assert.ErrorIs(t, err, operator.ErrInvalidEmail)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := operator.NewCredentials("staff@example.com", "short")
		assert.ErrorIs(t, err, operator.ErrPasswordTooWeak)
	})
}
