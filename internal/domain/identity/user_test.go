package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates customer with hashed password", func(t *testing.T) {
		user, err := NewUser("Alice", "Alice@Example.COM", "secret123")
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, RoleCustomer, user.Role)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, user.CheckPassword("secret123"))
		assert.False(t, user.CheckPassword("wrong"))
		assert.False(t, user.IsAdministrator())
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("Alice", "alice@example.com", "12345")
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		for _, email := range []string{"", "plain", "no@tld", "a b@c.de"} {
			_, err := NewUser("Alice", email, "secret123")
			assert.Error(t, err, "email %q should be rejected", email)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewUser("   ", "alice@example.com", "secret123")
		assert.Error(t, err)
	})
}

func TestNewAdministrator(t *testing.T) {
	admin, err := NewAdministrator("Root", "admin@example.com", "secret123")
	require.NoError(t, err)

	assert.Equal(t, RoleAdministrator, admin.Role)
	assert.True(t, admin.IsAdministrator())
}

func TestUserChangePassword(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, user.ChangePassword("newsecret"))
	assert.True(t, user.CheckPassword("newsecret"))
	assert.False(t, user.CheckPassword("secret123"))

	assert.Error(t, user.ChangePassword("short"))
}

func TestUserRename(t *testing.T) {
	user, err := NewUser("Alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, user.Rename("Alice Smith"))
	assert.Equal(t, "Alice Smith", user.Name)

	assert.Error(t, user.Rename(""))
}
