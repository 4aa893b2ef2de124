package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "alice", NormalizeUsername("Alice"))
	assert.Equal(t, "alice", NormalizeUsername("  ALICE  "))
	assert.Equal(t, "alice", NormalizeUsername("alice"))
	assert.Equal(t, "", NormalizeUsername("   "))
}

func TestAccount_Project_OmitsPasswordHash(t *testing.T) {
	lastLogin := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	account := &Account{
		ID:           1,
		Username:     "alice",
		Mail:         "alice@example.com",
		PasswordHash: "$2a$10$secret",
		DateJoined:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LastLogin:    &lastLogin,
	}

	raw, err := json.Marshal(account.Project())
	require.NoError(t, err)

	assert.Contains(t, string(raw), `"username":"alice"`)
	assert.Contains(t, string(raw), `"last_login"`)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}

func TestAccount_Project_OmitsEmptyLastLogin(t *testing.T) {
	account := &Account{ID: 1, Username: "alice", Mail: "alice@example.com"}

	raw, err := json.Marshal(account.Project())
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "last_login")
}
