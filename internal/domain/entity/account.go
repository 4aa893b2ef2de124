// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// Account is the persisted identity record of the system. Every planning
// project and every issued token ultimately points back at one of these.
type Account struct {
	ID           int64      // Store-assigned identifier, stable for the account's lifetime.
	Username     string     // Login name, stored lowercase, unique across all accounts.
	Mail         string     // Contact mail address, unique across all accounts.
	PasswordHash string     // One-way hash of the password. Never serialized outward.
	DateJoined   time.Time  // Set once when the account is created.
	LastLogin    *time.Time // Nil until the first successful login.
}

// NormalizeUsername lowercases a username the way it is stored and compared.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Projection is the outward-facing view of an account. It carries everything
// except the password hash and is what every handler returns.
type Projection struct {
	ID         int64      `json:"id"`
	Username   string     `json:"username"`
	Mail       string     `json:"mail"`
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// Project returns the account's non-secret projection.
func (a *Account) Project() *Projection {
	if a == nil {
		return nil
	}

	return &Projection{
		ID:         a.ID,
		Username:   a.Username,
		Mail:       a.Mail,
		DateJoined: a.DateJoined,
		LastLogin:  a.LastLogin,
	}
}
