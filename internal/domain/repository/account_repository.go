// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"enplan/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// Duplicate-key sentinels. The store raises these when a write trips one of
// the unique indexes, which is the final authority on uniqueness: a pre-check
// read in the service is only a fast path and two concurrent registrations
// may both pass it.
var (
	ErrDuplicateUsername = errors.New("duplicate username")
	ErrDuplicateMail     = errors.New("duplicate mail")
)

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its store-assigned ID.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByUsername retrieves a single account by its lowercase username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// FindByMail retrieves a single account by its mail address.
	FindByMail(ctx context.Context, mail string) (*entity.Account, error)

	// Create persists a new account and assigns its ID. Returns
	// ErrDuplicateUsername or ErrDuplicateMail on a unique-index violation.
	Create(ctx context.Context, account *entity.Account) error

	// Update replaces the mutable fields of an existing account. Subject to
	// the same duplicate-key sentinels as Create.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account with the given ID. IDs are never reused.
	Delete(ctx context.Context, id int64) error
}
