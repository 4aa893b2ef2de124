package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_accounts_username"}

	assert.True(t, isUniqueConstraintViolation(pgErr))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(pgErr, "create account")))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))

	assert.False(t, isUniqueConstraintViolation(errors.New("connection reset")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
}

func TestUniqueConstraintName(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_accounts_mail"}

	assert.Equal(t, "idx_accounts_mail", uniqueConstraintName(pgErr))
	assert.Equal(t, "idx_accounts_mail", uniqueConstraintName(errors.Wrap(pgErr, "create account")))

	// GORM's translated error carries no constraint name.
	assert.Equal(t, "", uniqueConstraintName(gorm.ErrDuplicatedKey))
	assert.Equal(t, "", uniqueConstraintName(errors.New("other")))
}

func TestConstraintMentions(t *testing.T) {
	// Our explicit index names.
	assert.True(t, constraintMentions("idx_accounts_username", "username"))
	assert.True(t, constraintMentions("idx_accounts_mail", "mail"))

	// Names PostgreSQL generates on its own.
	assert.True(t, constraintMentions("accounts_mail_key", "mail"))
	assert.True(t, constraintMentions("ACCOUNTS_USERNAME_KEY", "username"))

	assert.False(t, constraintMentions("idx_accounts_username", "mail"))
	assert.False(t, constraintMentions("", "mail"))
}
