package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// isUniqueConstraintViolation reports whether err was caused by a unique
// index rejecting a write.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

// uniqueConstraintName extracts the violated constraint/index name from a
// PostgreSQL unique_violation error, or "" when the driver did not surface
// one (e.g. GORM's translated gorm.ErrDuplicatedKey).
func uniqueConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return pgErr.ConstraintName
	}

	return ""
}

// constraintMentions matches a constraint name against a column, covering
// both our explicit index names (idx_accounts_username) and the names
// PostgreSQL generates on its own (accounts_username_key).
func constraintMentions(constraint, column string) bool {
	return strings.Contains(strings.ToLower(constraint), column)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}
