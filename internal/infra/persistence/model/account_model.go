// Package model holds the GORM persistence models mirroring the database tables.
package model

import "time"

// AccountModel mirrors the 'accounts' table. The unique indexes on username
// and mail are the final authority on uniqueness; service-level pre-checks
// are only a fast path.
type AccountModel struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	Username     string     `gorm:"type:varchar(150);uniqueIndex:idx_accounts_username;not null"`
	Mail         string     `gorm:"type:varchar(255);uniqueIndex:idx_accounts_mail;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	DateJoined   time.Time  `gorm:"not null"`
	LastLogin    *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
