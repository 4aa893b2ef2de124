package model

import "time"

// ProjectModel mirrors the 'projects' table. OwnerID references accounts.id.
type ProjectModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	OwnerID     int64  `gorm:"index;not null"`
	Name        string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
