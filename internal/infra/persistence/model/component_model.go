package model

// ComponentModel mirrors the 'components' table. Fields is a list of
// parameter names, stored as a json column.
type ComponentModel struct {
	ID        int64    `gorm:"primaryKey;autoIncrement"`
	Name      string   `gorm:"type:varchar(100);uniqueIndex:idx_components_name;not null"`
	OemofType string   `gorm:"type:varchar(100);not null"`
	Fields    []string `gorm:"serializer:json;type:jsonb"`
}

// TableName explicitly sets the table name for GORM.
func (ComponentModel) TableName() string {
	return "components"
}
