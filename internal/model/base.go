package model

import "time"

// BaseModel audit timestamps embedded by every table.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// NameMaxLength is the column width of every name column.
const NameMaxLength = 100

// All lists the models in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&Department{},
		&Employee{},
		&Dependent{},
	}
}
