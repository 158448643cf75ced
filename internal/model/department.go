package model

// Department maps table department.
type Department struct {
	ID   uint   `gorm:"primaryKey"                                                json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex:uq_department_name" json:"name"`
	BaseModel
}

// TableName table name.
func (Department) TableName() string { return "department" }
