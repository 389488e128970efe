package gorm

import "time"

// CrewMember is a pilot, copilot or flight attendant. Role is stored lower-case.
type CrewMember struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	FirstName string    `gorm:"column:first_name;type:varchar(100);not null"`
	LastName  string    `gorm:"column:last_name;type:varchar(100);not null"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;index"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (CrewMember) TableName() string {
	return "crew_members"
}
