package gorm

import "time"

// Aircraft is a single airframe in the fleet. Model is the key into the
// cruise speed table.
type Aircraft struct {
	ID           uint      `gorm:"column:id;primaryKey"`
	Registration string    `gorm:"column:registration;type:varchar(10);not null;uniqueIndex"`
	Model        string    `gorm:"column:model;type:varchar(100);not null"`
	Manufacturer string    `gorm:"column:manufacturer;type:varchar(100)"`
	SeatCapacity int       `gorm:"column:seat_capacity"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Aircraft) TableName() string {
	return "aircraft"
}
