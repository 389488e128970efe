package gorm

import "time"

// Flight is a scheduled leg. Its departure/arrival window is the reservation it
// holds on its aircraft and on every crew member in Crew.
type Flight struct {
	ID                 uint         `gorm:"column:id;primaryKey"`
	FlightNumber       string       `gorm:"column:flight_number;type:varchar(10);not null;uniqueIndex"`
	DepartureTime      time.Time    `gorm:"column:departure_time;not null;index"`
	ArrivalTime        time.Time    `gorm:"column:arrival_time;not null;index"`
	AircraftID         uint         `gorm:"column:aircraft_id;not null;index"`
	Aircraft           Aircraft     `gorm:"foreignKey:AircraftID;constraint:OnDelete:RESTRICT"`
	DepartureAirportID uint         `gorm:"column:departure_airport_id;not null;index"`
	DepartureAirport   Airport      `gorm:"foreignKey:DepartureAirportID;constraint:OnDelete:RESTRICT"`
	ArrivalAirportID   uint         `gorm:"column:arrival_airport_id;not null;index"`
	ArrivalAirport     Airport      `gorm:"foreignKey:ArrivalAirportID;constraint:OnDelete:RESTRICT"`
	Crew               []CrewMember `gorm:"many2many:flight_crew_members;"`
	CreatedAt          time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Flight) TableName() string {
	return "flights"
}

// FlightCrewMember is one row of the flight/crew join table.
type FlightCrewMember struct {
	FlightID     uint `gorm:"column:flight_id;primaryKey"`
	CrewMemberID uint `gorm:"column:crew_member_id;primaryKey;index"`
}

// TableName specifies the table name for GORM
func (FlightCrewMember) TableName() string {
	return "flight_crew_members"
}
