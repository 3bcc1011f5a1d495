package entities

import (
	"gorm.io/datatypes"
)

// MeetingType represents how the meeting was held
type MeetingType string

const (
	MeetingTypeOnline  MeetingType = "Online"
	MeetingTypeOffline MeetingType = "Offline"
	MeetingTypeHybrid  MeetingType = "Hybrid"
)

// MoMStatus represents the lifecycle status of a Minutes of Meeting record
type MoMStatus string

const (
	MoMStatusOpen    MoMStatus = "Open"
	MoMStatusClosed  MoMStatus = "Closed"
	MoMStatusPending MoMStatus = "Pending"
)

// MoM is the meeting-level aggregate. Informations, decisions and action
// items hang off it by mom_id; the schema does not cascade deletes, the
// application sequences them (see usecase/mom.DeleteComplete).
type MoM struct {
	ID             int                         `gorm:"primaryKey;autoIncrement" json:"id"`
	MeetingDate    datatypes.Date              `gorm:"type:date;not null;index" json:"meeting_date"`
	StartTime      datatypes.Time              `gorm:"type:time;not null" json:"start_time"`
	EndTime        datatypes.Time              `gorm:"type:time;not null" json:"end_time"`
	Attendees      datatypes.JSONSlice[string] `gorm:"not null" json:"attendees"`
	Absent         datatypes.JSONSlice[string] `json:"absent"`
	OuterAttendees datatypes.JSONSlice[string] `gorm:"not null" json:"outer_attendees"`
	Project        string                      `gorm:"type:varchar(100);not null;index" json:"project"`
	MeetingType    MeetingType                 `gorm:"type:varchar(20);not null" json:"meeting_type"`
	LocationLink   string                      `gorm:"type:varchar(255);not null" json:"location_link"`
	Status         MoMStatus                   `gorm:"type:varchar(20);not null;default:'Open'" json:"status"`
	CreatedAt      datatypes.Date              `gorm:"type:date;not null" json:"created_at"`
	CreatedBy      int                         `gorm:"not null;index" json:"created_by"`
}

// TableName specifies the table name for MoM
func (MoM) TableName() string {
	return "mom"
}

// NormalizeAttendees ensures the list columns are never nil so JSON
// responses always render arrays.
func (m *MoM) NormalizeAttendees() {
	if m.Attendees == nil {
		m.Attendees = datatypes.JSONSlice[string]{}
	}
	if m.Absent == nil {
		m.Absent = datatypes.JSONSlice[string]{}
	}
	if m.OuterAttendees == nil {
		m.OuterAttendees = datatypes.JSONSlice[string]{}
	}
}
