package entities

// MoMInformation is a single informational note recorded under a meeting.
type MoMInformation struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	MomID       int    `gorm:"column:mom_id;not null;index" json:"mom_id"`
	Information string `gorm:"type:varchar(255);not null" json:"information"`
}

// TableName specifies the table name for MoMInformation
func (MoMInformation) TableName() string {
	return "mom_information"
}
