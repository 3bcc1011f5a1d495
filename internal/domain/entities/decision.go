package entities

// MoMDecision is a single decision recorded under a meeting.
type MoMDecision struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	MomID    int    `gorm:"column:mom_id;not null;index" json:"mom_id"`
	Decision string `gorm:"type:varchar(255);not null" json:"decision"`
}

// TableName specifies the table name for MoMDecision
func (MoMDecision) TableName() string {
	return "mom_decision"
}
