package entities

import (
	"time"

	"gorm.io/datatypes"

	"github.com/orbitrondev/mom-service/pkg/dates"
)

// ActionItemStatus represents the status of an action item. The four values
// form no enforced transition graph; any value may be set at any time.
type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "Pending"
	ActionItemStatusInProgress ActionItemStatus = "In Progress"
	ActionItemStatusCompleted  ActionItemStatus = "Completed"
	ActionItemStatusCancelled  ActionItemStatus = "Cancelled"
)

// RemarkEntry is one entry of an action item's append-only remark log.
// RemarkDate is stored as a YYYY-MM-DD string inside the jsonb array.
type RemarkEntry struct {
	Text       string `json:"text"`
	By         string `json:"by"`
	RemarkDate string `json:"remark_date"`
}

// MoMActionItem is a task assigned during a meeting.
//
// Project and MeetingDate are deliberate denormalized copies of the owning
// meeting's fields: an item keeps its project label and meeting date even if
// it is reassigned or the meeting record changes. AssignedTo is the original
// assignee and stays stable; ReAssignedTo, when set, is the active assignee.
type MoMActionItem struct {
	ID           int                              `gorm:"primaryKey;autoIncrement" json:"id"`
	MomID        int                              `gorm:"column:mom_id;not null;index" json:"mom_id"`
	Project      string                           `gorm:"type:varchar(100);not null" json:"project"`
	ActionItem   string                           `gorm:"type:varchar(255);not null" json:"action_item"`
	AssignedTo   string                           `gorm:"type:varchar(255);not null;index" json:"assigned_to"`
	DueDate      datatypes.Date                   `gorm:"type:date;not null;index" json:"due_date"`
	Status       ActionItemStatus                 `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Remarks      datatypes.JSONSlice[RemarkEntry] `gorm:"column:remark" json:"remark"`
	UpdatedAt    *datatypes.Date                  `gorm:"type:date" json:"updated_at"`
	ReAssignedTo *string                          `gorm:"type:varchar(255);index" json:"re_assigned_to"`
	MeetingDate  datatypes.Date                   `gorm:"type:date" json:"meeting_date"`
}

// TableName specifies the table name for MoMActionItem
func (MoMActionItem) TableName() string {
	return "mom_action_item"
}

// NormalizeRemarks replaces a nil remark log with an empty one. Callers must
// invoke this after every read so the log is never null on the wire.
func (a *MoMActionItem) NormalizeRemarks() {
	if a.Remarks == nil {
		a.Remarks = datatypes.JSONSlice[RemarkEntry]{}
	}
}

// AppendRemark adds an entry at the end of the remark log. The slice is
// copied before reassignment; gorm only detects changes to whole-column
// jsonb values when the column gets a fresh value.
func (a *MoMActionItem) AppendRemark(entry RemarkEntry) {
	remarks := make([]RemarkEntry, 0, len(a.Remarks)+1)
	remarks = append(remarks, a.Remarks...)
	remarks = append(remarks, entry)
	a.Remarks = datatypes.JSONSlice[RemarkEntry](remarks)
}

// AppendRemarks extends the log with the given entries, preserving order.
func (a *MoMActionItem) AppendRemarks(entries []RemarkEntry) {
	remarks := make([]RemarkEntry, 0, len(a.Remarks)+len(entries))
	remarks = append(remarks, a.Remarks...)
	remarks = append(remarks, entries...)
	a.Remarks = datatypes.JSONSlice[RemarkEntry](remarks)
}

// LatestRemark returns the entry with the most recent remark_date. When any
// entry's date fails to parse, it falls back to the last entry in storage
// order. The second return value is false for an empty log.
func (a *MoMActionItem) LatestRemark() (RemarkEntry, bool) {
	if len(a.Remarks) == 0 {
		return RemarkEntry{}, false
	}

	latest := a.Remarks[0]
	latestDate, err := time.Parse(dates.DayFormat, latest.RemarkDate)
	if err != nil {
		return a.Remarks[len(a.Remarks)-1], true
	}

	for _, entry := range a.Remarks[1:] {
		d, err := time.Parse(dates.DayFormat, entry.RemarkDate)
		if err != nil {
			return a.Remarks[len(a.Remarks)-1], true
		}
		if d.After(latestDate) {
			latest = entry
			latestDate = d
		}
	}
	return latest, true
}

// RemarksByUser groups the log by author. Order within each group follows
// storage order, so every remark lands in exactly one bucket and the bucket
// sizes sum to the log length.
func (a *MoMActionItem) RemarksByUser() map[string][]RemarkEntry {
	if len(a.Remarks) == 0 {
		return nil
	}
	grouped := make(map[string][]RemarkEntry)
	for _, entry := range a.Remarks {
		by := entry.By
		if by == "" {
			by = "Unknown"
		}
		grouped[by] = append(grouped[by], entry)
	}
	return grouped
}
