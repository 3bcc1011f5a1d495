package mom

// MoMResponse represents a meeting record on the wire. Dates are
// YYYY-MM-DD, times are HH:MM.
type MoMResponse struct {
	ID             int      `json:"id"`
	MeetingDate    string   `json:"meeting_date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	Attendees      []string `json:"attendees"`
	Absent         []string `json:"absent"`
	OuterAttendees []string `json:"outer_attendees"`
	Project        string   `json:"project"`
	MeetingType    string   `json:"meeting_type"`
	LocationLink   string   `json:"location_link"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"created_at"`
	CreatedBy      int      `json:"created_by"`
}

// InformationResponse represents an information note on the wire
type InformationResponse struct {
	ID          int    `json:"id"`
	MomID       int    `json:"mom_id"`
	Information string `json:"information"`
}

// DecisionResponse represents a decision record on the wire
type DecisionResponse struct {
	ID       int    `json:"id"`
	MomID    int    `json:"mom_id"`
	Decision string `json:"decision"`
}

// RemarkEntryResponse is one remark log entry on the wire
type RemarkEntryResponse struct {
	Text       string `json:"text"`
	By         string `json:"by"`
	RemarkDate string `json:"remark_date"`
}

// ActionItemResponse represents an action item on the wire. Remark is the
// full append-only log, never null.
type ActionItemResponse struct {
	ID           int                   `json:"id"`
	MomID        int                   `json:"mom_id"`
	Project      string                `json:"project"`
	ActionItem   string                `json:"action_item"`
	AssignedTo   string                `json:"assigned_to"`
	DueDate      string                `json:"due_date"`
	Status       string                `json:"status"`
	Remark       []RemarkEntryResponse `json:"remark"`
	UpdatedAt    *string               `json:"updated_at"`
	ReAssignedTo *string               `json:"re_assigned_to"`
	MeetingDate  string                `json:"meeting_date"`
}

// ReassignedActionItemResponse is an action item with its remark breakdown
// for the reassignment report. AssignedTo stays the original assignee;
// ReAssignedTo is the active one.
type ReassignedActionItemResponse struct {
	ID            int                              `json:"id"`
	MomID         int                              `json:"mom_id"`
	Project       string                           `json:"project"`
	ActionItem    string                           `json:"action_item"`
	AssignedTo    string                           `json:"assigned_to"`
	ReAssignedTo  string                           `json:"re_assigned_to"`
	DueDate       string                           `json:"due_date"`
	Status        string                           `json:"status"`
	UpdatedAt     *string                          `json:"updated_at"`
	MeetingDate   string                           `json:"meeting_date"`
	AllRemarks    []RemarkEntryResponse            `json:"all_remarks"`
	RemarkCount   int                              `json:"remark_count"`
	LatestRemark  *RemarkEntryResponse             `json:"latest_remark"`
	RemarksByUser map[string][]RemarkEntryResponse `json:"remarks_by_user"`
}

// CompleteMoMResponse is the full meeting view with all child records and
// per-type totals
type CompleteMoMResponse struct {
	MoMResponse
	Informations      []InformationResponse `json:"informations"`
	Decisions         []DecisionResponse    `json:"decisions"`
	ActionItems       []ActionItemResponse  `json:"action_items"`
	TotalInformations int                   `json:"total_informations"`
	TotalDecisions    int                   `json:"total_decisions"`
	TotalActionItems  int                   `json:"total_action_items"`
}

// MoMDetailsSummary is the deleted meeting's snapshot inside a deletion
// summary
type MoMDetailsSummary struct {
	Project     string `json:"project"`
	MeetingDate string `json:"meeting_date"`
	Status      string `json:"status"`
	CreatedBy   int    `json:"created_by"`
}

// DeletedCountsSummary reports how many child rows each delete removed
type DeletedCountsSummary struct {
	Informations int64 `json:"informations"`
	Decisions    int64 `json:"decisions"`
	ActionItems  int64 `json:"action_items"`
	TotalItems   int64 `json:"total_items"`
}

// DeletionVerification compares pre-delete counts against what the deletes
// reported
type DeletionVerification struct {
	ExpectedInformations   int64 `json:"expected_informations"`
	ExpectedDecisions      int64 `json:"expected_decisions"`
	ExpectedActionItems    int64 `json:"expected_action_items"`
	AllDeletedSuccessfully bool  `json:"all_deleted_successfully"`
}

// DeletionSummaryResponse is the body of a cascade delete response
type DeletionSummaryResponse struct {
	MoMDetails    MoMDetailsSummary    `json:"mom_details"`
	DeletedCounts DeletedCountsSummary `json:"deleted_counts"`
	Verification  DeletionVerification `json:"verification"`
}

// DeleteMoMResponse is the top-level cascade delete response
type DeleteMoMResponse struct {
	MomID   int                     `json:"mom_id"`
	Deleted bool                    `json:"deleted"`
	Summary DeletionSummaryResponse `json:"summary"`
	Message string                  `json:"message"`
}

// DeleteByMoMResponse reports a bulk child delete
type DeleteByMoMResponse struct {
	MomID        int    `json:"mom_id"`
	DeletedCount int64  `json:"deleted_count"`
	Message      string `json:"message"`
}

// SummaryResponse is the overdue / due-soon reporting view
type SummaryResponse struct {
	OverdueCount int                  `json:"overdue_count"`
	DueSoonCount int                  `json:"due_soon_count"`
	OverdueItems []ActionItemResponse `json:"overdue_items"`
	DueSoonItems []ActionItemResponse `json:"due_soon_items"`
}
