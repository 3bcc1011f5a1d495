package mom

// CreateMoMRequest represents the request to create a meeting record
type CreateMoMRequest struct {
	MeetingDate    string   `json:"meeting_date" validate:"required,datetime=2006-01-02"`
	StartTime      string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime        string   `json:"end_time" validate:"required,datetime=15:04"`
	Attendees      []string `json:"attendees" validate:"required,min=1,dive,min=1"`
	Absent         []string `json:"absent,omitempty"`
	OuterAttendees []string `json:"outer_attendees"`
	Project        string   `json:"project" validate:"required,min=1,max=100"`
	MeetingType    string   `json:"meeting_type" validate:"required,oneof=Online Offline Hybrid"`
	LocationLink   string   `json:"location_link" validate:"required,min=1,max=255"`
	Status         *string  `json:"status,omitempty" validate:"omitempty,oneof=Open Closed Pending"`
	CreatedBy      int      `json:"created_by" validate:"required,gt=0"`
}

// UpdateMoMRequest represents a partial meeting update; only provided fields
// are applied
type UpdateMoMRequest struct {
	MeetingDate    *string   `json:"meeting_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime      *string   `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime        *string   `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Attendees      *[]string `json:"attendees,omitempty"`
	Absent         *[]string `json:"absent,omitempty"`
	OuterAttendees *[]string `json:"outer_attendees,omitempty"`
	Project        *string   `json:"project,omitempty" validate:"omitempty,min=1,max=100"`
	MeetingType    *string   `json:"meeting_type,omitempty" validate:"omitempty,oneof=Online Offline Hybrid"`
	LocationLink   *string   `json:"location_link,omitempty" validate:"omitempty,min=1,max=255"`
	Status         *string   `json:"status,omitempty" validate:"omitempty,oneof=Open Closed Pending"`
}

// UpdateMoMStatusRequest represents a status-only meeting update
type UpdateMoMStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Open Closed Pending"`
}

// ListMoMsRequest represents query parameters for listing meetings
type ListMoMsRequest struct {
	Skip        int     `query:"skip" validate:"min=0"`
	Limit       int     `query:"limit" validate:"omitempty,min=1,max=100"`
	Project     string  `query:"project"`
	Status      *string `query:"status" validate:"omitempty,oneof=Open Closed Pending"`
	MeetingType *string `query:"meeting_type" validate:"omitempty,oneof=Online Offline Hybrid"`
	MeetingDate *string `query:"meeting_date" validate:"omitempty,datetime=2006-01-02"`
	CreatedBy   *int    `query:"created_by" validate:"omitempty,gt=0"`
}

// CreateInformationRequest represents the request to record an information
// note under a meeting
type CreateInformationRequest struct {
	MomID       int    `json:"mom_id" validate:"required,gt=0"`
	Information string `json:"information" validate:"required,min=1,max=255"`
}

// UpdateInformationRequest updates an information note's text
type UpdateInformationRequest struct {
	Information string `json:"information" validate:"required,min=1,max=255"`
}

// CreateDecisionRequest represents the request to record a decision under a
// meeting
type CreateDecisionRequest struct {
	MomID    int    `json:"mom_id" validate:"required,gt=0"`
	Decision string `json:"decision" validate:"required,min=1,max=255"`
}

// UpdateDecisionRequest updates a decision's text
type UpdateDecisionRequest struct {
	Decision string `json:"decision" validate:"required,min=1,max=255"`
}

// ListAgendaRequest represents query parameters shared by the information
// and decision list endpoints
type ListAgendaRequest struct {
	Skip  int  `query:"skip" validate:"min=0"`
	Limit int  `query:"limit" validate:"omitempty,min=1,max=100"`
	MomID *int `query:"mom_id" validate:"omitempty,gt=0"`
}

// RemarkEntryRequest is one remark entry supplied by a client. RemarkDate
// defaults to today when omitted.
type RemarkEntryRequest struct {
	Text       string `json:"text" validate:"required,min=1"`
	By         string `json:"by" validate:"required,min=1"`
	RemarkDate string `json:"remark_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CreateActionItemRequest represents the request to create an action item
type CreateActionItemRequest struct {
	MomID       int                  `json:"mom_id" validate:"required,gt=0"`
	ActionItem  string               `json:"action_item" validate:"required,min=1,max=255"`
	AssignedTo  string               `json:"assigned_to" validate:"required,min=1,max=255"`
	DueDate     string               `json:"due_date" validate:"required,datetime=2006-01-02"`
	Status      *string              `json:"status,omitempty" validate:"omitempty,oneof=Pending 'In Progress' Completed Cancelled"`
	Project     string               `json:"project" validate:"required,min=1,max=100"`
	MeetingDate string               `json:"meeting_date" validate:"required,datetime=2006-01-02"`
	Remark      []RemarkEntryRequest `json:"remark,omitempty" validate:"omitempty,dive"`
}

// UpdateActionItemRequest represents a partial action item update. Remark
// entries are appended to the stored log, never replacing it.
type UpdateActionItemRequest struct {
	ActionItem   *string              `json:"action_item,omitempty" validate:"omitempty,min=1,max=255"`
	AssignedTo   *string              `json:"assigned_to,omitempty" validate:"omitempty,min=1,max=255"`
	DueDate      *string              `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status       *string              `json:"status,omitempty" validate:"omitempty,oneof=Pending 'In Progress' Completed Cancelled"`
	Remark       []RemarkEntryRequest `json:"remark,omitempty" validate:"omitempty,dive"`
	ReAssignedTo *string              `json:"re_assigned_to,omitempty" validate:"omitempty,min=1,max=255"`
}

// ListActionItemsRequest represents query parameters for listing action
// items
type ListActionItemsRequest struct {
	Skip         int     `query:"skip" validate:"min=0"`
	Limit        int     `query:"limit" validate:"omitempty,min=1,max=100"`
	MomID        *int    `query:"mom_id" validate:"omitempty,gt=0"`
	AssignedTo   string  `query:"assigned_to"`
	DueDate      *string `query:"due_date" validate:"omitempty,datetime=2006-01-02"`
	UpdatedAt    *string `query:"updated_at" validate:"omitempty,datetime=2006-01-02"`
	Remark       string  `query:"remark"`
	ReAssignedTo string  `query:"re_assigned_to"`
}

// AddRemarkRequest represents the request to append a remark to an action
// item
type AddRemarkRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	Username string `json:"username" validate:"required,min=1"`
}

// SortedListRequest represents sort and pagination query parameters for the
// assignee and reassignee views
type SortedListRequest struct {
	SortBy string `query:"sort_by"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc"`
	Skip   int    `query:"skip" validate:"min=0"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// DueSoonRequest represents the due-soon lookahead window
type DueSoonRequest struct {
	Days int `query:"days" validate:"omitempty,min=1,max=30"`
}
