package presenter

import (
	momdto "github.com/orbitrondev/mom-service/internal/adapter/dto/mom"
	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/usecase/actionitem"
	"github.com/orbitrondev/mom-service/pkg/dates"
)

// ToRemarkResponse converts one remark log entry
func ToRemarkResponse(entry entities.RemarkEntry) momdto.RemarkEntryResponse {
	return momdto.RemarkEntryResponse{
		Text:       entry.Text,
		By:         entry.By,
		RemarkDate: entry.RemarkDate,
	}
}

// ToRemarkResponses converts a remark log; a nil log becomes an empty slice
func ToRemarkResponses(entries []entities.RemarkEntry) []momdto.RemarkEntryResponse {
	out := make([]momdto.RemarkEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, ToRemarkResponse(entry))
	}
	return out
}

// ToActionItemResponse converts an action item entity to its wire
// representation
func ToActionItemResponse(item *entities.MoMActionItem) momdto.ActionItemResponse {
	return momdto.ActionItemResponse{
		ID:           item.ID,
		MomID:        item.MomID,
		Project:      item.Project,
		ActionItem:   item.ActionItem,
		AssignedTo:   item.AssignedTo,
		DueDate:      dates.Format(item.DueDate),
		Status:       string(item.Status),
		Remark:       ToRemarkResponses(item.Remarks),
		UpdatedAt:    dates.FormatPtr(item.UpdatedAt),
		ReAssignedTo: item.ReAssignedTo,
		MeetingDate:  dates.Format(item.MeetingDate),
	}
}

// ToActionItemResponses converts a page of action item entities
func ToActionItemResponses(items []*entities.MoMActionItem) []momdto.ActionItemResponse {
	out := make([]momdto.ActionItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToActionItemResponse(item))
	}
	return out
}

// ToReassignedResponse converts an enriched reassigned item. AssignedTo keeps
// the original assignee while ReAssignedTo carries the active one.
func ToReassignedResponse(r actionitem.ReassignedItem) momdto.ReassignedActionItemResponse {
	item := r.Item
	resp := momdto.ReassignedActionItemResponse{
		ID:          item.ID,
		MomID:       item.MomID,
		Project:     item.Project,
		ActionItem:  item.ActionItem,
		AssignedTo:  item.AssignedTo,
		DueDate:     dates.Format(item.DueDate),
		Status:      string(item.Status),
		UpdatedAt:   dates.FormatPtr(item.UpdatedAt),
		MeetingDate: dates.Format(item.MeetingDate),
		AllRemarks:  ToRemarkResponses(item.Remarks),
		RemarkCount: r.RemarkCount,
	}
	if item.ReAssignedTo != nil {
		resp.ReAssignedTo = *item.ReAssignedTo
	}
	if r.LatestRemark != nil {
		latest := ToRemarkResponse(*r.LatestRemark)
		resp.LatestRemark = &latest
	}
	if len(r.RemarksByUser) > 0 {
		grouped := make(map[string][]momdto.RemarkEntryResponse, len(r.RemarksByUser))
		for user, entries := range r.RemarksByUser {
			grouped[user] = ToRemarkResponses(entries)
		}
		resp.RemarksByUser = grouped
	}
	return resp
}

// ToReassignedResponses converts a page of enriched reassigned items
func ToReassignedResponses(items []actionitem.ReassignedItem) []momdto.ReassignedActionItemResponse {
	out := make([]momdto.ReassignedActionItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToReassignedResponse(item))
	}
	return out
}

// ToSummaryResponse converts the overdue / due-soon reporting view
func ToSummaryResponse(summary *actionitem.Summary) momdto.SummaryResponse {
	return momdto.SummaryResponse{
		OverdueCount: summary.OverdueCount,
		DueSoonCount: summary.DueSoonCount,
		OverdueItems: ToActionItemResponses(summary.OverdueItems),
		DueSoonItems: ToActionItemResponses(summary.DueSoonItems),
	}
}
