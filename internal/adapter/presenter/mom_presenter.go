package presenter

import (
	momdto "github.com/orbitrondev/mom-service/internal/adapter/dto/mom"
	"github.com/orbitrondev/mom-service/internal/domain/entities"
	momUsecase "github.com/orbitrondev/mom-service/internal/usecase/mom"
	"github.com/orbitrondev/mom-service/pkg/dates"
)

// ToMoMResponse converts a meeting entity to its wire representation
func ToMoMResponse(mom *entities.MoM) momdto.MoMResponse {
	return momdto.MoMResponse{
		ID:             mom.ID,
		MeetingDate:    dates.Format(mom.MeetingDate),
		StartTime:      dates.FormatClock(mom.StartTime),
		EndTime:        dates.FormatClock(mom.EndTime),
		Attendees:      stringSlice(mom.Attendees),
		Absent:         stringSlice(mom.Absent),
		OuterAttendees: stringSlice(mom.OuterAttendees),
		Project:        mom.Project,
		MeetingType:    string(mom.MeetingType),
		LocationLink:   mom.LocationLink,
		Status:         string(mom.Status),
		CreatedAt:      dates.Format(mom.CreatedAt),
		CreatedBy:      mom.CreatedBy,
	}
}

// ToMoMResponses converts a page of meeting entities
func ToMoMResponses(moms []*entities.MoM) []momdto.MoMResponse {
	out := make([]momdto.MoMResponse, 0, len(moms))
	for _, mom := range moms {
		out = append(out, ToMoMResponse(mom))
	}
	return out
}

// ToInformationResponse converts an information note entity
func ToInformationResponse(info *entities.MoMInformation) momdto.InformationResponse {
	return momdto.InformationResponse{
		ID:          info.ID,
		MomID:       info.MomID,
		Information: info.Information,
	}
}

// ToInformationResponses converts a page of information note entities
func ToInformationResponses(infos []*entities.MoMInformation) []momdto.InformationResponse {
	out := make([]momdto.InformationResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, ToInformationResponse(info))
	}
	return out
}

// ToDecisionResponse converts a decision entity
func ToDecisionResponse(decision *entities.MoMDecision) momdto.DecisionResponse {
	return momdto.DecisionResponse{
		ID:       decision.ID,
		MomID:    decision.MomID,
		Decision: decision.Decision,
	}
}

// ToDecisionResponses converts a page of decision entities
func ToDecisionResponses(decisions []*entities.MoMDecision) []momdto.DecisionResponse {
	out := make([]momdto.DecisionResponse, 0, len(decisions))
	for _, decision := range decisions {
		out = append(out, ToDecisionResponse(decision))
	}
	return out
}

// ToCompleteMoMResponse assembles the full meeting view
func ToCompleteMoMResponse(complete *momUsecase.CompleteMoM) momdto.CompleteMoMResponse {
	return momdto.CompleteMoMResponse{
		MoMResponse:       ToMoMResponse(complete.MoM),
		Informations:      ToInformationResponses(complete.Informations),
		Decisions:         ToDecisionResponses(complete.Decisions),
		ActionItems:       ToActionItemResponses(complete.ActionItems),
		TotalInformations: len(complete.Informations),
		TotalDecisions:    len(complete.Decisions),
		TotalActionItems:  len(complete.ActionItems),
	}
}

// ToDeleteMoMResponse builds the cascade delete response from a deletion
// summary
func ToDeleteMoMResponse(momID int, summary *momUsecase.DeletionSummary) momdto.DeleteMoMResponse {
	return momdto.DeleteMoMResponse{
		MomID:   momID,
		Deleted: true,
		Summary: momdto.DeletionSummaryResponse{
			MoMDetails: momdto.MoMDetailsSummary{
				Project:     summary.MoM.Project,
				MeetingDate: dates.Format(summary.MoM.MeetingDate),
				Status:      string(summary.MoM.Status),
				CreatedBy:   summary.MoM.CreatedBy,
			},
			DeletedCounts: momdto.DeletedCountsSummary{
				Informations: summary.DeletedInformations,
				Decisions:    summary.DeletedDecisions,
				ActionItems:  summary.DeletedActionItems,
				TotalItems:   summary.TotalDeleted(),
			},
			Verification: momdto.DeletionVerification{
				ExpectedInformations:   summary.ExpectedInformations,
				ExpectedDecisions:      summary.ExpectedDecisions,
				ExpectedActionItems:    summary.ExpectedActionItems,
				AllDeletedSuccessfully: summary.AllDeleted(),
			},
		},
		Message: "MoM and all related records deleted successfully",
	}
}

func stringSlice(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
