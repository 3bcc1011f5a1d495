package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
	usecaseErrors "github.com/orbitrondev/mom-service/internal/usecase/errors"
	momUsecase "github.com/orbitrondev/mom-service/internal/usecase/mom"
	"github.com/orbitrondev/mom-service/pkg/dates"
)

// stubMoMService implements momUsecase.Service with canned results.
type stubMoMService struct {
	mom      *entities.MoM
	moms     []*entities.MoM
	complete *momUsecase.CompleteMoM
	summary  *momUsecase.DeletionSummary
	err      error
}

func (s *stubMoMService) Create(context.Context, momUsecase.CreateMoMInput) (*entities.MoM, error) {
	return s.mom, s.err
}
func (s *stubMoMService) GetByID(context.Context, int) (*entities.MoM, error) {
	return s.mom, s.err
}
func (s *stubMoMService) List(context.Context, repositories.MoMFilters) ([]*entities.MoM, int64, error) {
	return s.moms, int64(len(s.moms)), s.err
}
func (s *stubMoMService) GetByProject(context.Context, string) ([]*entities.MoM, error) {
	return s.moms, s.err
}
func (s *stubMoMService) Update(context.Context, int, momUsecase.UpdateMoMInput) (*entities.MoM, error) {
	return s.mom, s.err
}
func (s *stubMoMService) UpdateStatus(context.Context, int, entities.MoMStatus) (*entities.MoM, error) {
	return s.mom, s.err
}
func (s *stubMoMService) Delete(context.Context, int) error { return s.err }
func (s *stubMoMService) GetComplete(context.Context, int) (*momUsecase.CompleteMoM, error) {
	return s.complete, s.err
}
func (s *stubMoMService) DeleteComplete(context.Context, int) (*momUsecase.DeletionSummary, error) {
	return s.summary, s.err
}

func sampleMoM() *entities.MoM {
	meeting, _ := dates.Parse("2026-08-20")
	created, _ := dates.Parse("2026-08-20")
	start, _ := dates.ParseClock("09:00")
	end, _ := dates.ParseClock("10:30")
	return &entities.MoM{
		ID:          2,
		MeetingDate: meeting,
		StartTime:   start,
		EndTime:     end,
		Attendees:   datatypes.JSONSlice[string]{"alice", "bob"},
		Project:     "apollo",
		MeetingType: entities.MeetingTypeOnline,
		Status:      entities.MoMStatusOpen,
		CreatedAt:   created,
		CreatedBy:   7,
	}
}

func TestMoMGetByIDFormatsDates(t *testing.T) {
	h := NewMoM(&stubMoMService{mom: sampleMoM()}, nil, zap.NewNop())

	_, c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetPath("/v1/mom/:id")
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data struct {
			MeetingDate string `json:"meeting_date"`
			StartTime   string `json:"start_time"`
			EndTime     string `json:"end_time"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Data.MeetingDate != "2026-08-20" {
		t.Errorf("meeting_date = %q", resp.Data.MeetingDate)
	}
	if resp.Data.StartTime != "09:00" || resp.Data.EndTime != "10:30" {
		t.Errorf("times = %q..%q, want 09:00..10:30", resp.Data.StartTime, resp.Data.EndTime)
	}
}

func TestMoMGetByIDNotFound(t *testing.T) {
	h := NewMoM(&stubMoMService{err: usecaseErrors.ErrMoMNotFound}, nil, zap.NewNop())

	_, c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetPath("/v1/mom/:id")
	c.SetParamNames("id")
	c.SetParamValues("404")

	if err := h.GetByID(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestMoMCreateRejectsBadPayload(t *testing.T) {
	h := NewMoM(&stubMoMService{mom: sampleMoM()}, nil, zap.NewNop())

	// end_time malformed, attendees empty
	body := `{"meeting_date":"2026-08-20","start_time":"09:00","end_time":"later","attendees":[],"project":"apollo","meeting_type":"Online","location_link":"https://meet/x","created_by":7}`
	_, c, rec := newTestContext(http.MethodPost, "/v1/mom", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestMoMDeleteCompleteResponse(t *testing.T) {
	mom := sampleMoM()
	summary := &momUsecase.DeletionSummary{
		MoM:                  mom,
		ExpectedInformations: 3,
		ExpectedDecisions:    2,
		ExpectedActionItems:  4,
		DeletedInformations:  3,
		DeletedDecisions:     2,
		DeletedActionItems:   4,
	}
	h := NewMoM(&stubMoMService{summary: summary}, nil, zap.NewNop())

	_, c, rec := newTestContext(http.MethodDelete, "/", "")
	c.SetPath("/v1/mom/:id/complete")
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.DeleteComplete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data struct {
			MomID   int  `json:"mom_id"`
			Deleted bool `json:"deleted"`
			Summary struct {
				DeletedCounts struct {
					TotalItems int64 `json:"total_items"`
				} `json:"deleted_counts"`
				Verification struct {
					AllDeletedSuccessfully bool `json:"all_deleted_successfully"`
				} `json:"verification"`
			} `json:"summary"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Data.MomID != 2 || !resp.Data.Deleted {
		t.Errorf("mom_id=%d deleted=%v", resp.Data.MomID, resp.Data.Deleted)
	}
	if resp.Data.Summary.DeletedCounts.TotalItems != 9 {
		t.Errorf("total_items = %d, want 9", resp.Data.Summary.DeletedCounts.TotalItems)
	}
	if !resp.Data.Summary.Verification.AllDeletedSuccessfully {
		t.Error("verification must pass when counts match")
	}
}

func TestMoMDeleteCompleteInvalidatesSummaryCache(t *testing.T) {
	summary := &momUsecase.DeletionSummary{MoM: sampleMoM(), ExpectedActionItems: 1, DeletedActionItems: 1}
	cache := &fakeSummaryCache{payload: []byte(`{}`)}
	h := NewMoM(&stubMoMService{summary: summary}, cache, zap.NewNop())

	_, c, rec := newTestContext(http.MethodDelete, "/", "")
	c.SetPath("/v1/mom/:id/complete")
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.DeleteComplete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if cache.invalidated != 1 {
		t.Error("cascade delete removes action items, so it must invalidate the summary cache")
	}

	// A failed cascade leaves the cache alone.
	failing := NewMoM(&stubMoMService{err: usecaseErrors.ErrMoMNotFound}, cache, zap.NewNop())
	cache.payload = []byte(`{}`)

	_, c2, _ := newTestContext(http.MethodDelete, "/", "")
	c2.SetPath("/v1/mom/:id/complete")
	c2.SetParamNames("id")
	c2.SetParamValues("404")

	if err := failing.DeleteComplete(c2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.invalidated != 1 {
		t.Error("failed cascade must not touch the cache")
	}
}
