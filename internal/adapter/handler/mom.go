package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/orbitrondev/mom-service/errors"
	"github.com/orbitrondev/mom-service/internal/adapter/dto/common"
	momdto "github.com/orbitrondev/mom-service/internal/adapter/dto/mom"
	"github.com/orbitrondev/mom-service/internal/adapter/presenter"
	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
	momUsecase "github.com/orbitrondev/mom-service/internal/usecase/mom"
	"github.com/orbitrondev/mom-service/pkg/dates"
)

// MoM handles meeting record endpoints. The cascade delete removes action
// items, so it shares the summary cache with the action item handler and
// invalidates it.
type MoM struct {
	service momUsecase.Service
	cache   SummaryCache
	logger  *zap.Logger
}

// NewMoM creates a new meeting record handler. cache may be nil.
func NewMoM(service momUsecase.Service, cache SummaryCache, logger *zap.Logger) *MoM {
	return &MoM{service: service, cache: cache, logger: logger}
}

// Create handles POST /v1/mom
// @Summary Create a meeting record
// @Tags mom
// @Accept json
// @Produce json
// @Param request body momdto.CreateMoMRequest true "Meeting record"
// @Success 201 {object} momdto.MoMResponse
// @Router /v1/mom [post]
func (h *MoM) Create(c echo.Context) error {
	var req momdto.CreateMoMRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	input, err := buildCreateInput(&req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	mom, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToMoMResponse(mom))
}

// List handles GET /v1/mom
// @Summary List meeting records with filters and pagination
// @Tags mom
// @Produce json
// @Success 200 {object} common.ListEnvelope[momdto.MoMResponse]
// @Router /v1/mom [get]
func (h *MoM) List(c echo.Context) error {
	var req momdto.ListMoMsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	req.Limit = defaultLimit(req.Limit)

	filters, err := buildMoMFilters(&req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	moms, total, err := h.service.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	envelope := common.NewListEnvelope(presenter.ToMoMResponses(moms), total, req.Skip, req.Limit)
	return HandleSuccess(h.logger, c, http.StatusOK, envelope)
}

// GetByID handles GET /v1/mom/:id
func (h *MoM) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	mom, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMoMResponse(mom))
}

// GetByProject handles GET /v1/mom/project/:project
func (h *MoM) GetByProject(c echo.Context) error {
	project := c.Param("project")
	if project == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("project is required"))
	}

	moms, err := h.service.GetByProject(c.Request().Context(), project)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMoMResponses(moms))
}

// Update handles PUT /v1/mom/:id
func (h *MoM) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req momdto.UpdateMoMRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	input, err := buildUpdateInput(&req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	mom, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMoMResponse(mom))
}

// UpdateStatus handles PATCH /v1/mom/:id/status
func (h *MoM) UpdateStatus(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req momdto.UpdateMoMStatusRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	mom, err := h.service.UpdateStatus(c.Request().Context(), id, entities.MoMStatus(req.Status))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMoMResponse(mom))
}

// Delete handles DELETE /v1/mom/:id. Child records survive; cascade removal
// is DeleteComplete.
func (h *MoM) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"mom_id":  id,
		"deleted": true,
	})
}

// GetComplete handles GET /v1/mom/:id/complete
func (h *MoM) GetComplete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	complete, err := h.service.GetComplete(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToCompleteMoMResponse(complete))
}

// DeleteComplete handles DELETE /v1/mom/:id/complete. The meeting and every
// child record go in one transaction; the response carries the verification
// summary.
func (h *MoM) DeleteComplete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summary, err := h.service.DeleteComplete(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	// The cascade removed action items, so the cached summary is stale.
	if h.cache != nil {
		h.cache.Invalidate(c.Request().Context())
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToDeleteMoMResponse(id, summary))
}

// buildCreateInput converts a create request to usecase input
func buildCreateInput(req *momdto.CreateMoMRequest) (momUsecase.CreateMoMInput, error) {
	meetingDate, err := dates.Parse(req.MeetingDate)
	if err != nil {
		return momUsecase.CreateMoMInput{}, errors.ErrInvalidArgument("invalid meeting_date")
	}
	startTime, err := dates.ParseClock(req.StartTime)
	if err != nil {
		return momUsecase.CreateMoMInput{}, errors.ErrInvalidArgument("invalid start_time")
	}
	endTime, err := dates.ParseClock(req.EndTime)
	if err != nil {
		return momUsecase.CreateMoMInput{}, errors.ErrInvalidArgument("invalid end_time")
	}

	input := momUsecase.CreateMoMInput{
		MeetingDate:    meetingDate,
		StartTime:      startTime,
		EndTime:        endTime,
		Attendees:      req.Attendees,
		Absent:         req.Absent,
		OuterAttendees: req.OuterAttendees,
		Project:        req.Project,
		MeetingType:    entities.MeetingType(req.MeetingType),
		LocationLink:   req.LocationLink,
		CreatedBy:      req.CreatedBy,
	}
	if req.Status != nil {
		input.Status = entities.MoMStatus(*req.Status)
	}
	return input, nil
}

// buildUpdateInput converts a partial update request to usecase input
func buildUpdateInput(req *momdto.UpdateMoMRequest) (momUsecase.UpdateMoMInput, error) {
	var input momUsecase.UpdateMoMInput

	if req.MeetingDate != nil {
		d, err := dates.Parse(*req.MeetingDate)
		if err != nil {
			return input, errors.ErrInvalidArgument("invalid meeting_date")
		}
		input.MeetingDate = &d
	}
	if req.StartTime != nil {
		t, err := dates.ParseClock(*req.StartTime)
		if err != nil {
			return input, errors.ErrInvalidArgument("invalid start_time")
		}
		input.StartTime = &t
	}
	if req.EndTime != nil {
		t, err := dates.ParseClock(*req.EndTime)
		if err != nil {
			return input, errors.ErrInvalidArgument("invalid end_time")
		}
		input.EndTime = &t
	}
	input.Attendees = req.Attendees
	input.Absent = req.Absent
	input.OuterAttendees = req.OuterAttendees
	input.Project = req.Project
	input.LocationLink = req.LocationLink
	if req.MeetingType != nil {
		mt := entities.MeetingType(*req.MeetingType)
		input.MeetingType = &mt
	}
	if req.Status != nil {
		st := entities.MoMStatus(*req.Status)
		input.Status = &st
	}
	return input, nil
}

// buildMoMFilters converts list query parameters to repository filters
func buildMoMFilters(req *momdto.ListMoMsRequest) (repositories.MoMFilters, error) {
	filters := repositories.MoMFilters{
		Project: req.Project,
		Skip:    req.Skip,
		Limit:   req.Limit,
	}
	if req.Status != nil {
		st := entities.MoMStatus(*req.Status)
		filters.Status = &st
	}
	if req.MeetingType != nil {
		mt := entities.MeetingType(*req.MeetingType)
		filters.MeetingType = &mt
	}
	if req.MeetingDate != nil {
		d, err := dates.Parse(*req.MeetingDate)
		if err != nil {
			return filters, errors.ErrInvalidArgument("invalid meeting_date")
		}
		filters.MeetingDate = &d
	}
	filters.CreatedBy = req.CreatedBy
	return filters, nil
}
