package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/orbitrondev/mom-service/errors"
	"github.com/orbitrondev/mom-service/internal/adapter/dto/common"
	momdto "github.com/orbitrondev/mom-service/internal/adapter/dto/mom"
	"github.com/orbitrondev/mom-service/internal/adapter/presenter"
	"github.com/orbitrondev/mom-service/internal/domain/entities"
	"github.com/orbitrondev/mom-service/internal/domain/repositories"
	"github.com/orbitrondev/mom-service/internal/usecase/actionitem"
	"github.com/orbitrondev/mom-service/pkg/dates"
)

// ActionItem handles action item endpoints. The stats summary response is
// cached; every write invalidates it.
type ActionItem struct {
	service actionitem.Service
	cache   SummaryCache
	logger  *zap.Logger
}

// NewActionItem creates a new action item handler. cache may be nil.
func NewActionItem(service actionitem.Service, cache SummaryCache, logger *zap.Logger) *ActionItem {
	return &ActionItem{service: service, cache: cache, logger: logger}
}

// Create handles POST /v1/mom/action-items
// @Summary Create an action item
// @Tags action-items
// @Accept json
// @Produce json
// @Param request body momdto.CreateActionItemRequest true "Action item"
// @Success 201 {object} momdto.ActionItemResponse
// @Router /v1/mom/action-items [post]
func (h *ActionItem) Create(c echo.Context) error {
	var req momdto.CreateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	input, err := buildActionItemCreateInput(&req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.service.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.invalidateSummary(c)
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToActionItemResponse(item))
}

// List handles GET /v1/mom/action-items
func (h *ActionItem) List(c echo.Context) error {
	var req momdto.ListActionItemsRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	req.Limit = defaultLimit(req.Limit)

	filters, err := buildActionItemFilters(&req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	items, total, err := h.service.List(c.Request().Context(), filters)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	envelope := common.NewListEnvelope(presenter.ToActionItemResponses(items), total, req.Skip, req.Limit)
	return HandleSuccess(h.logger, c, http.StatusOK, envelope)
}

// GetByID handles GET /v1/mom/action-items/:id
func (h *ActionItem) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponse(item))
}

// GetByMoM handles GET /v1/mom/action-items/mom/:momID
func (h *ActionItem) GetByMoM(c echo.Context) error {
	momID, err := parseIDParam(c, "momID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	items, err := h.service.GetByMoM(c.Request().Context(), momID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponses(items))
}

// GetByUser handles GET /v1/mom/action-items/user/:username
func (h *ActionItem) GetByUser(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("username is required"))
	}

	var req momdto.SortedListRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	items, err := h.service.GetByAssignee(c.Request().Context(), username, req.SortBy, req.Order)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponses(items))
}

// GetOverdue handles GET /v1/mom/action-items/overdue/all. Due date alone
// decides: a Completed item past its due date still shows up.
func (h *ActionItem) GetOverdue(c echo.Context) error {
	items, err := h.service.GetOverdue(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponses(items))
}

// GetDueSoon handles GET /v1/mom/action-items/due-soon/all
func (h *ActionItem) GetDueSoon(c echo.Context) error {
	var req momdto.DueSoonRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if req.Days == 0 {
		req.Days = 7
	}

	items, err := h.service.GetDueSoon(c.Request().Context(), req.Days)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponses(items))
}

// GetReassigned handles GET /v1/mom/action-items/reassigned/:username
func (h *ActionItem) GetReassigned(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("username is required"))
	}

	var req momdto.SortedListRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	req.Limit = defaultLimit(req.Limit)

	items, total, err := h.service.GetReassigned(c.Request().Context(), username, req.SortBy, req.Order, req.Skip, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	envelope := common.NewListEnvelope(presenter.ToReassignedResponses(items), total, req.Skip, req.Limit)
	return HandleSuccess(h.logger, c, http.StatusOK, envelope)
}

// GetSummary handles GET /v1/mom/action-items/stats/summary. The rendered
// body is cached until the next action item write.
func (h *ActionItem) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()

	if h.cache != nil {
		if payload, ok := h.cache.Get(ctx); ok {
			return c.JSONBlob(http.StatusOK, payload)
		}
	}

	summary, err := h.service.Summary(ctx)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    presenter.ToSummaryResponse(summary),
	}

	if h.cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			h.cache.Set(ctx, payload)
		}
	}

	if h.logger != nil {
		h.logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, resp)
}

// Update handles PUT /v1/mom/action-items/:id. Remark entries append to the
// stored log; all other provided fields overwrite.
func (h *ActionItem) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req momdto.UpdateActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	input, err := buildActionItemUpdateInput(&req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	item, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.invalidateSummary(c)
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponse(item))
}

// AddRemark handles POST /v1/mom/action-items/:id/remark
func (h *ActionItem) AddRemark(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req momdto.AddRemarkRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	item, err := h.service.AddRemark(c.Request().Context(), id, req.Text, req.Username)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.invalidateSummary(c)
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToActionItemResponse(item))
}

// Delete handles DELETE /v1/mom/action-items/:id
func (h *ActionItem) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}

	h.invalidateSummary(c)
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"id":      id,
		"deleted": true,
	})
}

// DeleteByMoM handles DELETE /v1/mom/action-items/mom/:momID
func (h *ActionItem) DeleteByMoM(c echo.Context) error {
	momID, err := parseIDParam(c, "momID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	count, err := h.service.DeleteByMoM(c.Request().Context(), momID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.invalidateSummary(c)
	return HandleSuccess(h.logger, c, http.StatusOK, momdto.DeleteByMoMResponse{
		MomID:        momID,
		DeletedCount: count,
		Message:      "action items deleted",
	})
}

func (h *ActionItem) invalidateSummary(c echo.Context) {
	if h.cache != nil {
		h.cache.Invalidate(c.Request().Context())
	}
}

// buildActionItemCreateInput converts a create request to usecase input
func buildActionItemCreateInput(req *momdto.CreateActionItemRequest) (actionitem.CreateInput, error) {
	dueDate, err := dates.Parse(req.DueDate)
	if err != nil {
		return actionitem.CreateInput{}, errors.ErrInvalidArgument("invalid due_date")
	}
	meetingDate, err := dates.Parse(req.MeetingDate)
	if err != nil {
		return actionitem.CreateInput{}, errors.ErrInvalidArgument("invalid meeting_date")
	}

	remarks, err := buildRemarkEntries(req.Remark)
	if err != nil {
		return actionitem.CreateInput{}, err
	}

	input := actionitem.CreateInput{
		MomID:       req.MomID,
		ActionItem:  req.ActionItem,
		AssignedTo:  req.AssignedTo,
		DueDate:     dueDate,
		Project:     req.Project,
		MeetingDate: meetingDate,
		Remarks:     remarks,
	}
	if req.Status != nil {
		input.Status = entities.ActionItemStatus(*req.Status)
	}
	return input, nil
}

// buildActionItemUpdateInput converts a partial update request to usecase
// input
func buildActionItemUpdateInput(req *momdto.UpdateActionItemRequest) (actionitem.UpdateInput, error) {
	var input actionitem.UpdateInput

	input.ActionItem = req.ActionItem
	input.AssignedTo = req.AssignedTo
	input.ReAssignedTo = req.ReAssignedTo
	if req.DueDate != nil {
		d, err := dates.Parse(*req.DueDate)
		if err != nil {
			return input, errors.ErrInvalidArgument("invalid due_date")
		}
		input.DueDate = &d
	}
	if req.Status != nil {
		st := entities.ActionItemStatus(*req.Status)
		input.Status = &st
	}

	remarks, err := buildRemarkEntries(req.Remark)
	if err != nil {
		return input, err
	}
	input.Remarks = remarks
	return input, nil
}

// buildRemarkEntries converts request remark entries, defaulting the date to
// today
func buildRemarkEntries(reqs []momdto.RemarkEntryRequest) ([]entities.RemarkEntry, error) {
	if len(reqs) == 0 {
		return nil, nil
	}

	today := dates.Format(dates.Today())
	entries := make([]entities.RemarkEntry, 0, len(reqs))
	for _, r := range reqs {
		date := r.RemarkDate
		if date == "" {
			date = today
		} else if _, err := dates.Parse(date); err != nil {
			return nil, errors.ErrInvalidArgument("invalid remark_date")
		}
		entries = append(entries, entities.RemarkEntry{
			Text:       r.Text,
			By:         r.By,
			RemarkDate: date,
		})
	}
	return entries, nil
}

// buildActionItemFilters converts list query parameters to repository filters
func buildActionItemFilters(req *momdto.ListActionItemsRequest) (repositories.ActionItemFilters, error) {
	filters := repositories.ActionItemFilters{
		MomID:        req.MomID,
		AssignedTo:   req.AssignedTo,
		Remark:       req.Remark,
		ReAssignedTo: req.ReAssignedTo,
		Skip:         req.Skip,
		Limit:        req.Limit,
	}
	if req.DueDate != nil {
		d, err := dates.Parse(*req.DueDate)
		if err != nil {
			return filters, errors.ErrInvalidArgument("invalid due_date")
		}
		filters.DueDate = &d
	}
	if req.UpdatedAt != nil {
		d, err := dates.Parse(*req.UpdatedAt)
		if err != nil {
			return filters, errors.ErrInvalidArgument("invalid updated_at")
		}
		filters.UpdatedAt = &d
	}
	return filters, nil
}
