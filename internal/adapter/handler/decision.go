package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/orbitrondev/mom-service/errors"
	"github.com/orbitrondev/mom-service/internal/adapter/dto/common"
	momdto "github.com/orbitrondev/mom-service/internal/adapter/dto/mom"
	"github.com/orbitrondev/mom-service/internal/adapter/presenter"
	momUsecase "github.com/orbitrondev/mom-service/internal/usecase/mom"
)

// Decision handles meeting decision record endpoints
type Decision struct {
	service momUsecase.DecisionUsecase
	logger  *zap.Logger
}

// NewDecision creates a new decision record handler
func NewDecision(service momUsecase.DecisionUsecase, logger *zap.Logger) *Decision {
	return &Decision{service: service, logger: logger}
}

// Create handles POST /v1/mom/decision
func (h *Decision) Create(c echo.Context) error {
	var req momdto.CreateDecisionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	decision, err := h.service.Create(c.Request().Context(), req.MomID, req.Decision)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToDecisionResponse(decision))
}

// List handles GET /v1/mom/decision
func (h *Decision) List(c echo.Context) error {
	var req momdto.ListAgendaRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	req.Limit = defaultLimit(req.Limit)

	decisions, total, err := h.service.List(c.Request().Context(), req.MomID, req.Skip, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	envelope := common.NewListEnvelope(presenter.ToDecisionResponses(decisions), total, req.Skip, req.Limit)
	return HandleSuccess(h.logger, c, http.StatusOK, envelope)
}

// GetByID handles GET /v1/mom/decision/:id
func (h *Decision) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	decision, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToDecisionResponse(decision))
}

// GetByMoM handles GET /v1/mom/decision/mom/:momID
func (h *Decision) GetByMoM(c echo.Context) error {
	momID, err := parseIDParam(c, "momID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	decisions, err := h.service.GetByMoM(c.Request().Context(), momID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToDecisionResponses(decisions))
}

// Update handles PUT /v1/mom/decision/:id
func (h *Decision) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req momdto.UpdateDecisionRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	decision, err := h.service.Update(c.Request().Context(), id, req.Decision)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToDecisionResponse(decision))
}

// Delete handles DELETE /v1/mom/decision/:id
func (h *Decision) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]interface{}{
		"id":      id,
		"deleted": true,
	})
}

// DeleteByMoM handles DELETE /v1/mom/decision/mom/:momID
func (h *Decision) DeleteByMoM(c echo.Context) error {
	momID, err := parseIDParam(c, "momID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	count, err := h.service.DeleteByMoM(c.Request().Context(), momID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, momdto.DeleteByMoMResponse{
		MomID:        momID,
		DeletedCount: count,
		Message:      "decisions deleted",
	})
}
