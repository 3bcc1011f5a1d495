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

// Information handles meeting information note endpoints
type Information struct {
	service momUsecase.InformationUsecase
	logger  *zap.Logger
}

// NewInformation creates a new information note handler
func NewInformation(service momUsecase.InformationUsecase, logger *zap.Logger) *Information {
	return &Information{service: service, logger: logger}
}

// Create handles POST /v1/mom/information
func (h *Information) Create(c echo.Context) error {
	var req momdto.CreateInformationRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	info, err := h.service.Create(c.Request().Context(), req.MomID, req.Information)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToInformationResponse(info))
}

// List handles GET /v1/mom/information
func (h *Information) List(c echo.Context) error {
	var req momdto.ListAgendaRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	req.Limit = defaultLimit(req.Limit)

	infos, total, err := h.service.List(c.Request().Context(), req.MomID, req.Skip, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	envelope := common.NewListEnvelope(presenter.ToInformationResponses(infos), total, req.Skip, req.Limit)
	return HandleSuccess(h.logger, c, http.StatusOK, envelope)
}

// GetByID handles GET /v1/mom/information/:id
func (h *Information) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	info, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToInformationResponse(info))
}

// GetByMoM handles GET /v1/mom/information/mom/:momID
func (h *Information) GetByMoM(c echo.Context) error {
	momID, err := parseIDParam(c, "momID")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	infos, err := h.service.GetByMoM(c.Request().Context(), momID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToInformationResponses(infos))
}

// Update handles PUT /v1/mom/information/:id
func (h *Information) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req momdto.UpdateInformationRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload(err))
	}

	info, err := h.service.Update(c.Request().Context(), id, req.Information)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToInformationResponse(info))
}

// Delete handles DELETE /v1/mom/information/:id
func (h *Information) Delete(c echo.Context) error {
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

// DeleteByMoM handles DELETE /v1/mom/information/mom/:momID
func (h *Information) DeleteByMoM(c echo.Context) error {
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
		Message:      "informations deleted",
	})
}
