package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orbitrondev/mom-service/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	momHandler        *MoM
	infoHandler       *Information
	decisionHandler   *Decision
	actionItemHandler *ActionItem
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	momHandler *MoM,
	infoHandler *Information,
	decisionHandler *Decision,
	actionItemHandler *ActionItem,
) *Router {
	return &Router{
		cfg:               cfg,
		momHandler:        momHandler,
		infoHandler:       infoHandler,
		decisionHandler:   decisionHandler,
		actionItemHandler: actionItemHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMoMRoutes(v1)
	rt.setupInformationRoutes(v1)
	rt.setupDecisionRoutes(v1)
	rt.setupActionItemRoutes(v1)
}

// setupMoMRoutes configures meeting record routes
func (rt *Router) setupMoMRoutes(g *echo.Group) {
	momGroup := g.Group("/mom")

	momGroup.POST("", rt.momHandler.Create)
	momGroup.GET("", rt.momHandler.List)
	momGroup.GET("/project/:project", rt.momHandler.GetByProject)
	momGroup.GET("/:id", rt.momHandler.GetByID)
	momGroup.PUT("/:id", rt.momHandler.Update)
	momGroup.PATCH("/:id/status", rt.momHandler.UpdateStatus)
	momGroup.DELETE("/:id", rt.momHandler.Delete)
	momGroup.GET("/:id/complete", rt.momHandler.GetComplete)
	momGroup.DELETE("/:id/complete", rt.momHandler.DeleteComplete)
}

// setupInformationRoutes configures information note routes
func (rt *Router) setupInformationRoutes(g *echo.Group) {
	infoGroup := g.Group("/mom/information")

	infoGroup.POST("", rt.infoHandler.Create)
	infoGroup.GET("", rt.infoHandler.List)
	infoGroup.GET("/mom/:momID", rt.infoHandler.GetByMoM)
	infoGroup.DELETE("/mom/:momID", rt.infoHandler.DeleteByMoM)
	infoGroup.GET("/:id", rt.infoHandler.GetByID)
	infoGroup.PUT("/:id", rt.infoHandler.Update)
	infoGroup.DELETE("/:id", rt.infoHandler.Delete)
}

// setupDecisionRoutes configures decision record routes
func (rt *Router) setupDecisionRoutes(g *echo.Group) {
	decisionGroup := g.Group("/mom/decision")

	decisionGroup.POST("", rt.decisionHandler.Create)
	decisionGroup.GET("", rt.decisionHandler.List)
	decisionGroup.GET("/mom/:momID", rt.decisionHandler.GetByMoM)
	decisionGroup.DELETE("/mom/:momID", rt.decisionHandler.DeleteByMoM)
	decisionGroup.GET("/:id", rt.decisionHandler.GetByID)
	decisionGroup.PUT("/:id", rt.decisionHandler.Update)
	decisionGroup.DELETE("/:id", rt.decisionHandler.Delete)
}

// setupActionItemRoutes configures action item routes. Literal segments come
// before the :id routes so /overdue/all and friends never parse as IDs.
func (rt *Router) setupActionItemRoutes(g *echo.Group) {
	itemGroup := g.Group("/mom/action-items")

	itemGroup.POST("", rt.actionItemHandler.Create)
	itemGroup.GET("", rt.actionItemHandler.List)
	itemGroup.GET("/mom/:momID", rt.actionItemHandler.GetByMoM)
	itemGroup.DELETE("/mom/:momID", rt.actionItemHandler.DeleteByMoM)
	itemGroup.GET("/user/:username", rt.actionItemHandler.GetByUser)
	itemGroup.GET("/overdue/all", rt.actionItemHandler.GetOverdue)
	itemGroup.GET("/due-soon/all", rt.actionItemHandler.GetDueSoon)
	itemGroup.GET("/stats/summary", rt.actionItemHandler.GetSummary)
	itemGroup.GET("/reassigned/:username", rt.actionItemHandler.GetReassigned)
	itemGroup.GET("/:id", rt.actionItemHandler.GetByID)
	itemGroup.PUT("/:id", rt.actionItemHandler.Update)
	itemGroup.POST("/:id/remark", rt.actionItemHandler.AddRemark)
	itemGroup.DELETE("/:id", rt.actionItemHandler.Delete)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"time":        time.Now().UTC().Format(time.RFC3339),
		"environment": env,
	})
}
