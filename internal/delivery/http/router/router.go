// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"beacon/config"
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AlertHandler   *handler.AlertHandler
	ContactHandler *handler.ContactHandler
	SystemHandler  *handler.SystemHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	alertHandler   *handler.AlertHandler
	contactHandler *handler.ContactHandler
	systemHandler  *handler.SystemHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		alertHandler:   params.AlertHandler,
		contactHandler: params.ContactHandler,
		systemHandler:  params.SystemHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	sosGroup := e.Group("/sos")
	{
		// Alert lifecycle
		sosGroup.POST("/alerts", r.alertHandler.TriggerAlert)
		sosGroup.GET("/alerts/active", r.alertHandler.GetActiveAlerts)
		sosGroup.GET("/alerts/:id", r.alertHandler.GetAlert)
		sosGroup.POST("/alerts/:id/acknowledge", r.alertHandler.AcknowledgeAlert)
		sosGroup.POST("/alerts/:id/resolve", r.alertHandler.ResolveAlert)
		sosGroup.POST("/alerts/:id/location", r.alertHandler.UpdateLocation)
		sosGroup.GET("/users/:userId/alerts", r.alertHandler.GetAlertHistory)

		// Emergency contacts
		sosGroup.GET("/users/:userId/contacts", r.contactHandler.ListContacts)
		sosGroup.PUT("/users/:userId/contacts", r.contactHandler.UpsertContact)
		sosGroup.DELETE("/users/:userId/contacts/:contactId", r.contactHandler.DeleteContact)

		// Pipeline dry run, only exposed when enabled
		if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
			sosGroup.POST("/test", r.systemHandler.TestSystem)
		}
	}
}
