// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fence/internal/delivery/http/middleware"
	"fence/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	LocationHandler    *handler.LocationHandler
	GeofenceHandler    *handler.GeofenceHandler
	LinkHandler        *handler.LinkHandler
	DeviceTokenHandler *handler.DeviceTokenHandler
	MedicationHandler  *handler.MedicationHandler
	IdentityMiddleware *middleware.IdentityMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	locationHandler    *handler.LocationHandler
	geofenceHandler    *handler.GeofenceHandler
	linkHandler        *handler.LinkHandler
	deviceTokenHandler *handler.DeviceTokenHandler
	medicationHandler  *handler.MedicationHandler
	identityMiddleware *middleware.IdentityMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		locationHandler:    params.LocationHandler,
		geofenceHandler:    params.GeofenceHandler,
		linkHandler:        params.LinkHandler,
		deviceTokenHandler: params.DeviceTokenHandler,
		medicationHandler:  params.MedicationHandler,
		identityMiddleware: params.IdentityMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration is the only route without a caller identity.
	e.POST("/users", r.userHandler.RegisterUser)

	api := e.Group("", r.identityMiddleware.RequireUser)
	{
		api.GET("/users/me", r.userHandler.GetMe)

		// Location ingest and lookup
		api.POST("/locations", r.locationHandler.ReportLocation)
		api.GET("/wards/:number/location", r.locationHandler.GetWardLocation)
		api.GET("/wards/:number/location/cached", r.locationHandler.GetCachedWardLocation)

		// Geofences and the ward's event history
		api.POST("/geofences", r.geofenceHandler.CreateGeofence)
		api.GET("/wards/:number/geofences", r.geofenceHandler.GetWardGeofences)
		api.DELETE("/geofences/:id", r.geofenceHandler.DeleteGeofence)
		api.GET("/wards/:number/logs", r.geofenceHandler.GetWardLogs)

		// Supporter-ward links
		api.POST("/links", r.linkHandler.AddLink)
		api.GET("/links/wards", r.linkHandler.GetWards)
		api.GET("/links/supporters", r.linkHandler.GetSupporters)
		api.GET("/links/primary", r.linkHandler.GetPrimarySupporter)
		api.PUT("/links/:id/primary", r.linkHandler.SetPrimarySupporter)
		api.DELETE("/links/:id", r.linkHandler.DeleteLink)
		api.GET("/links/qr", r.linkHandler.GetLinkQR)

		// Push device tokens
		api.POST("/device-tokens", r.deviceTokenHandler.RegisterToken)
		api.GET("/device-tokens", r.deviceTokenHandler.GetTokens)
		api.DELETE("/device-tokens/:token", r.deviceTokenHandler.DeleteToken)
		api.POST("/notification/emergency", r.deviceTokenHandler.EmergencyAlert)

		// Medications
		api.POST("/medications", r.medicationHandler.CreateMedication)
		api.GET("/wards/:number/medications", r.medicationHandler.GetWardMedications)
		api.PUT("/medications/:id", r.medicationHandler.UpdateMedication)
		api.DELETE("/medications/:id", r.medicationHandler.DeleteMedication)
		api.POST("/medications/:id/check", r.medicationHandler.CheckMedication)
		api.DELETE("/medications/:id/check", r.medicationHandler.UncheckMedication)
	}
}
