// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"equiptrack/internal/delivery/api/middleware"
	"equiptrack/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	LocationHandler     *handler.LocationHandler
	EquipmentHandler    *handler.EquipmentHandler
	BatchHandler        *handler.BatchHandler
	NotificationHandler *handler.NotificationHandler
	DashboardHandler    *handler.DashboardHandler
	ActorMiddleware     *middleware.ActorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	locationHandler     *handler.LocationHandler
	equipmentHandler    *handler.EquipmentHandler
	batchHandler        *handler.BatchHandler
	notificationHandler *handler.NotificationHandler
	dashboardHandler    *handler.DashboardHandler
	actorMiddleware     *middleware.ActorMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		locationHandler:     params.LocationHandler,
		equipmentHandler:    params.EquipmentHandler,
		batchHandler:        params.BatchHandler,
		notificationHandler: params.NotificationHandler,
		dashboardHandler:    params.DashboardHandler,
		actorMiddleware:     params.ActorMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every API v1 route names its acting user
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.actorMiddleware.Identify)

	requireAdmin := r.actorMiddleware.RequireAdmin

	usersGroup := apiV1.Group("/users", requireAdmin)
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("", r.userHandler.ListUsers)
	}

	buildingsGroup := apiV1.Group("/buildings")
	{
		buildingsGroup.GET("", r.locationHandler.ListBuildings)
		buildingsGroup.POST("", r.locationHandler.AddBuilding, requireAdmin)
		buildingsGroup.DELETE("/:id", r.locationHandler.DeleteBuilding, requireAdmin)
	}

	roomsGroup := apiV1.Group("/rooms", requireAdmin)
	{
		roomsGroup.POST("", r.locationHandler.AddRoom)
		roomsGroup.DELETE("/:id", r.locationHandler.DeleteRoom)
	}

	equipmentGroup := apiV1.Group("/equipment")
	{
		equipmentGroup.POST("", r.equipmentHandler.RegisterEquipment)
		equipmentGroup.GET("", r.equipmentHandler.ListEquipment)
		equipmentGroup.POST("/checkout", r.equipmentHandler.Checkout)
		equipmentGroup.POST("/checkin", r.equipmentHandler.Checkin)
		equipmentGroup.POST("/return", r.equipmentHandler.ReturnToStock)
		equipmentGroup.POST("/import", r.batchHandler.ImportEquipment, requireAdmin)
		equipmentGroup.GET("/:id", r.equipmentHandler.GetEquipment)
		equipmentGroup.GET("/:id/history", r.equipmentHandler.History)
		equipmentGroup.GET("/:id/label", r.equipmentHandler.Label)
	}

	historyGroup := apiV1.Group("/history", requireAdmin)
	{
		historyGroup.GET("", r.batchHandler.ListHistory)
		historyGroup.GET("/export", r.batchHandler.ExportHistory)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	apiV1.GET("/dashboard", r.dashboardHandler.Summary)
}
