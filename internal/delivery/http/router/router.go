// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vaxtrack/config"
	"vaxtrack/internal/delivery/http/middleware"
	"vaxtrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	UserHandler         *handler.UserHandler
	SessionHandler      *handler.SessionHandler
	ChildHandler        *handler.ChildHandler
	RecordHandler       *handler.RecordHandler
	DriveHandler        *handler.DriveHandler
	NotificationHandler *handler.NotificationHandler
	AuditHandler        *handler.AuditHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	userHandler         *handler.UserHandler
	sessionHandler      *handler.SessionHandler
	childHandler        *handler.ChildHandler
	recordHandler       *handler.RecordHandler
	driveHandler        *handler.DriveHandler
	notificationHandler *handler.NotificationHandler
	auditHandler        *handler.AuditHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		userHandler:         params.UserHandler,
		sessionHandler:      params.SessionHandler,
		childHandler:        params.ChildHandler,
		recordHandler:       params.RecordHandler,
		driveHandler:        params.DriveHandler,
		notificationHandler: params.NotificationHandler,
		auditHandler:        params.AuditHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Credential endpoints are rate limited per client IP.
	authLimiter := middleware.NewAuthRateLimiter(r.cfg)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register, authLimiter)
		authGroup.POST("/login", r.userHandler.Login, authLimiter)
		authGroup.POST("/refresh", r.userHandler.Refresh, authLimiter)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Account routes
	userGroup := e.Group("/me")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.GetMe)
		userGroup.PUT("", r.userHandler.UpdateProfile)
		userGroup.DELETE("", r.userHandler.DeleteAccount)
	}

	// Session management routes
	sessionGroup := e.Group("/sessions")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("", r.sessionHandler.ListSessions)
		sessionGroup.DELETE("/:id", r.sessionHandler.RevokeSession)
		sessionGroup.DELETE("", r.sessionHandler.RevokeAllSessions)
	}

	// Child registry. Ownership enforcement happens in the scoped
	// repositories; the router only guarantees authentication.
	childGroup := e.Group("/children")
	childGroup.Use(r.authMiddleware.Authenticate)
	{
		childGroup.POST("", r.childHandler.CreateChild)
		childGroup.GET("", r.childHandler.ListChildren)
		childGroup.GET("/:id", r.childHandler.GetChild)
		childGroup.PUT("/:id", r.childHandler.UpdateChild)
		childGroup.DELETE("/:id", r.childHandler.DeleteChild)
		childGroup.GET("/:id/card.png", r.childHandler.GetCardQR)

		childGroup.POST("/:childID/records", r.recordHandler.AddRecord)
		childGroup.GET("/:childID/records", r.recordHandler.ListRecords)
	}

	// Individual vaccine records
	recordGroup := e.Group("/records")
	recordGroup.Use(r.authMiddleware.Authenticate)
	{
		recordGroup.GET("/:id", r.recordHandler.GetRecord)
		recordGroup.PUT("/:id", r.recordHandler.UpdateRecord)
		recordGroup.DELETE("/:id", r.recordHandler.DeleteRecord)
	}

	// Drive catalog: reads for everyone, writes for admins only
	driveGroup := e.Group("/drives")
	driveGroup.Use(r.authMiddleware.Authenticate)
	{
		driveGroup.GET("", r.driveHandler.ListDrives)
		driveGroup.GET("/:id", r.driveHandler.GetDrive)

		adminDrives := driveGroup.Group("", r.authMiddleware.RequireAdmin)
		adminDrives.POST("", r.driveHandler.CreateDrive)
		adminDrives.PUT("/:id", r.driveHandler.UpdateDrive)
		adminDrives.POST("/:id/announce", r.driveHandler.AnnounceDrive)
	}

	// Notification inbox
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	// Audit trail
	auditGroup := e.Group("/audit")
	auditGroup.Use(r.authMiddleware.Authenticate)
	{
		auditGroup.GET("", r.auditHandler.ListRecent)
	}
}
