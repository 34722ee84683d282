package router

import (
	"time"

	"gatherly/config"
	"gatherly/internal/handler"
	"gatherly/internal/middleware"
	"gatherly/internal/repository"
	"gatherly/internal/service"
	"gatherly/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup wires repositories, services, and handlers onto a gin engine. cloud
// may be nil, in which case the image upload route is not registered.
func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(middleware.NewRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	eventSvc := service.NewEventService(eventRepo, rsvpRepo, favRepo)
	interactionSvc := service.NewInteractionService(eventRepo, rsvpRepo, favRepo, commentRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc, userRepo)
	eventHandler := handler.NewEventHandler(eventSvc, userRepo)
	interactionHandler := handler.NewInteractionHandler(interactionSvc, userRepo)
	adminHandler := handler.NewAdminHandler(adminRepo, eventRepo, notifRepo)
	healthHandler := handler.NewHealthHandler()

	authMw := middleware.AuthRequired(&cfg.JWT)
	optionalMw := middleware.OptionalAuth(&cfg.JWT)
	adminMw := middleware.AdminRequired(userRepo)

	r.GET("/health", healthHandler.Handle)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/me", authMw, authHandler.Me)
		}

		events := api.Group("/events")
		{
			events.GET("", optionalMw, eventHandler.List)
			events.GET("/:id", optionalMw, eventHandler.Get)
			events.POST("", authMw, eventHandler.Create)
			events.PUT("/:id", authMw, eventHandler.Update)
			events.DELETE("/:id", authMw, eventHandler.Delete)

			events.POST("/:id/rsvp", authMw, interactionHandler.SetRSVP)
			events.GET("/:id/rsvp", authMw, interactionHandler.GetRSVP)
			events.POST("/:id/favorite", authMw, interactionHandler.SetFavorite)
			events.POST("/:id/comments", authMw, interactionHandler.AddComment)
			events.GET("/:id/comments", interactionHandler.ListComments)
		}

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("/events", eventHandler.Mine)
		}

		if cloud != nil {
			uploadHandler := handler.NewUploadHandler(cloud)
			api.POST("/uploads/event-image", authMw, uploadHandler.UploadEventImage)
		}

		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/active", adminHandler.ListActiveMembers)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/events", adminHandler.ListEvents)
			admin.DELETE("/events/:id", adminHandler.DeleteEvent)
			admin.GET("/stats", adminHandler.Stats)
			admin.POST("/notifications", adminHandler.CreateNotification)
			admin.GET("/notifications", adminHandler.ListNotifications)
			admin.DELETE("/notifications/:id", adminHandler.DeleteNotification)
		}
	}

	return r
}
