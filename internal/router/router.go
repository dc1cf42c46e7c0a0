package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/taskdeck-dev/taskdeck/internal/handlers"
	"github.com/taskdeck-dev/taskdeck/internal/middleware"
	"github.com/taskdeck-dev/taskdeck/internal/ownership"
	"github.com/taskdeck-dev/taskdeck/internal/services"
	"github.com/taskdeck-dev/taskdeck/internal/store"
	"github.com/taskdeck-dev/taskdeck/internal/types"
)

func NewRouter(s store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	resolver := ownership.NewResolver(s)
	authHandler := handlers.NewAuthHandler(s)
	projectHandler := handlers.NewProjectHandler(services.NewProjectService(s, resolver))
	taskHandler := handlers.NewTaskHandler(services.NewTaskService(s, resolver))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.AuthMiddleware(s), authHandler.Me)
		}

		projects := api.Group("/projects", middleware.AuthMiddleware(s))
		{
			projects.GET("", projectHandler.List)
			projects.POST("", projectHandler.Create)
			projects.PUT("/:project_id", projectHandler.Rename)
			projects.DELETE("/:project_id", projectHandler.Delete)
		}

		tasks := api.Group("/tasks", middleware.AuthMiddleware(s))
		{
			tasks.GET("", taskHandler.List)
			tasks.POST("", taskHandler.Create)
			tasks.PUT("/:task_id", taskHandler.Update)
			tasks.DELETE("/:task_id", taskHandler.Delete)
		}
	}

	return r
}
