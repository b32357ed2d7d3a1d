package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/linkup-dev/linkup/internal/handlers"
	"github.com/linkup-dev/linkup/internal/middleware"
	"github.com/linkup-dev/linkup/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.GET("", handlers.ListUsers)
			users.GET("/profile", handlers.GetProfile)
			users.PUT("/profile", handlers.UpdateProfile)
			users.GET("/suggestions", handlers.GetSuggestions)
		}

		requests := api.Group("/friend-requests", middleware.AuthMiddleware())
		{
			requests.POST("/send/:recipient_id", handlers.SendFriendRequest)
			requests.PUT("/:request_id/accept", handlers.AcceptFriendRequest)
			requests.PUT("/:request_id/reject", handlers.RejectFriendRequest)
			requests.GET("/incoming", handlers.ListIncomingRequests)
			requests.GET("/list", handlers.ListFriends)
		}
	}

	return r
}
