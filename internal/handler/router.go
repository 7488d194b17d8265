package handler

import (
	"net/http"

	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/auth"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/config"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/repository"
	"github.com/akka-elcuestas93/PRCOMPU-portal-juegos/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter assembles the full route table with CORS, Swagger and the
// auth middleware chains.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Credentialed CORS for the configured frontend origins
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	sessions := session.NewManager(cfg.SessionSecret, cfg.CookieSameSite, cfg.CookieSecure)
	gameHandler := NewGameHandler(repository.NewGameRepository(db))
	authHandler := NewAuthHandler(repository.NewUserRepository(db), sessions)

	api := router.Group("/api")
	{
		// Auth routes
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
		}

		// Session lookup (anonymous clients get a null user)
		api.GET("/me", auth.OptionalSessionMiddleware(sessions), authHandler.Me)

		// Public catalog routes
		gameRoutes := api.Group("/games")
		{
			gameRoutes.GET("", gameHandler.List)
			gameRoutes.GET("/:id", gameHandler.Get)
		}

		// Catalog mutations (protected by auth and admin check)
		adminGameRoutes := api.Group("/games")
		adminGameRoutes.Use(auth.SessionMiddleware(sessions), auth.AdminMiddleware(sessions))
		{
			adminGameRoutes.POST("", gameHandler.Create)
			adminGameRoutes.PUT("/:id", gameHandler.Update)
			adminGameRoutes.PATCH("/:id", gameHandler.Update)
			adminGameRoutes.DELETE("/:id", gameHandler.Delete)
		}
	}

	return router
}
