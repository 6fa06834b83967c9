package server

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mhafidzn/daftarin/config"
	"github.com/mhafidzn/daftarin/internal/handlers"
	"github.com/mhafidzn/daftarin/internal/middleware"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	r.Use(cors.Default())
	r.Use(middleware.DatabaseMiddleware(db))

	public := r.Group("/api")
	{
		public.POST("/auth/login-check", handlers.LoginCheck)
		public.GET("/events/:slug", handlers.GetEvent)
		public.GET("/registration-steps/:eventId", handlers.ListRegistrationSteps)
	}

	protected := r.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware())
	{
		protected.PATCH("/customers/update", handlers.UpdateCustomer)
		protected.POST("/events/register", handlers.RegisterForEvent)
		protected.GET("/registrations/:eventId", handlers.GetRegistration)
		protected.GET("/registrations/:eventId/qr", handlers.GetRegistrationQR)
	}
}
