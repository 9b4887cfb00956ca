package routes

import (
	"github.com/gin-gonic/gin"

	"medicare-portal-server/internal/config"
	"medicare-portal-server/internal/handlers"
	"medicare-portal-server/internal/middleware"
	"medicare-portal-server/internal/store"
	"medicare-portal-server/internal/utils"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, st store.Store, cfg *config.Config) {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(st, cfg)
	appointmentHandler := handlers.NewAppointmentHandler(st, st)
	prescriptionHandler := handlers.NewPrescriptionHandler(st)
	recordHandler := handlers.NewMedicalRecordHandler(st)
	dashboardHandler := handlers.NewDashboardHandler(st)

	router.GET("/", handlers.Root)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.GET("/health", handlers.Health)

		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/register", authHandler.Register)
		}
	}

	// Authenticated routes
	private := router.Group("/api")
	private.Use(middleware.AuthMiddleware(cfg)) // Apply JWT authentication middleware
	{
		private.GET("/auth/verify", authHandler.Verify)

		private.GET("/appointments", appointmentHandler.ListAppointments)
		private.POST("/appointments", appointmentHandler.CreateAppointment)

		private.GET("/prescriptions", prescriptionHandler.ListPrescriptions)
		private.GET("/records", recordHandler.ListMedicalRecords)

		private.GET("/dashboard/stats", dashboardHandler.GetStats)
	}

	router.NoRoute(func(c *gin.Context) {
		utils.NotFound(c, "Route not found")
	})
}
