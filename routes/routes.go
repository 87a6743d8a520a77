package routes

import (
	"net/http"
	"time"

	"barberflow/handlers"
	"barberflow/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWebhookRoutes registers the inbound WhatsApp endpoints. These are
// public: Twilio and Meta authenticate via their own mechanisms.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	webhook := r.Group("/webhook")
	{
		webhook.POST("/twilio", hb.Webhook.TwilioWebhook)
		webhook.GET("/meta", hb.Webhook.VerifyMetaWebhook)
		webhook.POST("/meta", hb.Webhook.MetaWebhook)
	}
}

// RegisterAuthRoutes registers staff login.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterAdminRoutes registers the tenant-scoped admin API. All endpoints
// require a valid staff token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.AuthMiddleware())

		api.GET("/tenant", hb.Tenant.GetProfile)
		api.PUT("/tenant", hb.Tenant.UpdateProfile)

		api.GET("/services", hb.Catalog.ListServices)
		api.POST("/services", hb.Catalog.CreateService)
		api.PUT("/services/:id", hb.Catalog.UpdateService)
		api.DELETE("/services/:id", hb.Catalog.DeleteService)

		api.GET("/customers", hb.Customer.ListCustomers)

		api.GET("/appointments", hb.Appointment.ListAppointments)
		api.POST("/appointments", hb.Appointment.CreateAppointment)
		api.POST("/appointments/:id/cancel", hb.Appointment.CancelAppointment)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterWebhookRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
