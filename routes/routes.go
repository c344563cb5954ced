package routes

import (
	"net/http"
	"time"

	"lawnly/handlers"
	"lawnly/middleware"
	"lawnly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterAuthRoutes registers account and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Register)
		api.POST("/login", hb.Login)

		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.Logout)
	}

	profile := r.Group("/api/profile")
	{
		profile.Use(middleware.AuthMiddleware(hb.UserRepo))
		profile.GET("", hb.GetProfile)
		profile.PATCH("", hb.UpdateProfile)
		profile.DELETE("", hb.DeleteAccount)
	}
}

// RegisterServiceRoutes registers the public catalog and pricing endpoints.
// No account is needed to browse packages or get a quote.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("/packages", hb.ListPackages)
		api.GET("/addons", hb.ListAddOns)
		api.POST("/quick-quote", hb.QuickQuote)
		api.POST("/calculate-price", hb.CalculatePrice)
	}
}

// RegisterBookingRoutes registers the wizard session endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("/session", hb.StartBookingSession)
		api.GET("/session/:sessionId", hb.GetBookingSession)
		api.PUT("/session/:sessionId", hb.UpdateBookingForm)
		api.POST("/session/:sessionId/property", hb.SelectBookingProperty)
		api.POST("/session/:sessionId/next", hb.NextBookingStep)
		api.POST("/session/:sessionId/back", hb.PrevBookingStep)
		api.POST("/session/:sessionId/submit", hb.SubmitBooking)
		api.DELETE("/session/:sessionId", hb.CancelBookingSession)
	}
}

// RegisterPropertyRoutes registers the saved-property endpoints.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListProperties)
		api.POST("", hb.CreateProperty)
		api.GET("/:id", hb.GetProperty)
		api.PUT("/:id", hb.UpdateProperty)
		api.PUT("/:id/primary", hb.SetPrimaryProperty)
		api.DELETE("/:id", hb.DeleteProperty)
	}
}

// RegisterAppointmentRoutes registers the customer-facing appointment
// endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListMyAppointments)
		api.GET("/:id", hb.GetMyAppointment)
		api.POST("/:id/cancel", hb.CancelMyAppointment)
	}
}

// RegisterAdminRoutes registers the back office: appointment management,
// the calendar, catalog CRUD, the crew roster, and the customer directory.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.AdminMiddleware())

		api.GET("/appointments", hb.ListAppointments)
		api.GET("/appointments/calendar", hb.AppointmentCalendar)
		api.GET("/appointments/stats", hb.AppointmentStats)
		api.PATCH("/appointments/:id/reschedule", hb.RescheduleAppointment)
		api.PUT("/appointments/:id/status", hb.UpdateAppointmentStatus)
		api.PUT("/appointments/:id/crew", hb.AssignAppointmentCrew)

		api.POST("/packages", hb.CreatePackage)
		api.PUT("/packages/:id", hb.UpdatePackage)
		api.DELETE("/packages/:id", hb.DeletePackage)
		api.POST("/addons", hb.CreateAddOn)
		api.PUT("/addons/:id", hb.UpdateAddOn)
		api.DELETE("/addons/:id", hb.DeleteAddOn)

		api.GET("/crew", hb.ListCrew)
		api.POST("/crew", hb.CreateCrewMember)
		api.PUT("/crew/:id", hb.UpdateCrewMember)
		api.PUT("/crew/:id/deactivate", hb.DeactivateCrewMember)
		api.DELETE("/crew/:id", hb.DeleteCrewMember)

		api.GET("/customers", hb.ListCustomers)
		api.GET("/customers/:id", hb.GetCustomer)
		api.DELETE("/customers/:id", hb.DeleteCustomer)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and global
// middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
