package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lumibelle/handlers"
	"lumibelle/middleware"
	"lumibelle/utils"
)

// HandlerBundle collects the handlers routes are built from.
type HandlerBundle struct {
	Booking     *handlers.BookingHandler
	Schedule    *handlers.ScheduleHandler
	Staff       *handlers.StaffHandler
	Appointment *handlers.AppointmentHandler
}

// RegisterBookingRoutes sets up the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	{
		api.GET("/availability/:date", hb.Booking.Availability)
		api.POST("/appointments", hb.Booking.RequestBooking)
		api.POST("/appointments/:id/cancel", hb.Booking.CancelAppointment)
	}
}

// RegisterAdminRoutes sets up the back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.POST("/login", handlers.AdminLoginHandler)

	protected := admin.Group("")
	protected.Use(middleware.JWTAuthAdminMiddleware())
	{
		protected.GET("/schedules", hb.Schedule.ListRange)
		protected.GET("/schedules/:date", hb.Schedule.Get)
		protected.PUT("/schedules/:date", hb.Schedule.Upsert)
		protected.DELETE("/schedules/:date", hb.Schedule.Delete)

		protected.GET("/staff", hb.Staff.List)
		protected.POST("/staff", hb.Staff.Create)
		protected.GET("/staff/:id", hb.Staff.Get)
		protected.PATCH("/staff/:id", hb.Staff.Update)
		protected.PUT("/staff/:id/active", hb.Staff.SetActive)

		protected.GET("/appointments", hb.Appointment.ListByDate)
		protected.GET("/appointments/by-phone/:phone", hb.Appointment.ListByPhone)
		protected.PATCH("/appointments/:id", hb.Appointment.Update)
		protected.POST("/appointments/:id/confirm", hb.Appointment.Confirm)
		protected.POST("/appointments/:id/cancel", hb.Appointment.Cancel)
		protected.POST("/appointments/:id/complete", hb.Appointment.Complete)
		protected.DELETE("/appointments/:id", hb.Appointment.Delete)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
