package routes

import (
	"time"

	"medicore/config"
	"medicore/handlers"
	"medicore/middleware"
	"medicore/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the full API surface under /api/v1.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.ClientURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	r.GET("/health", hb.Health)

	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1.Group("/users"), hb.Patients, models.RolePatient)
	registerAccountRoutes(v1.Group("/doctors"), hb.Doctors, models.RoleDoctor)
	registerAccountRoutes(v1.Group("/admins"), hb.Admins, models.RoleAdmin)
	registerBookingRoutes(v1, hb)
	registerAvailabilityRoutes(v1, hb)
	registerMessageRoutes(v1, hb)
	registerReportRoutes(v1, hb)
}

// registerAccountRoutes mounts the shared account endpoint set for one role.
// Listing and deletion are admin operations; profile reads and edits are open
// to the account's own role and admins.
func registerAccountRoutes(g *gin.RouterGroup, h handlers.AccountHandlers, role string) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)

	g.GET("/session", middleware.RequireAuth(role), h.Session)
	g.GET("", middleware.RequireAuth(models.RoleAdmin), h.GetAll)
	g.GET("/:id", middleware.RequireAuth(role, models.RoleAdmin), h.Get)
	g.PUT("/:id", middleware.RequireAuth(role, models.RoleAdmin), h.Update)
	g.DELETE("/:id", middleware.RequireAuth(models.RoleAdmin), h.Delete)
}

func registerBookingRoutes(v1 *gin.RouterGroup, hb *handlers.HandlerBundle) {
	g := v1.Group("/bookings")
	{
		g.POST("", middleware.RequireAuth(models.RolePatient, models.RoleAdmin), hb.CreateBooking)
		g.POST("/check", middleware.RequireAuth(), hb.CheckSlot)
		g.GET("", middleware.RequireAuth(models.RoleAdmin), hb.GetAllBookings)
		g.GET("/doctor/:doctorId", middleware.RequireAuth(models.RoleDoctor, models.RoleAdmin), hb.GetBookingsByDoctor)
		g.GET("/patient/:patientId", middleware.RequireAuth(models.RolePatient, models.RoleAdmin), hb.GetBookingsByPatient)
		g.PUT("/:id", middleware.RequireAuth(models.RoleDoctor, models.RoleAdmin), hb.UpdateBookingStatus)
		g.DELETE("/:id", middleware.RequireAuth(), hb.DeleteBooking)
	}
}

func registerAvailabilityRoutes(v1 *gin.RouterGroup, hb *handlers.HandlerBundle) {
	g := v1.Group("/doctorAvailability")
	{
		g.POST("", middleware.RequireAuth(models.RoleDoctor, models.RoleAdmin), hb.CreateAvailability)
		g.GET("/:doctorId", middleware.RequireAuth(), hb.GetAvailability)
		g.PUT("/:id", middleware.RequireAuth(models.RoleDoctor, models.RoleAdmin), hb.UpdateAvailability)
		g.DELETE("/:id", middleware.RequireAuth(models.RoleDoctor, models.RoleAdmin), hb.DeleteAvailability)
		g.DELETE("/:id/slot/:slotId", middleware.RequireAuth(models.RoleDoctor, models.RoleAdmin), hb.DeleteSlot)
	}
}

func registerMessageRoutes(v1 *gin.RouterGroup, hb *handlers.HandlerBundle) {
	g := v1.Group("/messages")
	{
		g.POST("", hb.CreateMessage)

		g.GET("", middleware.RequireAuth(models.RoleAdmin), hb.GetAllMessages)
		g.GET("/:id", middleware.RequireAuth(models.RoleAdmin), hb.GetMessage)
		g.PUT("/:id/status", middleware.RequireAuth(models.RoleAdmin), hb.UpdateMessageStatus)
		g.PUT("/:id/response", middleware.RequireAuth(models.RoleAdmin), hb.RespondMessage)
		g.DELETE("/:id", middleware.RequireAuth(models.RoleAdmin), hb.DeleteMessage)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, hb *handlers.HandlerBundle) {
	g := v1.Group("/reports")
	{
		g.POST("/upload", middleware.RequireAuth(), hb.UploadReport)
		g.GET("/mine", middleware.RequireAuth(), hb.GetMyReports)
	}
}
