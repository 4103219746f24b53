package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kerem/campusdesk/internal/app/controllers"
	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	timetableController *controllers.TimetableController,
	studentTimetableController *controllers.StudentTimetableController,
	ticketController *controllers.TicketController,
	venueController *controllers.VenueController,
	batchController *controllers.BatchController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Account routes require a valid token; the service layer enforces
	// self-or-admin access per target.
	authProtected := api.Group("/auth")
	authProtected.Use(authMiddleware.JWTAuth())
	{
		authProtected.GET("", authMiddleware.RoleRequired(models.RoleAdmin), authController.ListUsers)
		authProtected.GET("/:userId", authController.GetUser)
		authProtected.PUT("/:userId", authController.UpdateUser)
		authProtected.DELETE("/:userId", authController.DeleteUser)
	}

	// --- Personal timetable routes ---
	timetable := api.Group("/timetable")
	timetable.Use(authMiddleware.JWTAuth())
	{
		timetable.POST("", timetableController.CreateEntry)
		timetable.GET("", timetableController.ListEntries)
		timetable.DELETE("/:id", timetableController.DeleteEntry)
	}

	// --- Authoritative student timetable routes ---
	studentTimetable := api.Group("/student-timetable")
	studentTimetable.Use(authMiddleware.JWTAuth())
	{
		studentTimetable.GET("", studentTimetableController.ListEntries)

		studentTimetableAdmin := studentTimetable.Group("")
		studentTimetableAdmin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			studentTimetableAdmin.POST("", studentTimetableController.CreateEntry)
			studentTimetableAdmin.PUT("/:id", studentTimetableController.UpdateEntry)
			studentTimetableAdmin.DELETE("/:id", studentTimetableController.DeleteEntry)
		}
	}

	// --- Ticket routes ---
	// Submission is public so students can report problems without an account
	tickets := api.Group("/tickets")
	tickets.POST("", ticketController.CreateTicket)

	ticketsProtected := tickets.Group("")
	ticketsProtected.Use(authMiddleware.JWTAuth())
	{
		ticketsProtected.GET("", authMiddleware.RoleRequired(models.RoleAdmin), ticketController.ListTickets)
		ticketsProtected.GET("/:id", ticketController.GetTicket)
		ticketsProtected.PUT("/:id", ticketController.UpdateTicket)
		ticketsProtected.DELETE("/:id", ticketController.DeleteTicket)
	}

	// --- Venue routes ---
	venues := api.Group("/venues")
	{
		venues.GET("", venueController.ListVenues)
		venues.POST("", authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin), venueController.CreateVenue)
	}

	// --- Batch routes ---
	batches := api.Group("/batches")
	batches.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		batches.POST("", batchController.CreateBatch)
		batches.GET("", batchController.ListBatches)
	}
}
