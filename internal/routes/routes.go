package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinicdesk/clinic-scheduler/internal/config"
	"github.com/clinicdesk/clinic-scheduler/internal/handlers"
	infraRepo "github.com/clinicdesk/clinic-scheduler/internal/infra/repository"
	"github.com/clinicdesk/clinic-scheduler/internal/middleware"
	"github.com/clinicdesk/clinic-scheduler/internal/notify"
	ucAppointment "github.com/clinicdesk/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, notifier *notify.Dispatcher) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	directory := infraRepo.NewIdentityGormDirectory(db)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	bookUC := ucAppointment.NewBook(appointmentRepo, directory, notifier)
	confirmUC := ucAppointment.NewConfirm(appointmentRepo, notifier)
	cancelUC := ucAppointment.NewCancel(appointmentRepo, notifier)
	startUC := ucAppointment.NewStartConsultation(appointmentRepo)
	completeUC := ucAppointment.NewCompleteConsultation(appointmentRepo)
	detailsUC := ucAppointment.NewGetDetails(appointmentRepo)
	forPatientUC := ucAppointment.NewListForPatient(appointmentRepo, directory)
	forDoctorUC := ucAppointment.NewListForDoctor(appointmentRepo, directory)
	listAllUC := ucAppointment.NewListAll(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, directory)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	doctorHandler := handlers.NewDoctorHandler(db, availabilityUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		confirmUC,
		cancelUC,
		startUC,
		completeUC,
		detailsUC,
		forPatientUC,
		forDoctorUC,
		listAllUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC DIRECTORY
		// ------------------------------
		api.GET("/doctors", doctorHandler.List)
		api.GET("/doctors/:username/availability", doctorHandler.Availability)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/doctors", doctorHandler.Create)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments", appointmentHandler.ListAll)
			secured.GET("/appointments/:id", appointmentHandler.Details)
			secured.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/:id/start-consultation", appointmentHandler.StartConsultation)
			secured.POST("/appointments/:id/complete-consultation", appointmentHandler.CompleteConsultation)
			secured.GET("/patients/:username/appointments", appointmentHandler.ListForPatient)
			secured.GET("/doctors/:username/appointments", appointmentHandler.ListForDoctor)
		}
	}
}
