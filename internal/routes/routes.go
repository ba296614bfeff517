package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barbershop-project/booking-api/internal/audit"
	"github.com/barbershop-project/booking-api/internal/config"
	"github.com/barbershop-project/booking-api/internal/domain/schedule"
	"github.com/barbershop-project/booking-api/internal/handlers"
	infraRepo "github.com/barbershop-project/booking-api/internal/infra/repository"
	"github.com/barbershop-project/booking-api/internal/infra/slotlock"
	"github.com/barbershop-project/booking-api/internal/middleware"
	"github.com/barbershop-project/booking-api/internal/storage"
	ucBooking "github.com/barbershop-project/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, locker slotlock.Locker) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	policy := schedule.Policy{
		Weekdays:    cfg.Weekdays(),
		HorizonDays: cfg.HorizonDays,
		Location:    cfg.Location(),
	}

	var uploader *storage.Uploader
	if up, err := storage.NewUploader(cfg); err == nil {
		uploader = up
	} else {
		log.Warn().Err(err).Msg("barber photo upload disabled")
	}

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		locker,
		policy,
		auditDispatcher,
	)

	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	listAppointmentsUC := ucBooking.NewListAppointments(bookingRepo)

	getAppointmentUC := ucBooking.NewGetAppointment(bookingRepo)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		bookingRepo,
		availabilityUC,
		policy,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		updateStatusUC,
	)

	barberPhotoHandler := handlers.NewBarberPhotoHandler(bookingRepo, uploader)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/slots", publicHandler.ListSlots)
			publicAPI.GET("/working-day", publicHandler.CheckWorkingDay)
			publicAPI.GET("/availability", publicHandler.Availability)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/barbers/:id/photo", barberPhotoHandler.Upload)
			}
		}
	}
}
