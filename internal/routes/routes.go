package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberbook/api/internal/audit"
	"github.com/barberbook/api/internal/cache"
	"github.com/barberbook/api/internal/config"
	domain "github.com/barberbook/api/internal/domain/appointment"
	"github.com/barberbook/api/internal/handlers"
	infraRepo "github.com/barberbook/api/internal/infra/repository"
	"github.com/barberbook/api/internal/media"
	"github.com/barberbook/api/internal/middleware"
	ucAppointment "github.com/barberbook/api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	slotCache := cache.NewAvailability(
		cache.NewClient(cfg),
		time.Duration(cfg.CacheTTLSec)*time.Second,
	)

	uploader := media.NewShopImageUploader(cfg)

	durations := domain.NewDurationTable(cfg.ServiceDurations, cfg.DefaultDurationMin)
	defaultWindow := domain.Window{
		Opening: cfg.DefaultOpening,
		Closing: cfg.DefaultClosing,
	}

	// ======================================================
	// USE CASES
	// ======================================================
	hoursResolver := ucAppointment.NewHoursResolver(repo, defaultWindow)

	availabilityUC := ucAppointment.NewGetAvailability(
		repo,
		hoursResolver,
		cfg.SlotGranularityMin,
		slotCache,
	)
	detailsUC := ucAppointment.NewGetAppointmentDetails(repo)

	createUC := ucAppointment.NewCreateAppointment(repo, durations, slotCache, auditDispatcher)
	updateUC := ucAppointment.NewUpdateAppointment(repo, durations, slotCache, auditDispatcher)
	cancelUC := ucAppointment.NewCancelAppointment(repo, slotCache, auditDispatcher)
	completeUC := ucAppointment.NewCompleteAppointment(repo, auditDispatcher)
	deleteUC := ucAppointment.NewDeleteAppointment(repo, slotCache, auditDispatcher)
	listUC := ucAppointment.NewListAppointments(repo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(repo)
	barberHandler := handlers.NewBarberHandler(repo, uploader)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUC, detailsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	appointmentHandler := handlers.NewAppointmentHandler(
		createUC,
		updateUC,
		cancelUC,
		completeUC,
		deleteUC,
		listUC,
		detailsUC,
		repo,
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
		// PUBLIC DIRECTORY + AVAILABILITY
		// ------------------------------
		api.GET("/shops", barberHandler.ListShops)
		api.GET("/shops/:id", barberHandler.GetShop)
		api.GET("/barbers", barberHandler.ListBarbers)
		api.GET("/barbers/:id", barberHandler.GetBarber)

		api.GET("/available-slots", availabilityHandler.GetSlots)
		api.GET("/appointment-details", availabilityHandler.GetDetails)

		// ------------------------------
		// BOOKINGS (guests allowed; a token is honored when present)
		// ------------------------------
		guest := api.Group("/")
		guest.Use(middleware.OptionalAuthMiddleware(cfg))
		{
			guest.POST("/appointments", appointmentHandler.Create)
			guest.GET("/appointments/:id", appointmentHandler.Show)
			guest.PUT("/appointments/:id", appointmentHandler.Update)
			guest.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			guest.DELETE("/appointments/:id", appointmentHandler.Delete)
		}

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.Me)
			secured.GET("/me/appointments", appointmentHandler.ListMine)

			secured.GET("/barbers/:id/appointments", appointmentHandler.ListForBarber)
			secured.GET("/barbers/:id/appointments/month", appointmentHandler.ListBarberMonth)
			secured.GET("/shops/:id/appointments", appointmentHandler.ListForShop)

			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			secured.POST("/shops/:id/image", barberHandler.UploadShopImage)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
