package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studiobelle/salon-manager/internal/audit"
	"github.com/studiobelle/salon-manager/internal/cache"
	"github.com/studiobelle/salon-manager/internal/config"
	"github.com/studiobelle/salon-manager/internal/handlers"
	infraRepo "github.com/studiobelle/salon-manager/internal/infra/repository"
	"github.com/studiobelle/salon-manager/internal/middleware"
	ucAppointment "github.com/studiobelle/salon-manager/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	dashCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	noShowUC := ucAppointment.NewMarkNoShow(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db, auditDispatcher)

	professionalHandler := handlers.NewProfessionalHandler(db, auditDispatcher)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)
	productHandler := handlers.NewProductHandler(db, auditDispatcher)
	transactionHandler := handlers.NewTransactionHandler(db, auditDispatcher)
	marketingHandler := handlers.NewMarketingHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		noShowUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		availabilityUC,
		db,
	)

	dashboardHandler := handlers.NewDashboardHandler(db, dashCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(db, createAppointmentUC, availabilityUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (por slug)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug", publicHandler.GetSalon)
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.Book)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon", salonHandler.UpdateMeSalon)

			secured.GET("/me/dashboard", dashboardHandler.Summary)

			// ------------------------------
			// PROFESSIONALS
			// ------------------------------
			secured.GET("/me/professionals", professionalHandler.List)
			secured.POST("/me/professionals", professionalHandler.Create)
			secured.PATCH("/me/professionals/:id", professionalHandler.Update)
			secured.DELETE("/me/professionals/:id", professionalHandler.Delete)

			secured.GET("/me/professionals/:id/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/professionals/:id/working-hours", workingHoursHandler.Update)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			// ------------------------------
			// PRODUCTS / STOCK
			// ------------------------------
			secured.GET("/me/products", productHandler.List)
			secured.POST("/me/products", productHandler.Create)
			secured.PATCH("/me/products/:id", productHandler.Update)
			secured.PATCH("/me/products/:id/stock", productHandler.AdjustStock)
			secured.DELETE("/me/products/:id", productHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/me/appointments/availability", appointmentHandler.Availability)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/no-show", appointmentHandler.NoShow)

			// ------------------------------
			// FINANCE
			// ------------------------------
			secured.GET("/me/transactions", transactionHandler.List)
			secured.POST("/me/transactions", transactionHandler.Create)
			secured.PATCH("/me/transactions/:id", transactionHandler.Update)
			secured.DELETE("/me/transactions/:id", transactionHandler.Delete)

			// ------------------------------
			// MARKETING
			// ------------------------------
			secured.GET("/me/campaigns", marketingHandler.ListCampaigns)
			secured.POST("/me/campaigns", marketingHandler.CreateCampaign)
			secured.PATCH("/me/campaigns/:id", marketingHandler.UpdateCampaign)
			secured.DELETE("/me/campaigns/:id", marketingHandler.DeleteCampaign)

			secured.GET("/me/promotions", marketingHandler.ListPromotions)
			secured.POST("/me/promotions", marketingHandler.CreatePromotion)
			secured.PATCH("/me/promotions/:id", marketingHandler.UpdatePromotion)
			secured.DELETE("/me/promotions/:id", marketingHandler.DeletePromotion)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
