package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rsetcampus/atspam-api/internal/config"
	"github.com/rsetcampus/atspam-api/internal/handlers"
	infraRepo "github.com/rsetcampus/atspam-api/internal/infra/repository"
	"github.com/rsetcampus/atspam-api/internal/middleware"
	"github.com/rsetcampus/atspam-api/internal/notify"
	ucAppointment "github.com/rsetcampus/atspam-api/internal/usecase/appointment"
	ucSchedule "github.com/rsetcampus/atspam-api/internal/usecase/schedule"
	ucStats "github.com/rsetcampus/atspam-api/internal/usecase/stats"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, unreadCache *notify.UnreadCache) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	slotRepo := infraRepo.NewSlotGormRepository(db)
	statsSource := infraRepo.NewStatsGormSource(db)

	notifyStore := notify.New(db, unreadCache)
	dispatcher := notify.NewDispatcher(notifyStore)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucAppointment.NewBookAppointment(appointmentRepo, dispatcher, cfg.Timezone)
	reviewUC := ucAppointment.NewReviewAppointment(appointmentRepo, dispatcher, cfg.Timezone)
	setStatusUC := ucAppointment.NewSetAppointmentStatus(appointmentRepo, dispatcher, cfg.Timezone)
	cancelUC := ucAppointment.NewCancelAppointment(appointmentRepo, dispatcher, cfg.Timezone)
	listMineUC := ucAppointment.NewListMyAppointments(appointmentRepo)
	listPendingUC := ucAppointment.NewListPendingAppointments(appointmentRepo)
	todaysQueueUC := ucAppointment.NewTodaysQueue(appointmentRepo, cfg.Timezone)

	createSlotUC := ucSchedule.NewCreateSlot(slotRepo)
	listSlotsUC := ucSchedule.NewListSlots(slotRepo, cfg.Timezone)
	setAvailabilityUC := ucSchedule.NewSetAvailability(slotRepo)

	dashboardUC := ucStats.NewDashboard(statsSource, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	scheduleHandler := handlers.NewScheduleHandler(createSlotUC, listSlotsUC, setAvailabilityUC)
	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		reviewUC,
		setStatusUC,
		cancelUC,
		listMineUC,
		listPendingUC,
	)
	queueHandler := handlers.NewQueueHandler(todaysQueueUC)
	notificationHandler := handlers.NewNotificationHandler(notifyStore)
	statsHandler := handlers.NewStatsHandler(dashboardUC)

	// ======================================================
	// ROUTES
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// SCHEDULE
			// ------------------------------
			secured.POST("/schedule/time-slots", scheduleHandler.Create)
			secured.GET("/schedule/time-slots", scheduleHandler.List)
			secured.PATCH("/schedule/time-slots/:id/availability", scheduleHandler.SetAvailability)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Book)
			secured.GET("/appointments/my", appointmentHandler.ListMine)
			secured.GET("/appointments/pending", appointmentHandler.ListPending)
			secured.PUT("/appointments/:id/review", appointmentHandler.Review)
			secured.PUT("/appointments/:id/status", appointmentHandler.SetStatus)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// QUEUE / NOTIFICATIONS / STATS
			// ------------------------------
			secured.GET("/queue/today", queueHandler.Today)

			secured.GET("/notifications", notificationHandler.List)
			secured.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			secured.POST("/notifications/read-all", notificationHandler.MarkAllRead)

			secured.GET("/stats/dashboard", statsHandler.Dashboard)

			// ------------------------------
			// ADMIN
			// ------------------------------
			secured.PATCH("/admin/users/:id/role", adminHandler.SetRole)
			secured.PATCH("/admin/users/:id/active", adminHandler.SetActive)
		}
	}
}
