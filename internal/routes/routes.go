package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/su-physio/clinic-scheduler/internal/config"
	"github.com/su-physio/clinic-scheduler/internal/handlers"
	infraRepo "github.com/su-physio/clinic-scheduler/internal/infra/repository"
	"github.com/su-physio/clinic-scheduler/internal/kvstore"
	"github.com/su-physio/clinic-scheduler/internal/middleware"
	"github.com/su-physio/clinic-scheduler/internal/notify"
	"github.com/su-physio/clinic-scheduler/internal/session"
	ucBooking "github.com/su-physio/clinic-scheduler/internal/usecase/booking"
)

// RegisterRoutes wires the full API surface onto r. kv is the durable record
// store, ephemeral backs per-tab session pointers. The returned dispatcher
// must be closed on shutdown so queued notifications drain.
func RegisterRoutes(r *gin.Engine, kv kvstore.Store, ephemeral kvstore.Store, cfg *config.Config) *notify.Dispatcher {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	origins := cfg.CORSOriginList()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingKVRepository(kv)

	telegram := notify.NewTelegramNotifier(kv)
	dispatcher := notify.NewDispatcher(telegram)

	sessions := session.NewManager(bookingRepo)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createStaffUC := ucBooking.NewCreateStaffBooking(bookingRepo, dispatcher)
	createPublicUC := ucBooking.NewCreatePublicBooking(bookingRepo, dispatcher)

	confirmUC := ucBooking.NewConfirmBooking(bookingRepo, dispatcher)
	completeUC := ucBooking.NewCompleteBooking(bookingRepo, dispatcher)
	cancelUC := ucBooking.NewCancelBooking(bookingRepo, dispatcher)
	cancelPublicUC := ucBooking.NewCancelPublicBooking(bookingRepo, dispatcher)

	getUC := ucBooking.NewGetBooking(bookingRepo)
	deleteUC := ucBooking.NewDeleteBooking(bookingRepo)
	lookupUC := ucBooking.NewLookupBooking(bookingRepo)

	byDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	byMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo)
	searchUC := ucBooking.NewSearchBookings(bookingRepo)
	dashboardUC := ucBooking.NewDashboardStats(bookingRepo)

	remindUC := ucBooking.NewSendBookingReminder(bookingRepo, dispatcher)
	summaryUC := ucBooking.NewSendDailySummary(bookingRepo, telegram)
	remindersUC := ucBooking.NewSendUpcomingReminders(bookingRepo, telegram)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(kv, cfg)

	bookingHandler := handlers.NewBookingHandler(
		createStaffUC,
		confirmUC,
		completeUC,
		cancelUC,
		getUC,
		deleteUC,
		byDateUC,
		byMonthUC,
		searchUC,
		dashboardUC,
		remindUC,
	)

	publicHandler := handlers.NewPublicHandler(
		createPublicUC,
		lookupUC,
		cancelPublicUC,
		sessions,
		ephemeral,
	)

	settingsHandler := handlers.NewSettingsHandler(kv, telegram, summaryUC, remindersUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
			publicAPI.POST("/bookings/lookup", publicHandler.Lookup)
			publicAPI.POST("/bookings/cancel", publicHandler.Cancel)

			publicAPI.GET("/session", publicHandler.ResumeSession)
			publicAPI.DELETE("/session", publicHandler.ForgetSession)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// STAFF API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)
			secured.PUT("/me/password", authHandler.ChangePassword)
			secured.POST("/me/password/reset", authHandler.ResetPassword)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/me/bookings", bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.List)
			secured.GET("/me/bookings/month", bookingHandler.ListByMonth)
			secured.GET("/me/bookings/:id", bookingHandler.Get)
			secured.DELETE("/me/bookings/:id", bookingHandler.Delete)
			secured.PATCH("/me/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/me/bookings/:id/complete", bookingHandler.Complete)
			secured.PATCH("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.POST("/me/bookings/:id/remind", bookingHandler.Remind)

			secured.GET("/me/dashboard", bookingHandler.Dashboard)

			// ------------------------------
			// SETTINGS & NOTIFICATIONS
			// ------------------------------
			secured.GET("/me/settings/telegram", settingsHandler.GetTelegramSettings)
			secured.PUT("/me/settings/telegram", settingsHandler.UpdateTelegramSettings)
			secured.POST("/me/settings/telegram/test", settingsHandler.TestTelegram)
			secured.GET("/me/settings/telegram/bot", settingsHandler.TelegramBotInfo)

			secured.POST("/me/notifications/daily-summary", settingsHandler.SendDailySummary)
			secured.POST("/me/notifications/reminders", settingsHandler.SendReminders)
		}
	}

	return dispatcher
}
