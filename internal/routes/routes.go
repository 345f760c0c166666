package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/findmychef/chef-marketplace/internal/audit"
	"github.com/findmychef/chef-marketplace/internal/auth"
	"github.com/findmychef/chef-marketplace/internal/cache"
	"github.com/findmychef/chef-marketplace/internal/config"
	"github.com/findmychef/chef-marketplace/internal/handlers"
	infraRepo "github.com/findmychef/chef-marketplace/internal/infra/repository"
	"github.com/findmychef/chef-marketplace/internal/middleware"
	"github.com/findmychef/chef-marketplace/internal/storage"
	ucBooking "github.com/findmychef/chef-marketplace/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store cache.Cache,
	photos *storage.PhotoStore,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	issuer := auth.NewTokenIssuer(cfg)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	listBookingsUC := ucBooking.NewListBookings(
		bookingRepo,
	)

	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, issuer, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)

	chefHandler := handlers.NewChefHandler(db, store, cacheTTL, auditDispatcher)
	chefPhotoHandler := handlers.NewChefPhotoHandler(db, photos, store, auditDispatcher)
	clientHandler := handlers.NewClientHandler(db, auditDispatcher)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listBookingsUC,
		updateBookingStatusUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PUBLIC CHEF SEARCH
		// ------------------------------
		api.GET("/chefs", chefHandler.List)
		api.GET("/chefs/:id", chefHandler.Get)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(issuer))
		{
			secured.GET("/auth/me", meHandler.GetMe)

			secured.PATCH("/chefs/:id", chefHandler.Update)
			secured.POST("/chefs/:id/photo", chefPhotoHandler.Upload)

			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings", bookingHandler.Create)
			secured.GET("/bookings", bookingHandler.List)
			secured.PATCH("/bookings/:id", bookingHandler.UpdateStatus)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
