// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/handlers"
	"github.com/JonathanMaverick/split-chain-backend/internal/ledger"
	"github.com/JonathanMaverick/split-chain-backend/internal/middleware"
	"github.com/JonathanMaverick/split-chain-backend/internal/ocr"
	"github.com/JonathanMaverick/split-chain-backend/internal/services"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// External clients
	ledgerClient := ledger.NewClient(cfg.Ledger.MirrorNodeURL, cfg.Ledger.APIKey,
		time.Duration(cfg.Ledger.TimeoutSecs)*time.Second)
	ocrClient := ocr.NewClient(cfg.OCR.BaseURL, cfg.OCR.APIKey,
		time.Duration(cfg.OCR.TimeoutSecs)*time.Second)

	// Initialize services
	notificationService := services.NewNotificationService(db, cfg)
	storageService, _ := services.NewStorageService(cfg)
	userService := services.NewUserService(db, cfg)
	billService := services.NewBillService(db, cfg, notificationService)
	friendService := services.NewFriendService(db, notificationService)
	rateService := services.NewRateService(ledgerClient, cfg)
	shareService := services.NewShareService(cfg, billService, friendService, rateService)
	settlementService := services.NewSettlementService(db, cfg, ledgerClient, billService, notificationService)
	receiptService := services.NewReceiptService(cfg, ocrClient, storageService)
	adminService := services.NewAdminService(db, cfg, ledgerClient)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService, notificationService)
	billHandler := handlers.NewBillHandler(billService, shareService)
	paymentHandler := handlers.NewPaymentHandler(settlementService, rateService)
	friendHandler := handlers.NewFriendHandler(friendService)
	receiptHandler := handlers.NewReceiptHandler(receiptService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS([]string{cfg.Frontend.BaseURL}))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"network": cfg.Ledger.Network,
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/admin/login", authHandler.AdminLogin)
			auth.POST("/refresh", authHandler.RefreshToken)
		}

		// User routes
		users := v1.Group("/users")
		users.Use(middleware.AuthRequired())
		{
			users.GET("/me", userHandler.GetProfile)
			users.GET("/me/notifications", userHandler.GetNotifications)
			users.POST("/me/notifications/read", userHandler.MarkNotificationsRead)
			users.GET("/:walletAddress", userHandler.GetUser)
		}

		// Bill routes
		bills := v1.Group("/bills")
		bills.Use(middleware.AuthRequired())
		{
			bills.POST("", billHandler.CreateBill)
			bills.GET("/created", billHandler.GetCreatedBills)
			bills.GET("/shared", billHandler.GetSharedBills)
			bills.GET("/:billId", billHandler.GetBill)
			bills.PUT("/:billId", billHandler.UpdateBill)
			bills.DELETE("/:billId", billHandler.DeleteBill)
			bills.GET("/:billId/shares", billHandler.GetShares)
			bills.GET("/:billId/participants", billHandler.GetParticipants)
			bills.POST("/:billId/participants", billHandler.AssignParticipant)
			bills.DELETE("/:billId/participants", billHandler.UnassignParticipant)
			bills.POST("/:billId/pay", paymentHandler.SettleBill)
		}

		// Friend routes
		friends := v1.Group("/friends")
		friends.Use(middleware.AuthRequired())
		{
			friends.POST("", friendHandler.AddFriend)
			friends.GET("", friendHandler.GetFriends)
			friends.PUT("/:walletAddress", friendHandler.UpdateNickname)
			friends.DELETE("/:walletAddress", friendHandler.RemoveFriend)
		}

		// Receipt scanning
		receipts := v1.Group("/receipts")
		receipts.Use(middleware.AuthRequired(), middleware.ScanRateLimit())
		{
			receipts.POST("/scan", receiptHandler.ScanReceipt)
		}

		// Exchange rate (no auth; the bill form polls this before login)
		v1.GET("/rate", paymentHandler.GetRate)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard", adminHandler.GetDashboard)
			admin.GET("/settings", adminHandler.GetSettings)
			admin.PUT("/settings", adminHandler.UpdateSettings)
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:walletAddress/status", adminHandler.SetUserStatus)
		}
	}

	return r
}
