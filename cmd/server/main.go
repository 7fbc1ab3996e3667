package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/config"
	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/handlers"
	"github.com/luminasalon/backend/internal/middleware"
	"github.com/luminasalon/backend/internal/services"
	"github.com/luminasalon/backend/internal/storage"
	"github.com/luminasalon/backend/pkg/jwt"
	"github.com/luminasalon/backend/pkg/mailer"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Lumina Salon Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Connect to the document store
	logger.Info("Connecting to document store...")
	db, err := database.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatalf("Failed to connect to document store: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Errorf("Failed to close document store connection: %v", err)
		}
	}()
	logger.Info("Document store connection established")

	// Initialize repositories
	serviceRepo := database.NewServiceRepository(db.Collection(database.CollectionServices))
	productRepo := database.NewProductRepository(db.Collection(database.CollectionProducts))
	customerRepo := database.NewCustomerRepository(db.Collection(database.CollectionCustomers))
	staffRepo := database.NewStaffRepository(db.Collection(database.CollectionStaff))
	visitRepo := database.NewVisitRepository(db.Collection(database.CollectionVisits))
	invoiceRepo := database.NewInvoiceRepository(db.Collection(database.CollectionInvoices))
	contentRepo := database.NewContentRepository(db.Collection(database.CollectionContent))
	adminUserRepo := database.NewAdminUserRepository(db.Collection(database.CollectionAdminUsers))
	refreshTokenRepo := database.NewRefreshTokenRepository(db.Collection(database.CollectionRefreshTokens))

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	uploader := storage.NewGCSUploader(cfg.Storage)
	mail := mailer.NewDevMailer(cfg.Mail.FromAddress, logger)

	authService := services.NewAuthService(adminUserRepo, refreshTokenRepo, jwtService, logger)
	catalogService := services.NewCatalogService(serviceRepo, productRepo, uploader, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	staffService := services.NewStaffService(staffRepo, logger)
	visitService := services.NewVisitService(visitRepo, logger)
	billingService := services.NewBillingService(invoiceRepo, mail, logger)
	contentService := services.NewContentService(contentRepo, logger)
	mediaService := services.NewMediaService(uploader, logger)
	logger.Info("Services initialized")

	// Seed the bootstrap admin account if configured and missing
	seedAdmin(authService, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	customerHandler := handlers.NewCustomerHandler(customerService, logger)
	staffHandler := handlers.NewStaffHandler(staffService, logger)
	visitHandler := handlers.NewVisitHandler(visitService, logger)
	billingHandler := handlers.NewBillingHandler(billingService, logger)
	contentHandler := handlers.NewContentHandler(contentService, logger)
	mediaHandler := handlers.NewMediaHandler(mediaService, cfg.Storage.MaxUploadBytes, logger)
	publicHandler := handlers.NewPublicHandler(catalogService, contentService, logger)
	dashboardHandler := handlers.NewDashboardHandler(
		serviceRepo,
		productRepo,
		customerRepo,
		staffRepo,
		visitRepo,
		invoiceRepo,
		logger,
	)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", healthCheckHandler(db))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public marketing site routes (no authentication)
		public := v1.Group("/public")
		{
			public.GET("/services", publicHandler.Services)
			public.GET("/content/:section", publicHandler.Content)
			public.GET("/seo", publicHandler.SEO)
		}

		// Admin back-office routes
		admin := v1.Group("/admin")
		{
			// Authentication routes (public)
			auth := admin.Group("/auth")
			{
				auth.POST("/login", authHandler.Login)
				auth.POST("/refresh", authHandler.Refresh)
				auth.POST("/logout", authHandler.Logout)

				authProtected := auth.Group("")
				authProtected.Use(middleware.AuthMiddleware(jwtService, logger))
				{
					authProtected.GET("/session", authHandler.Session)
				}
			}

			// Everything else requires a valid access token
			protected := admin.Group("")
			protected.Use(middleware.AuthMiddleware(jwtService, logger))
			{
				protected.GET("/dashboard/stats", dashboardHandler.Stats)

				protected.GET("/services", catalogHandler.ListServices)
				protected.POST("/services", catalogHandler.CreateService)
				protected.GET("/services/:id", catalogHandler.GetService)
				protected.PUT("/services/:id", catalogHandler.UpdateService)
				protected.DELETE("/services/:id", catalogHandler.DeleteService)

				protected.GET("/products", catalogHandler.ListProducts)
				protected.POST("/products", catalogHandler.CreateProduct)
				protected.GET("/products/:id", catalogHandler.GetProduct)
				protected.PUT("/products/:id", catalogHandler.UpdateProduct)
				protected.DELETE("/products/:id", catalogHandler.DeleteProduct)

				protected.GET("/customers", customerHandler.List)
				protected.POST("/customers", customerHandler.Create)
				protected.GET("/customers/:id", customerHandler.Get)
				protected.PUT("/customers/:id", customerHandler.Update)
				protected.DELETE("/customers/:id", customerHandler.Delete)
				protected.POST("/customers/:id/loyalty", customerHandler.AdjustLoyalty)

				protected.GET("/staff", staffHandler.List)
				protected.POST("/staff", staffHandler.Create)
				protected.GET("/staff/:id", staffHandler.Get)
				protected.PUT("/staff/:id", staffHandler.Update)
				protected.DELETE("/staff/:id", staffHandler.Delete)
				protected.GET("/staff/:id/attendance", staffHandler.Attendance)
				protected.PUT("/staff/:id/attendance", staffHandler.MarkAttendance)

				protected.GET("/visits", visitHandler.List)
				protected.POST("/visits", visitHandler.Create)
				protected.GET("/visits/:id", visitHandler.Get)
				protected.PATCH("/visits/:id/status", visitHandler.UpdateStatus)
				protected.DELETE("/visits/:id", visitHandler.Delete)
				protected.GET("/appointments", visitHandler.Appointments)

				protected.GET("/invoices", billingHandler.List)
				protected.POST("/invoices", billingHandler.Create)
				protected.GET("/invoices/:id", billingHandler.Get)
				protected.DELETE("/invoices/:id", billingHandler.Delete)
				protected.POST("/invoices/:id/payments", billingHandler.Pay)
				protected.GET("/invoices/:id/html", billingHandler.HTML)
				protected.POST("/invoices/:id/email", billingHandler.Email)

				protected.GET("/content", contentHandler.Sections)
				protected.GET("/content/:section", contentHandler.Get)
				protected.PUT("/content/:section", contentHandler.Save)

				protected.POST("/uploads", mediaHandler.Upload)
			}
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// seedAdmin creates the first back-office account from ADMIN_EMAIL and
// ADMIN_PASSWORD. A no-op when either is unset or the account exists.
func seedAdmin(authService *services.AuthService, logger *logrus.Logger) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := authService.Register(ctx, email, password, "Administrator", "admin"); err != nil {
		logger.WithError(err).Info("Bootstrap admin not created")
		return
	}
	logger.WithField("email", email).Info("Bootstrap admin account created")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
		}

		if userCtx, exists := middleware.GetUserContext(c); exists {
			fields["user_id"] = userCtx.UserID
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db *database.Mongo) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
