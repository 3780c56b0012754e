package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/afero"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Muhammaddarab1/spadepayits/docs"
	"github.com/Muhammaddarab1/spadepayits/internal/domain/permissions"
	httphandlers "github.com/Muhammaddarab1/spadepayits/internal/handlers/http"
	"github.com/Muhammaddarab1/spadepayits/internal/handlers/middleware"
	"github.com/Muhammaddarab1/spadepayits/internal/handlers/ws"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/auth"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/config"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/i18n"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/logging"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/mailer"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/persistence/postgres"
	"github.com/Muhammaddarab1/spadepayits/internal/infrastructure/uploads"
	"github.com/Muhammaddarab1/spadepayits/internal/services"
)

// @title SpadePay ITS API
// @version 1.0
// @description Role-based ticketing, sales and attendance backend
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting spadepay backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to run migrations", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	salesRepo := postgres.NewSalesTicketRepository(db)
	tagRepo := postgres.NewTagRepository(db)
	activityRepo := postgres.NewActivityLogRepository(db)
	attendanceRepo := postgres.NewAttendanceRepository(db)
	leaveRepo := postgres.NewLeaveRequestRepository(db)
	correctionRepo := postgres.NewCorrectionRepository(db)

	// Seed de roles e da conta admin inicial
	if err := postgres.Seed(context.Background(), roleRepo, userRepo, cfg.Seed, logger); err != nil {
		logger.Error("failed to seed database", "error", err)
		log.Fatal(err)
	}

	// Infraestrutura
	tokenService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	if err != nil {
		logger.Error("failed to initialize token service", "error", err)
		log.Fatal(err)
	}
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP, logger)
	attachmentStore, err := uploads.NewLocalStore(afero.NewOsFs(), cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		logger.Error("failed to initialize upload store", "error", err)
		log.Fatal(err)
	}

	allowedOrigins := strings.Split(cfg.CORS.AllowedOrigins, ",")
	hub := ws.NewHub(logger, func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range allowedOrigins {
			if strings.TrimSpace(allowed) == origin {
				return true
			}
		}
		return false
	})

	// Inicializar services
	accessService := services.NewAccessService(roleRepo, userRepo, logger)
	authService := services.NewAuthService(userRepo, accessService, tokenService, smtpMailer, logger, cfg.Client.URL)
	userService := services.NewUserService(userRepo, roleRepo, accessService, logger)
	roleService := services.NewRoleService(roleRepo, logger)
	activityService := services.NewActivityService(activityRepo, hub, logger)
	ticketService := services.NewTicketService(ticketRepo, userRepo, accessService, activityService, attachmentStore, logger)
	salesService := services.NewSalesService(salesRepo, userRepo, attachmentStore, logger)
	tagService := services.NewTagService(tagRepo, logger)
	attendanceService := services.NewAttendanceService(attendanceRepo, leaveRepo, correctionRepo, logger)
	reportService := services.NewReportService(ticketRepo, logger)

	// Inicializar handlers
	cookieSecure := cfg.Env == "production"
	cookieMaxAge := int(cfg.JWT.Expiry / time.Second)
	authHandler := httphandlers.NewAuthHandler(authService, cookieSecure, cookieMaxAge)
	userHandler := httphandlers.NewUserHandler(userService)
	roleHandler := httphandlers.NewRoleHandler(roleService)
	ticketHandler := httphandlers.NewTicketHandler(ticketService, cfg.Uploads.MaxFiles)
	salesHandler := httphandlers.NewSalesHandler(salesService, cfg.Uploads.MaxFiles)
	tagHandler := httphandlers.NewTagHandler(tagService)
	attendanceHandler := httphandlers.NewAttendanceHandler(attendanceService)
	reportHandler := httphandlers.NewReportHandler(reportService)
	activityHandler := httphandlers.NewActivityHandler(activityService)

	// Middlewares de credencial e permissão
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	permMiddleware := middleware.NewPermissionMiddleware(accessService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Anexos servidos como estático
	router.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		// Auth
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
			authGroup.POST("/reset-password", authHandler.ResetPassword)
			authGroup.POST("/change-password",
				authMiddleware.Authenticate(), authHandler.ChangePassword)
		}

		// Rotas autenticadas; contas com troca de senha pendente só
		// alcançam o que a allow-list do guard libera
		protected := api.Group("")
		protected.Use(authMiddleware.Authenticate(), middleware.RequirePasswordChanged())
		{
			// Users
			users := protected.Group("/users")
			{
				users.GET("/me", userHandler.GetMe)
				users.GET("", userHandler.ListUsers)
				users.GET("/:id", userHandler.GetUser)
				users.POST("", permMiddleware.RequireCapability(permissions.UsersManage), userHandler.CreateUser)
				users.PATCH("/:id/role", permMiddleware.RequireCapability(permissions.UsersManage), userHandler.UpdateRole)
				users.PATCH("/:id/permissions", permMiddleware.RequireCapability(permissions.UsersManage), userHandler.UpdatePermissions)
				users.DELETE("/:id", permMiddleware.RequireCapability(permissions.AccountsDelete), userHandler.DeleteUser)
			}

			// Roles
			roles := protected.Group("/roles")
			{
				roles.GET("", permMiddleware.RequireCapability(permissions.RolesManage), roleHandler.ListRoles)
				roles.POST("", permMiddleware.RequireCapability(permissions.RolesManage), roleHandler.CreateRole)
				roles.PUT("/:id", permMiddleware.RequireCapability(permissions.RolesManage), roleHandler.UpdateRole)
				roles.DELETE("/:id", permMiddleware.RequireCapability(permissions.RolesManage), roleHandler.DeleteRole)
			}

			// Suporte
			tickets := protected.Group("/tickets")
			{
				tickets.GET("", ticketHandler.ListTickets)
				tickets.GET("/deleted", permMiddleware.RequireCapability(permissions.TicketsViewDeleted), ticketHandler.ListDeletedTickets)
				tickets.GET("/:id", ticketHandler.GetTicket)
				tickets.POST("", permMiddleware.RequireCapability(permissions.TicketsCreate), ticketHandler.CreateTicket)
				tickets.PUT("/:id", permMiddleware.RequireCapability(permissions.TicketsUpdate), ticketHandler.UpdateTicket)
				tickets.PATCH("/:id/status", ticketHandler.UpdateStatus)
				tickets.DELETE("/:id", permMiddleware.RequireCapability(permissions.TicketsDelete), ticketHandler.DeleteTicket)
				tickets.POST("/:id/attachments", ticketHandler.AddAttachments)
			}

			// Vendas
			sales := protected.Group("/sales")
			{
				sales.GET("", salesHandler.ListSales)
				sales.GET("/:id", salesHandler.GetSales)
				sales.POST("", permMiddleware.RequireCapability(permissions.SalesCreate), salesHandler.CreateSales)
				sales.PUT("/:id", permMiddleware.RequireCapability(permissions.SalesUpdate), salesHandler.UpdateSales)
				sales.DELETE("/:id", permMiddleware.RequireCapability(permissions.SalesDelete), salesHandler.DeleteSales)
				sales.POST("/:id/attachments", salesHandler.AddAttachments)
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.GET("", tagHandler.ListActiveTags)
				tags.GET("/all", permMiddleware.RequireCapability(permissions.TagsManage), tagHandler.ListAllTags)
				tags.POST("", permMiddleware.RequireCapability(permissions.TagsManage), tagHandler.CreateTag)
				tags.PATCH("/:id", permMiddleware.RequireCapability(permissions.TagsManage), tagHandler.UpdateTag)
				tags.DELETE("/:id", permMiddleware.RequireCapability(permissions.TagsManage), tagHandler.DeleteTag)
			}

			// Ponto
			attendance := protected.Group("/attendance")
			{
				attendance.POST("/record", permMiddleware.RequireCapability(permissions.AttendanceRecord), attendanceHandler.Record)
				attendance.GET("/report", permMiddleware.RequireCapability(permissions.AttendanceReport), attendanceHandler.Report)
				attendance.POST("/leave", permMiddleware.RequireCapability(permissions.AttendanceRequestLeave), attendanceHandler.SubmitLeave)
				attendance.GET("/leave/mine", attendanceHandler.MyLeaves)
				attendance.GET("/leave/pending", permMiddleware.RequireCapability(permissions.AttendanceApproveRequests), attendanceHandler.PendingLeaves)
				attendance.PATCH("/leave/:id/decision", permMiddleware.RequireCapability(permissions.AttendanceApproveRequests), attendanceHandler.DecideLeave)
				attendance.POST("/corrections", permMiddleware.RequireCapability(permissions.AttendanceRequestCorrection), attendanceHandler.SubmitCorrection)
				attendance.GET("/corrections/mine", attendanceHandler.MyCorrections)
				attendance.GET("/corrections/pending", permMiddleware.RequireCapability(permissions.AttendanceApproveRequests), attendanceHandler.PendingCorrections)
				attendance.PATCH("/corrections/:id/decision", permMiddleware.RequireCapability(permissions.AttendanceApproveRequests), attendanceHandler.DecideCorrection)
			}

			// Relatórios
			protected.GET("/reports/tickets", permMiddleware.RequireCapability(permissions.ReportsGenerate), reportHandler.TicketSummary)

			// Auditoria
			protected.GET("/activity-logs",
				middleware.RequireRole(permissions.RoleAdmin, "Sales", "Finance"), activityHandler.ListLogs)

			// Eventos em tempo real
			protected.GET("/events",
				middleware.RequireRole(permissions.RoleAdmin, "Sales", "Finance"), hub.Serve)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
