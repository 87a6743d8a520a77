package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberflow/config"
	"barberflow/cron"
	"barberflow/database"
	appointmentRepoPkg "barberflow/database/repository/appointment"
	catalogRepoPkg "barberflow/database/repository/catalog"
	customerRepoPkg "barberflow/database/repository/customer"
	tenantRepoPkg "barberflow/database/repository/tenant"
	"barberflow/handlers"
	"barberflow/middleware"
	"barberflow/routes"
	"barberflow/services/agent"
	appointmentService "barberflow/services/appointment"
	catalogService "barberflow/services/catalog"
	"barberflow/services/conversation"
	customerService "barberflow/services/customer"
	"barberflow/services/intent"
	"barberflow/services/notification"
	"barberflow/services/session"
	"barberflow/services/speech"
	tenantService "barberflow/services/tenant"
	"barberflow/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tenantRepo := tenantRepoPkg.NewMongoTenantRepo()
	customerRepo := customerRepoPkg.NewMongoCustomerRepo()
	serviceRepo := catalogRepoPkg.NewMongoServiceRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	tenantSvc := &tenantService.DefaultTenantService{Repo: tenantRepo}
	customerSvc := &customerService.DefaultCustomerService{Repo: customerRepo}
	catalogSvc := &catalogService.DefaultCatalogService{Repo: serviceRepo}

	notifier := notification.NewTwilioService(
		config.AppConfig.TwilioAccountSID,
		config.AppConfig.TwilioAuthToken,
		config.AppConfig.TwilioWhatsAppNumber,
		config.AppConfig.TwilioAPIBaseURL,
		logger,
	)

	reminders := cron.NewScheduler(logger)
	defer reminders.Close()

	appointmentSvc := &appointmentService.DefaultAppointmentService{
		Repo:      appointmentRepo,
		Tenants:   tenantRepo,
		Customers: customerSvc,
		Catalog:   serviceRepo,
		Notifier:  notifier,
		Reminders: reminders,
		Logger:    logger,
	}

	// The NLU gateway: the external agent when configured, Gemini otherwise.
	var gateway agent.Gateway
	if config.AppConfig.AgentBaseURL != "" {
		gateway = agent.NewHTTPGateway(config.AppConfig.AgentBaseURL, logger)
	} else {
		g, err := agent.NewGeminiGateway(config.AppConfig.GeminiAPIKey, logger)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini gateway: %v", err)
		}
		gateway = g
	}

	sessions := session.NewStore()
	orchestrator := conversation.NewOrchestrator(gateway, sessions, []intent.Handler{
		&intent.ProvideLocationHandler{Tenants: tenantRepo, Logger: logger},
		&intent.SelectBarberHandler{},
		&intent.ProvideNameHandler{Customers: customerSvc, Logger: logger},
		&intent.ProvideServiceHandler{Catalog: serviceRepo, Logger: logger},
		&intent.ProvideDateHandler{},
		&intent.ProvideTimeHandler{},
		&intent.ConfirmAppointmentHandler{
			Catalog:      serviceRepo,
			Appointments: appointmentSvc,
			Logger:       logger,
		},
	}, logger)

	transcriber := speech.NewGoogleTranscriber(
		config.AppConfig.TwilioAccountSID,
		config.AppConfig.TwilioAuthToken,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Webhook: &handlers.WebhookHandler{
			Orchestrator: orchestrator,
			Tenants:      tenantSvc,
			Notifier:     notifier,
			Transcriber:  transcriber,
			Logger:       logger,
		},
		Auth:        &handlers.AuthHandler{Tenants: tenantRepo, TenantSvc: tenantSvc, Logger: logger},
		Tenant:      &handlers.TenantHandler{Tenants: tenantSvc, Logger: logger},
		Catalog:     &handlers.CatalogHandler{Catalog: catalogSvc, Logger: logger},
		Customer:    &handlers.CustomerHandler{Customers: customerSvc, Logger: logger},
		Appointment: &handlers.AppointmentHandler{Appointments: appointmentSvc, Logger: logger},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder worker.
	cron.InitReminderWorker(cron.WorkerDeps{
		Appointments: appointmentRepo,
		Customers:    customerRepo,
		Notifier:     notifier,
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
