package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qrlinx/internal/auth"
	"qrlinx/internal/backend"
	"qrlinx/internal/config"
	"qrlinx/internal/handler"
	"qrlinx/internal/mq"
	"qrlinx/internal/repository"
	"qrlinx/internal/service"
	"qrlinx/pkg/middleware"
	"qrlinx/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title QRLinx Dashboard API
// @version 1.0
// @description Short links, QR codes and click analytics for signed-in users

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize stores
	linkStore, err := repository.NewLinkStore(&cfg.Database.SQL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open link store")
	}
	defer linkStore.Close()

	sessionStore := repository.NewSessionStore(&cfg.Database.Redis)
	defer sessionStore.Close()

	// Auth provider
	gotrue := auth.NewGoTrue(&cfg.Supabase, cfg.Backend.Timeout)
	provider := auth.NewProvider(gotrue, sessionStore)

	// Backend client
	backendClient := backend.NewClient(&cfg.Backend)

	// Initialize MQ (optional, can be nil)
	instanceID := util.GenerateUUID()
	var publisher service.EventPublisher
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		} else {
			publisher = mqProducer
		}
	}

	// Initialize services
	creator := service.NewCreator(backendClient, publisher, instanceID)
	analyticsSvc := service.NewAnalyticsService(backendClient, service.AggregateOptions{
		Location:    cfg.Display.Location(),
		RecentLimit: cfg.Display.RecentLimit,
	})
	dashboard := service.NewDashboard(linkStore, analyticsSvc, creator, publisher, instanceID)

	sub := provider.Subscribe(dashboard.OnSessionChange)
	defer sub.Unsubscribe()

	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), cfg.Backend.Timeout)
	if s, err := provider.Restore(restoreCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to restore session")
	} else if s != nil {
		log.Info().Str("owner_id", s.OwnerID()).Msg("Session restored")
	}
	cancelRestore()

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, dashboard.HandleLinkEvent)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	presenter := handler.NewPresenter(cfg.Display.Location(), backendClient.RedirectURL)
	authHandler := handler.NewAuthHandler(provider)
	linkHandler := handler.NewLinkHandler(dashboard, presenter)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		a := v1.Group("/auth")
		a.POST("/login", authHandler.Login)
		a.POST("/signup", authHandler.Signup)
		a.POST("/reset", authHandler.Reset)
		a.POST("/logout", authHandler.Logout)
		a.GET("/session", authHandler.Session)

		secured := v1.Group("", handler.RequireSession(dashboard))
		secured.GET("/links", linkHandler.List)
		secured.POST("/links", linkHandler.Create)
		secured.POST("/links/qr/retry", linkHandler.RetryQR)
		secured.DELETE("/links/result", linkHandler.DismissResult)
		secured.DELETE("/links/:id", linkHandler.Delete)
		secured.POST("/links/:id/select", linkHandler.Select)
		secured.GET("/analytics", linkHandler.Analytics)
	}

	// Swagger documentation
	setupSwagger(router)

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
