// Room block registration backend.
//
// @title Room Block Reservation API
// @version 1.0
// @description Conference hotel room block registration and admin API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"roomblock/config"
	authadapter "roomblock/internal/adapters/auth"
	emailadapter "roomblock/internal/adapters/email"
	httpdelivery "roomblock/internal/delivery/http"
	"roomblock/internal/delivery/http/controllers"
	"roomblock/internal/delivery/http/middleware"
	"roomblock/internal/repository/postgres"
	"roomblock/internal/services"
)

const serviceTimeout = 10 * time.Second

func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}
	cancel()

	// Repositories
	orderRepo := postgres.NewOrderRepository(db)
	conferenceRepo := postgres.NewConferenceRepository(db)
	hotelRepo := postgres.NewConferenceHotelRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Email
	mailer, err := emailadapter.NewMailer(emailadapter.MailerConfig{
		Provider:    cfg.MailerProvider,
		FromAddress: cfg.MailerFromAddress,
		FromName:    cfg.MailerFromName,
		SES: emailadapter.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretAccessKey,
			InsecureSkipVerify: cfg.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, emailadapter.NewTemplateRenderer())

	// Auth
	jwtCodec := authadapter.NewJWTCodec(cfg.JWTSecret)
	hasher := authadapter.NewBcryptHasher(12)

	// Services
	orderService := services.NewOrderService(orderRepo, emailService, logger, serviceTimeout)
	conferenceService := services.NewConferenceService(conferenceRepo, serviceTimeout)
	hotelService := services.NewHotelService(hotelRepo, serviceTimeout)
	statsService := services.NewStatsService(statsRepo, serviceTimeout)
	authService := services.NewAuthService(userRepo, hasher, jwtCodec, cfg.JWTExpiry)

	// Controllers
	mux := httpdelivery.NewRouter(
		logger,
		jwtCodec,
		controllers.NewConferenceController(logger, conferenceService),
		controllers.NewHotelController(logger, hotelService),
		controllers.NewOrderController(logger, orderService),
		controllers.NewAuthController(logger, authService),
		controllers.NewAdminController(logger, orderService, conferenceService, statsService),
	)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
