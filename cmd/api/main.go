// PrinceMahmood | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/princemahmood117/stayvista-server/internal/admin"
	"github.com/princemahmood117/stayvista-server/internal/auth"
	"github.com/princemahmood117/stayvista-server/internal/booking"
	"github.com/princemahmood117/stayvista-server/internal/config"
	"github.com/princemahmood117/stayvista-server/internal/core"
	"github.com/princemahmood117/stayvista-server/internal/health"
	"github.com/princemahmood117/stayvista-server/internal/middleware"
	"github.com/princemahmood117/stayvista-server/internal/notify"
	"github.com/princemahmood117/stayvista-server/internal/payment"
	"github.com/princemahmood117/stayvista-server/internal/room"
	"github.com/princemahmood117/stayvista-server/internal/server"
	"github.com/princemahmood117/stayvista-server/internal/user"
)

const drainDelay = 5 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := core.Migrate(ctx, db.DB); err != nil {
		return err
	}
	logger.Info("database migrations applied")

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected", "pool_size", cfg.Redis.PoolSize)

	tokens, err := auth.NewTokenManager(
		cfg.Session,
		auth.NewRedisDenylist(redis.Client),
	)
	if err != nil {
		return err
	}
	logger.Info("session token manager initialized",
		"algorithm", "HS256",
		"token_expire", cfg.Session.TokenExpire,
	)

	cookies := auth.NewCookieWriter(cfg.Session.CookieName, cfg.IsProduction())
	mailer := notify.NewMailer(cfg.SMTP, logger)

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo, mailer, logger)
	userHandler := user.NewHandler(userSvc, logger)

	roomRepo := room.NewRepository(db.DB)
	roomSvc := room.NewService(roomRepo, userSvc, logger)
	roomHandler := room.NewHandler(roomSvc, logger)

	bookingRepo := booking.NewRepository(db.DB)
	bookingSvc := booking.NewService(bookingRepo, userRepo, roomRepo, mailer, logger)
	bookingHandler := booking.NewHandler(bookingSvc, logger)

	stripeClient := payment.NewStripeClient(cfg.Stripe, logger)
	paymentHandler := payment.NewHandler(stripeClient, logger)

	authHandler := auth.NewHandler(tokens, cookies, logger)

	healthHandler := health.NewHandler(db, redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticated := middleware.Authenticator(tokens, cfg.Session.CookieName)
	adminOnly := middleware.RequireRole(userSvc, user.RoleAdmin)
	hostOnly := middleware.RequireRole(userSvc, user.RoleHost)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		//nolint:errcheck // best-effort banner
		_, _ = w.Write([]byte("Hello from StayVista Server.."))
	})

	router.Post("/jwt", authHandler.IssueToken)
	router.Get("/logout", authHandler.Logout)

	router.Put("/user", userHandler.Save)
	router.Get("/user/{email}", userHandler.Get)

	router.Get("/rooms", roomHandler.List)
	router.Get("/room/{id}", roomHandler.Get)

	router.Group(func(r chi.Router) {
		r.Use(authenticated)

		r.Post("/booking", bookingHandler.Create)
		r.Delete("/booking/{id}", bookingHandler.Delete)
		r.Get("/my-bookings/{email}", bookingHandler.MyBookings)
		r.Get("/guest-stat", bookingHandler.GuestStats)

		r.Post("/create-payment-intent", paymentHandler.CreateIntent)

		r.Patch("/room/status/{id}", roomHandler.UpdateStatus)
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticated)
		r.Use(hostOnly)

		r.Post("/room", roomHandler.Create)
		r.Get("/my-listings/{email}", roomHandler.MyListings)
		r.Delete("/room/{id}", roomHandler.Delete)
		r.Put("/room/update/{id}", roomHandler.Update)
		r.Get("/manage-bookings/{email}", bookingHandler.ManageBookings)
		r.Get("/host-stat", bookingHandler.HostStats)
	})

	router.Group(func(r chi.Router) {
		r.Use(authenticated)
		r.Use(adminOnly)

		r.Get("/users", userHandler.List)
		r.Patch("/users/update/{email}", userHandler.UpdateRole)
		r.Get("/admin-stat", bookingHandler.AdminStats)
	})

	adminHandler.RegisterRoutes(router, authenticated, adminOnly)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
