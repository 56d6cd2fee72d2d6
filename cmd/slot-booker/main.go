package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotBooker/internal/config"
	"slotBooker/internal/http-server/handlers/auth/login"
	"slotBooker/internal/http-server/handlers/auth/register"
	"slotBooker/internal/http-server/handlers/booking/cancelBooking"
	"slotBooker/internal/http-server/handlers/booking/createBooking"
	"slotBooker/internal/http-server/handlers/booking/getEventBookings"
	"slotBooker/internal/http-server/handlers/booking/getMyBookings"
	"slotBooker/internal/http-server/handlers/event/createEvent"
	"slotBooker/internal/http-server/handlers/event/deleteEvent"
	"slotBooker/internal/http-server/handlers/event/getAllEvents"
	"slotBooker/internal/http-server/handlers/event/updateEvent"
	mwauth "slotBooker/internal/http-server/middleware/auth"
	"slotBooker/internal/http-server/middleware/mwlogger"
	"slotBooker/internal/lib/jwt"
	"slotBooker/internal/lib/logger/handlers/slogpretty"
	"slotBooker/internal/lib/logger/sl"
	"slotBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting slot booker", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	tokens := jwt.NewManager(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/register", register.New(log, storage))
	router.Post("/login", login.New(log, storage, tokens))

	router.Get("/events", getAllEvents.New(log, storage))
	router.Get("/bookings/event/{id}", getEventBookings.New(log, storage))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, tokens))

		r.Post("/events", createEvent.New(log, storage))
		r.Put("/events/{id}", updateEvent.New(log, storage))
		r.Delete("/events/{id}", deleteEvent.New(log, storage))

		r.Post("/bookings", createBooking.New(log, storage))
		r.Delete("/bookings/{id}", cancelBooking.New(log, storage))
		r.Get("/bookings/me", getMyBookings.New(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
