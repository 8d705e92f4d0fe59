package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fakhrymubarak/kloudly/internal/config"
	"github.com/fakhrymubarak/kloudly/internal/handler"
	"github.com/fakhrymubarak/kloudly/internal/middleware"
	"github.com/fakhrymubarak/kloudly/internal/service"
	"github.com/fakhrymubarak/kloudly/internal/weatherapi"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newRouter(svc service.WeatherServiceInterface, logger *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(config.GetGinMode())
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(logger))
	handler.NewWeatherHandler(svc).RegisterRoutes(r)
	return r
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + config.GetServerPort(),
		Handler:           h,
		ReadHeaderTimeout: config.GetServerTimeoutDuration("read_header_timeout", 15*time.Second),
		ReadTimeout:       config.GetServerTimeoutDuration("read_timeout", 15*time.Second),
		WriteTimeout:      config.GetServerTimeoutDuration("write_timeout", 10*time.Second),
		IdleTimeout:       config.GetServerTimeoutDuration("idle_timeout", 30*time.Second),
	}
}

func main() {
	logger := config.GetLogger()
	defer func() { _ = logger.Sync() }()

	apiCfg := config.GetWeatherAPIConfig()
	if apiCfg.APIKey == "" {
		logger.Warnw("OPENWEATHERMAP_API_KEY is not set; provider calls will be rejected")
	}
	svc := service.NewWeatherService(weatherapi.New(apiCfg))
	srv := newServer(newRouter(svc, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infow("Weather API server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetServerTimeoutDuration("shutdown_timeout", 10*time.Second))
	defer cancel()
	logger.Infow("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("graceful shutdown failed", "error", err)
	}
}
