package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/config"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/devapi"
	"github.com/sirupsen/logrus"
)

func main() {
	// Cargar configuración
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Configurar logging
	logger := setupLogger(cfg)
	logger.Info("Starting concesionaria dev API...")

	// Configurar modo de Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Elegir la fuente de datos
	store, err := abrirStore(cfg, logger)
	if err != nil {
		logger.Fatalf("Error opening store: %v", err)
	}
	defer func() { _ = store.Cerrar() }()

	// Conectar a Redis para rate limiting (opcional)
	redis, err := devapi.ConnectRedis(cfg)
	if err != nil {
		logger.Warnf("Error connecting to Redis, rate limiting disabled: %v", err)
		redis = nil
	} else {
		defer redis.Close()
	}

	// Cargar datos de demostración
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := devapi.Sembrar(ctx, store, logger); err != nil {
		cancel()
		logger.Fatalf("Error seeding demo data: %v", err)
	}
	cancel()

	// Inicializar API y router
	apiHandler := devapi.NewAPI(store, redis, cfg, logger)
	router := devapi.Router(apiHandler)

	// Crear servidor HTTP
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Canal para señales de terminación
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Iniciar servidor en goroutine
	go func() {
		logger.Infof("Dev API listening on %s:%s (store: %s)", cfg.Server.Host, cfg.Server.Port, cfg.Server.Store)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	// Esperar señal de terminación
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}

// abrirStore selecciona la fuente de datos según STORE_DRIVER
func abrirStore(cfg *config.Config, logger *logrus.Logger) (devapi.Store, error) {
	switch cfg.Server.Store {
	case "postgres":
		return devapi.NuevoPgStore(cfg, logger)
	case "", "memory":
		return devapi.NuevoMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Server.Store)
	}
}

// setupLogger configura el logger según la configuración
func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
