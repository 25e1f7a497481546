package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/serviapp/catalog-service/config"
	catHandlerPkg "github.com/serviapp/catalog-service/internal/categoria/handler"
	catRepoPkg "github.com/serviapp/catalog-service/internal/categoria/repository"
	catUCPkg "github.com/serviapp/catalog-service/internal/categoria/usecase"
	srvHandlerPkg "github.com/serviapp/catalog-service/internal/servicio/handler"
	srvRepoPkg "github.com/serviapp/catalog-service/internal/servicio/repository"
	srvUCPkg "github.com/serviapp/catalog-service/internal/servicio/usecase"
	"github.com/serviapp/catalog-service/pkg/logger"
	"github.com/serviapp/catalog-service/storage"
)

// CustomValidator adapts validator.v10 to Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.Load()

	appLogger := logger.New(&logger.Config{
		IsDevelopment:     cfg.Server.AppEnv == "development",
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	db, err := storage.NewPostgres(&cfg.Postgres)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	if err := storage.Migrate(context.Background(), db); err != nil {
		appLogger.Fatal("Could not apply schema", zap.Error(err))
	}

	catRepo := catRepoPkg.NewPGRepository(db)
	srvRepo := srvRepoPkg.NewPGRepository(db)

	catUC := catUCPkg.NewCategoriaUseCase(catRepo, appLogger)
	srvUC := srvUCPkg.NewServicioUseCase(srvRepo, catRepo, appLogger)

	catHandler := catHandlerPkg.NewCategoriaHandler(catUC, appLogger)
	srvHandler := srvHandlerPkg.NewServicioHandler(srvUC, appLogger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoMiddleware.Secure())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "API Backend activo",
			"health":  "/health",
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})
	e.GET("/health/ready", func(c echo.Context) error {
		if err := db.PingContext(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]bool{"ready": false})
		}
		return c.JSON(http.StatusOK, map[string]bool{"ready": true})
	})

	api := e.Group("/api/v1")
	catHandler.Routes(api.Group("/categorias"))
	srvHandler.Routes(api.Group("/servicios"))

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", port))
		if err := e.Start(port); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
