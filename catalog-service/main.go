package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aurora-jewelry/aurora-store/catalog-service/controllers"
	"github.com/aurora-jewelry/aurora-store/catalog-service/repository"
	"github.com/aurora-jewelry/aurora-store/catalog-service/routes"
	"github.com/aurora-jewelry/aurora-store/catalog-service/services"
	"github.com/aurora-jewelry/aurora-store/pkg/errors"
	"github.com/aurora-jewelry/aurora-store/pkg/logger"
	"github.com/aurora-jewelry/aurora-store/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := LoadConfig()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Dependency injection ---

	catalogRepo := repository.NewSeededCatalog()
	catalogService := services.NewCatalogService(catalogRepo, logger.Log)
	contactService := services.NewContactService(logger.Log)

	productController := controllers.NewProductController(catalogService)
	contactController := controllers.NewContactController(contactService)
	metaController := controllers.NewMetaController()

	// --- HTTP server & middleware ---

	r := gin.New()
	r.Use(gin.CustomRecovery(errors.RecoveryHandler(cfg.Env)))
	r.Use(logger.RequestLogger())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// Contact and newsletter take free-form input, keep them rate limited.
	limiter := middleware.NewRateLimiter(rate.Limit(5), 10, 3*time.Minute)

	routes.RegisterRoutes(r, productController, contactController, metaController, limiter.Middleware(), cfg.PublicDir)

	// --- Graceful shutdown ---

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Log.Info("Aurora Jewelry server starting",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.Env),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down catalog service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("Catalog service stopped gracefully")
}
