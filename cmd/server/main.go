// @title Connector Console API
// @version 1.0
// @description Read models for the sources and destinations pages of a workspace.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/IamTheLime/airbyte/docs"
	"github.com/IamTheLime/airbyte/internal/config"
	"github.com/IamTheLime/airbyte/internal/database"
	"github.com/IamTheLime/airbyte/internal/handlers"
	"github.com/IamTheLime/airbyte/internal/navigation"
	"github.com/IamTheLime/airbyte/internal/projection"
	"github.com/IamTheLime/airbyte/internal/refresh"
	"github.com/IamTheLime/airbyte/internal/resources"
	"github.com/IamTheLime/airbyte/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Setup(cfg.Log); err != nil {
		logrus.Fatalf("Failed to configure logging: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	store := database.NewStore(db)
	loader := resources.NewLoader(store)
	cache, err := projection.NewCache(cfg.ProjectionCacheSize)
	if err != nil {
		logrus.Fatalf("Failed to create projection cache: %v", err)
	}

	var publisher navigation.Publisher = navigation.LogPublisher{}
	if cfg.NATSURL != "" {
		nc, err := navigation.ConnectNATS(cfg.NATSURL)
		if err != nil {
			logrus.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer nc.Close()
		publisher = navigation.NewNATSPublisher(nc, cfg.NavigationSubject)
		logrus.Infof("Publishing navigation requests on %s", cfg.NavigationSubject)
	}

	refresher := refresh.NewRefresher(loader, cache, cfg.RefreshSchedule, cfg.PreloadWorkspaces)
	if err := refresher.Start(); err != nil {
		logrus.Fatalf("Failed to start snapshot refresher: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), handlers.RequestLogger())
	handlers.NewAPI(store, loader, cache, publisher).RegisterRoutes(router)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting console server on :%s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Console server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	<-refresher.Stop().Done()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Console server stopped.")
}
