// File: meetsync/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetsync/config"
	"meetsync/database"
	recordsRepo "meetsync/database/repository/records"
	"meetsync/handlers"
	"meetsync/middleware"
	"meetsync/routes"
	"meetsync/services/agent"
	"meetsync/services/calendar"
	"meetsync/services/resolver"
	"meetsync/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	location, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid TIMEZONE %q: %v", config.AppConfig.Timezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// collaborators.
	oauthConfig := calendar.NewOAuthConfig()
	calendarService := &calendar.GoogleCalendarService{
		OAuth:    oauthConfig,
		Timezone: config.AppConfig.Timezone,
	}
	bookingRecords := recordsRepo.NewMongoRecordRepo()

	// the agent core.
	agentService := &agent.DefaultAgentService{
		Calendar:     calendarService,
		Resolver:     resolver.NewWhenResolver(),
		RecordsRepo:  bookingRecords,
		CalendarID:   config.AppConfig.CalendarID,
		DefaultTitle: config.AppConfig.DefaultEventTitle,
		Location:     location,
	}

	handlers.SetAgentService(agentService)
	handlers.SetOAuthConfig(oauthConfig)
	handlers.SetRecordsRepo(bookingRecords)

	routes.RegisterRoutes(router)

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
