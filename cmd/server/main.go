package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockroom/internal/api"
	"stockroom/internal/app/service"
	"stockroom/internal/common/security"
	"stockroom/internal/domain/repository"
	"stockroom/internal/platform/cache"
	"stockroom/internal/platform/config"
	"stockroom/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	config.Load()
	log.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()

	// 3. Initialize Database (runs migrations)
	database.Connect()
	defer database.Close()
	log.Println("Database connected.")

	// 4. Initialize Redis
	cache.Connect()
	defer cache.Close()
	log.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	itemRepo := repository.NewPgItemRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo)
	itemCache := cache.NewItemCache(cache.RDB, config.AppConfig.ItemCacheTTL)
	itemService := service.NewItemService(itemRepo, itemCache)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, itemService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
