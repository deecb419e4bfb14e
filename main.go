package main

import (
	// standard library
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	// third-party
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	// internal
	"github.com/pixelbend/pixelbend/internal/auth"
	"github.com/pixelbend/pixelbend/internal/config"
	"github.com/pixelbend/pixelbend/internal/database"
	"github.com/pixelbend/pixelbend/internal/handlers"
	"github.com/pixelbend/pixelbend/internal/logging"
	"github.com/pixelbend/pixelbend/internal/middleware"
	"github.com/pixelbend/pixelbend/internal/version"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version.String())
		os.Exit(0)
	}

	logging.InfoWithComponent(logging.ComponentStartup, "Starting pixelbend", "version", version.String())

	if err := database.Initialize(); err != nil {
		logging.ErrorWithComponent(logging.ComponentStartup, "Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if mode := config.Get("GIN_MODE", ""); mode != "" {
		gin.SetMode(mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if origins := config.Get("CORS_ORIGINS", ""); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Type",
		"Accept",
		"Authorization",
		"X-API-Key",
	}
	router.Use(cors.New(corsConfig))

	// Public routes
	router.GET("/api/health", handlers.HealthHandler)
	router.GET("/api/version", handlers.VersionHandler)
	router.GET("/api/config", handlers.ConfigHandler)
	router.POST("/api/auth/login", auth.LoginHandler)
	router.POST("/api/auth/logout", auth.LogoutHandler)
	router.GET("/api/auth/check", auth.CheckAuthHandler)

	// Protected API
	api := router.Group("/api")
	api.Use(auth.Middleware(), middleware.BodyLimit())
	{
		api.GET("/kernels", handlers.KernelsHandler)
		api.GET("/corruptions", handlers.CorruptionsHandler)

		api.POST("/dither", handlers.DitherHandler)
		api.POST("/effects", handlers.EffectsHandler)
		api.POST("/corrupt", handlers.CorruptHandler)

		api.GET("/palettes", handlers.ListPalettesHandler)
		api.POST("/palettes", handlers.CreatePaletteHandler)
		api.GET("/palettes/:id", handlers.GetPaletteHandler)
		api.PUT("/palettes/:id", handlers.UpdatePaletteHandler)
		api.DELETE("/palettes/:id", handlers.DeletePaletteHandler)

		api.GET("/presets", handlers.ListPresetsHandler)
		api.POST("/presets", handlers.CreatePresetHandler)
		api.GET("/presets/:id", handlers.GetPresetHandler)
		api.PUT("/presets/:id", handlers.UpdatePresetHandler)
		api.DELETE("/presets/:id", handlers.DeletePresetHandler)
	}

	addr := ":" + config.Get("PORT", "8080")
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logging.InfoWithComponent(logging.ComponentStartup, "Listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorWithComponent(logging.ComponentStartup, "Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logging.InfoWithComponent(logging.ComponentShutdown, "Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.ErrorWithComponent(logging.ComponentShutdown, "Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logging.InfoWithComponent(logging.ComponentShutdown, "Server stopped")
}
