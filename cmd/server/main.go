package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pokelists-mcp/internal/handlers"
	"pokelists-mcp/internal/logging"
	"pokelists-mcp/internal/middleware"
	"pokelists-mcp/internal/server"
	"pokelists-mcp/internal/storage"
	servertls "pokelists-mcp/internal/tls"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logging first
	logConfig := logging.NewLogConfigFromEnv()
	logging.InitLogger(logConfig)

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	// All state lives in process memory, scoped per user
	store := storage.NewStorage()

	// Build the MCP server and its stateless HTTP transport
	mcpServer := server.New(store)
	mcpHTTP := server.NewStreamableHTTP(mcpServer)

	healthHandler := handlers.NewHealthHandler(store)

	// Set up Gin router (without default logger since we use our own)
	router := gin.New()
	router.Use(gin.Recovery())

	// Security headers first
	router.Use(middleware.SecurityHeaders())

	// CORS
	corsConfig := middleware.NewCORSConfigFromEnv()
	router.Use(middleware.CORS(corsConfig))

	// Request size limit
	securityConfig := middleware.NewSecurityConfigFromEnv()
	router.Use(middleware.RequestSizeLimit(securityConfig.MaxRequestBodySize))

	// Request logging
	router.Use(middleware.RequestLogger())

	// Rate limiting, keyed by user identity with IP fallback
	rateLimitConfig := middleware.NewRateLimitConfigFromEnv()
	router.Use(middleware.PerUserRateLimiter(rateLimitConfig))

	// MCP endpoint: all list operations are tools behind this route
	router.Any("/mcp", gin.WrapH(mcpHTTP))

	// Health check endpoints
	router.GET("/health", healthHandler.BasicHealth)
	router.GET("/health/detailed", healthHandler.DetailedHealth)
	router.GET("/health/live", healthHandler.LivenessProbe)
	router.GET("/health/ready", healthHandler.ReadinessProbe)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	tlsConfig := servertls.NewConfigFromEnv()

	go func() {
		var err error
		if tlsConfig.Enabled {
			srv.TLSConfig, err = tlsConfig.CreateTLSConfig()
			if err != nil {
				logging.Logger.Fatalf("Failed to configure TLS: %v", err)
			}
			logging.Logger.Infof("Starting MCP server with TLS on %s...", srv.Addr)
			err = srv.ListenAndServeTLS("", "")
		} else {
			logging.Logger.Infof("Starting MCP server on %s...", srv.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	logging.Logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Errorf("Server shutdown: %v", err)
	}
}
