package web

import (
	"pageforge/config"
	"pageforge/web/api"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates and configures the RWeb server
func NewServer(cfg config.Config) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: true,
	})

	// Handlers read the public URL, uploads dir, and SMTP settings from here
	api.Init(cfg)

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(CorsMiddleware)            // CORS for the builder client
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(JWTAuthMiddleware)         // Bearer token -> user context
	s.Use(LoggingMiddleware)         // Request logging

	setupRoutes(s)
	setupStatic(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, cfg config.Config) error {
	logger.Info("PageForge server starting", "address", cfg.Address)
	return s.Run()
}
