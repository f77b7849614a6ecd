// Package server provides the HTTP server setup for the GameSnap X-Ray API.
//
// NewServer creates and configures the HTTP server, the upload store and the
// demo lister from the loaded configuration.
//
// Expected outputs:
// - Server listens on the configured port (default 8080)
// - Uploads are kept in UPLOAD_DIR, demo images are read from DEMO_DIR
//
// Usage:
//
//	server := server.NewServer(cfg, logger)
//	server.ListenAndServe()
//
// See internal/server/routes.go for route registration.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gamesnap-xray/internal/blobstore"
	"gamesnap-xray/internal/config"
	"gamesnap-xray/internal/demos"
)

type Server struct {
	Config config.Config
	Store  *blobstore.Store
	Demos  *demos.Lister
	Logger *slog.Logger
}

func New(cfg config.Config, logger *slog.Logger) *Server {
	return &Server{
		Config: cfg,
		Store:  blobstore.New(cfg.UploadDir),
		Demos:  demos.NewLister(cfg.DemoDir, cfg.DemoURLPrefix),
		Logger: logger,
	}
}

func NewServer(cfg config.Config, logger *slog.Logger) *http.Server {
	srv := New(cfg, logger)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}
