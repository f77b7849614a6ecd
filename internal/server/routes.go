// Package server sets up the HTTP server and registers API routes for the GameSnap X-Ray API.
//
// RegisterRoutes returns an http.Handler with all API endpoints for uploads,
// demo listing and result views.
//
// Expected outputs:
// - All API endpoints are available under /api
// - Demo images are served as static files under the demo URL prefix
// - CORS, request id, logging and panic recovery middleware are enabled
package server

import (
	"net"
	"net/http"
	"strings"

	_ "gamesnap-xray/docs"
	"gamesnap-xray/internal/handlers"
	"gamesnap-xray/internal/result"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/klauspost/compress/gzhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Only allow requests from localhost to /swagger/*
func localhostOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, _ := net.SplitHostPort(r.RemoteAddr)
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// gzipJSON compresses JSON responses. Image responses are left alone.
func gzipJSON(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(middleware.Heartbeat("/healthz"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.Config.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "POST"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.With(localhostOnly).Get("/swagger/*", httpSwagger.WrapHandler)

	h := handlers.NewAPIHandler(s.Store, s.Demos, result.NewResolver(s.Config.DemoURLPrefix), s.Config.MaxUploadBytes(), s.Logger)
	r.Route("/api", func(api chi.Router) {
		api.Post("/upload", h.UploadImage)
		api.Get("/uploads/{filename}", h.DownloadUpload)
		api.With(gzipJSON).Get("/demos", h.ListDemos)
		api.With(gzipJSON).Get("/results/{id}", h.GetResult)
	})

	prefix := s.Config.DemoURLPrefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(s.Demos.FileSystem())))

	return r
}
