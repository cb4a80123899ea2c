package routes

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"blogview/app/controllers"
	"blogview/app/middleware"
	"blogview/app/views"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

// SetupRoutes defines the application's routes and returns the root handler.
func SetupRoutes(blogController *controllers.BlogController, logger *slog.Logger, sessionTTL time.Duration) http.Handler {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recoverer(logger))

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
			return
		}
		http.NotFound(w, r)
	})

	// Static files and health check stay outside of sessions
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(views.Static()))))
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")

	session := middleware.Session(sessionTTL)

	// API routes with JSON content type
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)
	api.Use(session)
	api.HandleFunc("/state", blogController.Index).Methods("GET")
	api.HandleFunc("/search", blogController.Search).Methods("GET", "POST")
	api.HandleFunc("/posts", blogController.ListPosts).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}", blogController.ShowPost).Methods("GET")
	api.HandleFunc("/posts/{id:[0-9]+}/select", blogController.Select).Methods("POST")
	api.HandleFunc("/deselect", blogController.Deselect).Methods("POST")

	// Web routes, registered after /api so the catch-all prefix does not shadow it
	web := router.PathPrefix("/").Subrouter()
	web.Use(session)
	web.HandleFunc("/", blogController.Index).Methods("GET")
	web.HandleFunc("/search", blogController.Search).Methods("GET", "POST")
	web.HandleFunc("/posts/{id:[0-9]+}/select", blogController.Select).Methods("POST")
	web.HandleFunc("/deselect", blogController.Deselect).Methods("POST")

	return gzhttp.GzipHandler(router)
}
