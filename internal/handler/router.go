package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(
	homeHandler *HomeHandler,
	documentHandler *DocumentHandler,
	middleware *Middleware,
	allowedOrigins []string,
) http.Handler {
	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.AccessLog, middleware.Recover)

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","service":"document-parser"}`))
	}).Methods("GET")

	router.HandleFunc("/", homeHandler.Home).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.Timeout)
	api.HandleFunc("/parse-document", documentHandler.ParseDocument).Methods("POST")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"X-Request-ID",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
