package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(apiHandler.log))
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})
		r.Get("/trending", apiHandler.TrendingHandler)

		r.Get("/user", apiHandler.GetUserHandler)
		r.Put("/user", apiHandler.UpdateUserHandler)
		r.Get("/conversations", apiHandler.ListConversationsHandler)
		r.Get("/plans", apiHandler.ListPlansHandler)

		r.Post("/sessions", apiHandler.CreateSessionHandler)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", apiHandler.GetSessionHandler)
			r.Delete("/", apiHandler.DeleteSessionHandler)
			r.Post("/messages", apiHandler.PostMessageHandler)
			r.Post("/reset", apiHandler.ResetSessionHandler)
			r.Post("/resume", apiHandler.ResumeSessionHandler)
			r.Post("/finalized/dismiss", apiHandler.DismissFinalizedHandler)
			r.Post("/itineraries/{index}/enhance", apiHandler.EnhanceHandler)
			r.Post("/itineraries/{index}/finalize", apiHandler.FinalizeHandler)
		})
	})

	return r
}

func requestLogger(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debugw("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
