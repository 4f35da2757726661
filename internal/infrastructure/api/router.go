package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const requestIDHeader = "X-Request-ID"

func NewRouter(handler *EffectHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)

	r.HandleFunc("/healthz", handler.HandleHealth).Methods("GET")
	r.HandleFunc("/effects", handler.HandleEffects).Methods("GET")
	r.HandleFunc("/effects/{name}", handler.HandleTransform).Methods("POST")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		slog.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
