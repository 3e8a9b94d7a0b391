package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter mounts the API routes of si and the metrics endpoint served from gatherer.
func NewRouter(si ServerInterface, gatherer prometheus.Gatherer, log logrus.FieldLogger) http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.RealIP)
	mux.Use(requestLogger(log))
	mux.Use(recoverer(log))

	mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "Not Found", "no route for "+r.Method+" "+r.URL.Path)
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed", r.Method+" is not allowed on "+r.URL.Path)
	})

	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter:       mux,
		ErrorHandlerFunc: paramErrorHandler(log),
	})
}
