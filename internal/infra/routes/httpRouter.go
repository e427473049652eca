package routes

import (
	"encoding/json"
	"net/http"

	"vittasaathi/internal/infra/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Routes struct {
	Mux             *mux.Router
	HttpHandler     *handlers.HttpHandlers
	InfobipHandler  *handlers.InfobipHandlers
	MetricsRegistry *prometheus.Registry
}

func NewRoutes(mux *mux.Router, httpHandler *handlers.HttpHandlers, infobipHandler *handlers.InfobipHandlers, registry *prometheus.Registry) *Routes {
	return &Routes{mux, httpHandler, infobipHandler, registry}
}

func (r *Routes) Init() {
	r.Mux.HandleFunc("/webhook", r.HttpHandler.MetaWebhook)
	r.Mux.HandleFunc("/infobip/webhook", r.InfobipHandler.InfoBipWebhook).Methods(http.MethodPost)

	r.Mux.Handle("/metrics", promhttp.HandlerFor(r.MetricsRegistry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}
