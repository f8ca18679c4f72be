package http

import (
	"encoding/json"
	"net/http"
	"time"

	"docugroup/internal/logging"
)

type healthStatus struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	App         string    `json:"app"`
	Environment string    `json:"environment"`
	Version     string    `json:"version"`
}

type healthHandler struct {
	App         string
	Environment string
}

func (h healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := json.Marshal(healthStatus{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		App:         h.App,
		Environment: h.Environment,
		Version:     Version,
	})
	if err != nil {
		logging.From(r.Context()).Error("http.health", "err", err)
		http.Error(w, `{"status":"unhealthy"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
