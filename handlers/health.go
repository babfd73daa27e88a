package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"insultbot/core/log"
)

// HealthHandler serves liveness checks for container platforms
type HealthHandler struct {
	isReady func() bool
}

func NewHealthHandler(isReady func() bool) *HealthHandler {
	return &HealthHandler{isReady: isReady}
}

func (h *HealthHandler) SetupEndpoints(router *mux.Router) {
	router.HandleFunc("/health", h.handleHealth).Methods("GET")
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	gateway := "connected"
	if !h.isReady() {
		status = http.StatusServiceUnavailable
		gateway = "disconnected"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  http.StatusText(status),
		"gateway": gateway,
	}); err != nil {
		log.Error("❌ Failed to write health check response", "error", err)
	}
}
