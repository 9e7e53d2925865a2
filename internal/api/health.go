package api

import "net/http"

// HealthResponse reports process liveness and whether the retrieval path
// was built at startup. The availability value is fixed for the process
// lifetime; there is no rebuild.
type HealthResponse struct {
	Status          string `json:"status"`
	RAGAvailability string `json:"ragAvailability"`
}

// HealthHandler handles the health probe.
type HealthHandler struct {
	svc Converser
}

func NewHealthHandler(svc Converser) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.health)
}

func (h *HealthHandler) health(w http.ResponseWriter, _ *http.Request) {
	availability := "unavailable"
	if h.svc.RAGAvailable() {
		availability = "available"
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", RAGAvailability: availability})
}
