// Package rest exposes the radio and queue services over HTTP for the bot
// frontend.
package rest

import (
	"encoding/json"
	"net/http"

	"github.com/ThermaloS/AetherBot/internal/core/services"
)

// Handler manages the HTTP interface for our application.
type Handler struct {
	radio  *services.Radio
	queue  *services.Queue
	router *http.ServeMux // Standard library router
}

// NewHandler initializes the HTTP adapter and sets up routes.
func NewHandler(radio *services.Radio, queue *services.Queue) *Handler {
	h := &Handler{
		radio:  radio,
		queue:  queue,
		router: http.NewServeMux(),
	}

	// Register Routes
	h.routes()

	return h
}

// ServeHTTP satisfies the http.Handler interface.
// It acts as a proxy, passing the request to our internal router.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// routes defines the mapping between URLs and methods.
func (h *Handler) routes() {
	// Health Check
	h.router.HandleFunc("GET /health", h.HealthCheck)
	// Radio Mode
	h.router.HandleFunc("GET /guilds/{id}/radio", h.GetRadio)
	h.router.HandleFunc("POST /guilds/{id}/radio", h.SetRadio)
	// Playback Queue
	h.router.HandleFunc("GET /guilds/{id}/queue", h.GetQueue)
	h.router.HandleFunc("POST /guilds/{id}/queue", h.AppendQueue)
	h.router.HandleFunc("DELETE /guilds/{id}/queue", h.ClearQueue)
	h.router.HandleFunc("POST /guilds/{id}/playback/complete", h.CompleteTrack)
}

// HealthCheck is a simple endpoint to verify the API is running.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok", "message": "AetherBot radio is live 📻"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
