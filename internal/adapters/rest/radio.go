package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type radioStatusResponse struct {
	GuildID      string   `json:"guild_id"`
	Enabled      bool     `json:"enabled"`
	RecentTitles []string `json:"recent_titles,omitempty"`
}

type setRadioRequest struct {
	// Enabled is optional; absent means "toggle".
	Enabled *bool `json:"enabled"`
}

// GetRadio handles GET /guilds/{id}/radio
func (h *Handler) GetRadio(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("id")
	if guildID == "" {
		http.Error(w, "guild id is required", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, radioStatusResponse{
		GuildID:      guildID,
		Enabled:      h.radio.IsEnabled(guildID),
		RecentTitles: h.radio.RecentTitles(guildID, 10),
	})
}

// SetRadio handles POST /guilds/{id}/radio
func (h *Handler) SetRadio(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("id")
	if guildID == "" {
		http.Error(w, "guild id is required", http.StatusBadRequest)
		return
	}

	// 1. Decode Request. An empty body is a plain toggle.
	var req setRadioRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
	}

	// 2. Call Service
	var enabled bool
	if req.Enabled != nil {
		h.radio.SetEnabled(r.Context(), guildID, *req.Enabled)
		enabled = *req.Enabled
	} else {
		enabled = h.radio.Toggle(r.Context(), guildID)
	}

	// 3. Respond
	writeJSON(w, http.StatusOK, radioStatusResponse{
		GuildID: guildID,
		Enabled: enabled,
	})
}
