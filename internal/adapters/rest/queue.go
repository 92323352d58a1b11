package rest

import (
	"encoding/json"
	"net/http"

	"github.com/ThermaloS/AetherBot/internal/core/domain"
)

type queueResponse struct {
	GuildID string           `json:"guild_id"`
	Depth   int              `json:"depth"`
	Tracks  []domain.TrackRef `json:"tracks"`
}

type appendQueueRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type completeTrackRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

type completeTrackResponse struct {
	GuildID  string           `json:"guild_id"`
	Extended bool             `json:"extended"`
	Pick     *domain.TrackRef `json:"pick,omitempty"`
}

// GetQueue handles GET /guilds/{id}/queue
func (h *Handler) GetQueue(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("id")
	if guildID == "" {
		http.Error(w, "guild id is required", http.StatusBadRequest)
		return
	}

	tracks := h.queue.Items(guildID)
	writeJSON(w, http.StatusOK, queueResponse{
		GuildID: guildID,
		Depth:   len(tracks),
		Tracks:  tracks,
	})
}

// AppendQueue handles POST /guilds/{id}/queue
func (h *Handler) AppendQueue(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("id")
	if guildID == "" {
		http.Error(w, "guild id is required", http.StatusBadRequest)
		return
	}

	var req appendQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}

	h.queue.Append(guildID, domain.TrackRef{URL: req.URL, Title: req.Title})
	writeJSON(w, http.StatusCreated, queueResponse{
		GuildID: guildID,
		Depth:   h.queue.Depth(guildID),
		Tracks:  h.queue.Items(guildID),
	})
}

// ClearQueue handles DELETE /guilds/{id}/queue
func (h *Handler) ClearQueue(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("id")
	if guildID == "" {
		http.Error(w, "guild id is required", http.StatusBadRequest)
		return
	}

	removed := h.queue.Clear(guildID)
	writeJSON(w, http.StatusOK, map[string]any{
		"guild_id": guildID,
		"removed":  removed,
	})
}

// CompleteTrack handles POST /guilds/{id}/playback/complete
func (h *Handler) CompleteTrack(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("id")
	if guildID == "" {
		http.Error(w, "guild id is required", http.StatusBadRequest)
		return
	}

	var req completeTrackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pick := h.queue.CompleteTrack(r.Context(), guildID, domain.TrackRef{URL: req.URL, Title: req.Title})
	writeJSON(w, http.StatusOK, completeTrackResponse{
		GuildID:  guildID,
		Extended: pick != nil,
		Pick:     pick,
	})
}
