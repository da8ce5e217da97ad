package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/clashboard/clan-stats-api/internal/logic"
)

// GetPlayerLastTenWars returns how many of the last 10 wars a player fought in
// @Summary Player Participation Count
// @Description Count of distinct wars the player attacked in within the 10 most recent wars
// @Tags Wars
// @Produce json
// @Param playerTag path string true "Player Tag"
// @Success 200 {integer} int "Distinct war count"
// @Failure 400 {object} map[string]string "Missing Tag"
// @Failure 404 {object} map[string]string "No Wars / No Participation"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /playerLastTenWars/{playerTag} [get]
func (h *Handler) GetPlayerLastTenWars(w http.ResponseWriter, r *http.Request) {
	playerTag := urlParam(r, "playerTag")
	if err := h.validator.Var(playerTag, "required"); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Player tag is required")
		return
	}

	count, err := h.warStats.CountRecentParticipation(r.Context(), playerTag)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrInvalidTag):
			h.errorResponse(w, http.StatusBadRequest, "Player tag is required")
		case errors.Is(err, logic.ErrNoWarsFound):
			h.errorResponse(w, http.StatusNotFound, "No clan wars found in the database")
		case errors.Is(err, logic.ErrNoParticipation):
			h.errorResponse(w, http.StatusNotFound, "Player has not participated in the queried wars")
		default:
			h.logger.Errorw("Failed to count war participation", "player_tag", playerTag, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch player war participation count")
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, count)
}

// GetPlayerLastFiveWars returns per-war attack summaries for the player's 5 most recent wars
// @Summary Player Recent War Summaries
// @Description Up to 5 war groups, newest first, each holding up to 2 attacks; empty history is a 200 with an empty array
// @Tags Wars
// @Produce json
// @Param playerTag path string true "Player Tag"
// @Success 200 {array} models.PlayerWarResult "War Summaries"
// @Failure 400 {object} map[string]string "Missing Tag"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /playerLastFiveWars/{playerTag} [get]
func (h *Handler) GetPlayerLastFiveWars(w http.ResponseWriter, r *http.Request) {
	playerTag := urlParam(r, "playerTag")
	if err := h.validator.Var(playerTag, "required"); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Player tag is required")
		return
	}

	summaries, err := h.warStats.RecentWarSummaries(r.Context(), playerTag)
	if err != nil {
		if errors.Is(err, logic.ErrInvalidTag) {
			h.errorResponse(w, http.StatusBadRequest, "Player tag is required")
			return
		}
		h.logger.Errorw("Failed to fetch war summaries", "player_tag", playerTag, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch player war details")
		return
	}

	h.jsonResponse(w, http.StatusOK, summaries)
}

// GetRecentWars returns the most recent wars, newest first
// @Summary List Recent Wars
// @Tags Wars
// @Produce json
// @Param limit query int false "Limit" default(10)
// @Success 200 {array} models.War "Recent Wars"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /wars [get]
func (h *Handler) GetRecentWars(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 50 {
			limit = parsed
		}
	}

	wars, err := h.clanStore.ListRecentWars(r.Context(), limit)
	if err != nil {
		h.logger.Errorw("Failed to list recent wars", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch recent wars")
		return
	}

	h.jsonResponse(w, http.StatusOK, wars)
}
