package handlers

import (
	"errors"
	"net/http"

	"github.com/clashboard/clan-stats-api/internal/logic"
)

// GetPlayers returns the active clan roster
// @Summary List Active Clan Players
// @Description Fetch every roster row with active = true; ordering is left to the client
// @Tags Players
// @Produce json
// @Success 200 {array} models.Player "Clan Players"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.clanStore.ListActivePlayers(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to list clan players", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch clan players")
		return
	}

	h.jsonResponse(w, http.StatusOK, players)
}

// GetPlayer returns a single roster row by tag
// @Summary Get Clan Player
// @Tags Players
// @Produce json
// @Param playerTag path string true "Player Tag"
// @Success 200 {object} models.Player "Clan Player"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{playerTag} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerTag := urlParam(r, "playerTag")
	if err := h.validator.Var(playerTag, "required"); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Player tag is required")
		return
	}

	player, err := h.clanStore.GetPlayer(r.Context(), playerTag)
	if err != nil {
		if errors.Is(err, logic.ErrPlayerNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Failed to get clan player", "player_tag", playerTag, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch clan player")
		return
	}

	h.jsonResponse(w, http.StatusOK, player)
}

// GetPlayerProfile returns the combined roster/participation view
// @Summary Get Player Profile
// @Description Roster row, distinct-war participation count and recent war summaries in one response
// @Tags Players
// @Produce json
// @Param playerTag path string true "Player Tag"
// @Success 200 {object} models.PlayerProfile "Player Profile"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{playerTag}/profile [get]
func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	playerTag := urlParam(r, "playerTag")
	if err := h.validator.Var(playerTag, "required"); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Player tag is required")
		return
	}

	profile, err := h.profile.GetPlayerProfile(r.Context(), playerTag)
	if err != nil {
		switch {
		case errors.Is(err, logic.ErrInvalidTag):
			h.errorResponse(w, http.StatusBadRequest, "Player tag is required")
		case errors.Is(err, logic.ErrPlayerNotFound):
			h.errorResponse(w, http.StatusNotFound, "Player not found")
		default:
			h.logger.Errorw("Failed to build player profile", "player_tag", playerTag, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to fetch player profile")
		}
		return
	}

	h.jsonResponse(w, http.StatusOK, profile)
}
