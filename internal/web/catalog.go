package web

import (
	"net/http"

	"github.com/cory-johannsen/weirdos/internal/game/warband"
)

func (h *Handler) handleCatalogWeapons(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"weapons": h.catalog.Weapons()})
}

func (h *Handler) handleCatalogEquipment(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"equipment": h.catalog.AllEquipment()})
}

func (h *Handler) handleCatalogPowers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"psychicPowers": h.catalog.PsychicPowers()})
}

func (h *Handler) handleCatalogLeaderTraits(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"leaderTraits": h.catalog.LeaderTraits()})
}

func (h *Handler) handleCatalogAbilities(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"abilities": warband.Abilities()})
}

func (h *Handler) handleCatalogPointLimits(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"pointLimits": warband.PointLimits()})
}
