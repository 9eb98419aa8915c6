package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cory-johannsen/weirdos/internal/game/cost"
	"github.com/cory-johannsen/weirdos/internal/game/validation"
	"github.com/cory-johannsen/weirdos/internal/game/warband"
	"github.com/cory-johannsen/weirdos/internal/importer"
	"github.com/cory-johannsen/weirdos/internal/storage/postgres"
)

// warbandResponse is the envelope for single-warband endpoints. Validation
// findings ride along with every response so clients can render rule
// violations without a second round trip; findings never block persistence,
// because drafts must stay saveable.
type warbandResponse struct {
	Warband    *warband.Warband  `json:"warband"`
	Validation validation.Result `json:"validation"`
}

type warbandListResponse struct {
	Warbands []*warband.Warband `json:"warbands"`
}

// recost recomputes every weirdo's total and the warband total from the
// point-cost tables. Client-supplied totals are never trusted.
func recost(wb *warband.Warband) {
	total := 0
	for i := range wb.Weirdos {
		wb.Weirdos[i].TotalCost = cost.WeirdoCost(wb.Weirdos[i], wb.Ability)
		total += wb.Weirdos[i].TotalCost
	}
	wb.TotalCost = total
}

func (h *Handler) handleCreateWarband(w http.ResponseWriter, r *http.Request) {
	var wb warband.Warband
	if err := decodeJSON(r, &wb); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	wb.ID = ""
	recost(&wb)

	stored, err := h.store.Create(r.Context(), &wb)
	if err != nil {
		if errors.Is(err, postgres.ErrWarbandNameTaken) {
			h.writeError(w, http.StatusConflict, "name_taken", "a warband with that name already exists")
			return
		}
		h.internalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, warbandResponse{
		Warband:    stored,
		Validation: validation.ValidateWarband(*stored),
	})
}

func (h *Handler) handleGetWarband(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		h.notFound(w)
		return
	}
	wb, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, postgres.ErrWarbandNotFound) {
			h.notFound(w)
			return
		}
		h.internalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, warbandResponse{
		Warband:    wb,
		Validation: validation.ValidateWarband(*wb),
	})
}

func (h *Handler) handleListWarbands(w http.ResponseWriter, r *http.Request) {
	warbands, err := h.store.List(r.Context())
	if err != nil {
		h.internalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, warbandListResponse{Warbands: warbands})
}

func (h *Handler) handleUpdateWarband(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		h.notFound(w)
		return
	}
	var wb warband.Warband
	if err := decodeJSON(r, &wb); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	wb.ID = id
	recost(&wb)

	stored, err := h.store.Update(r.Context(), &wb)
	if err != nil {
		switch {
		case errors.Is(err, postgres.ErrWarbandNotFound):
			h.notFound(w)
		case errors.Is(err, postgres.ErrWarbandNameTaken):
			h.writeError(w, http.StatusConflict, "name_taken", "a warband with that name already exists")
		default:
			h.internalError(w, err)
		}
		return
	}
	h.writeJSON(w, http.StatusOK, warbandResponse{
		Warband:    stored,
		Validation: validation.ValidateWarband(*stored),
	})
}

func (h *Handler) handleDeleteWarband(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		h.notFound(w)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, postgres.ErrWarbandNotFound) {
			h.notFound(w)
			return
		}
		h.internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleImportWarband(w http.ResponseWriter, r *http.Request) {
	var b importer.Bundle
	if err := decodeJSON(r, &b); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	wb, err := h.importer.ImportBundle(b)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedSchema) {
			h.badRequest(w, err.Error())
			return
		}
		h.internalError(w, err)
		return
	}

	stored, err := h.store.Create(r.Context(), wb)
	if err != nil {
		if errors.Is(err, postgres.ErrWarbandNameTaken) {
			h.writeError(w, http.StatusConflict, "name_taken", "a warband with that name already exists")
			return
		}
		h.internalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, warbandResponse{
		Warband:    stored,
		Validation: validation.ValidateWarband(*stored),
	})
}

func (h *Handler) handleExportWarband(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		h.notFound(w)
		return
	}
	wb, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, postgres.ErrWarbandNotFound) {
			h.notFound(w)
			return
		}
		h.internalError(w, err)
		return
	}
	data, err := h.importer.Export(*wb)
	if err != nil {
		h.internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="warband.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
