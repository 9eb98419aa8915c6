package web

import (
	"net/http"

	"github.com/cory-johannsen/weirdos/internal/game/cost"
	"github.com/cory-johannsen/weirdos/internal/game/validation"
	"github.com/cory-johannsen/weirdos/internal/game/warband"
)

// weirdoValidationRequest validates a single weirdo in the context of a
// warband. Index identifies the weirdo's roster slot; -1 (the default when
// omitted by way of the encoding) means the weirdo is not yet in the roster.
type weirdoValidationRequest struct {
	Weirdo  warband.Weirdo  `json:"weirdo"`
	Warband warband.Warband `json:"warband"`
	Index   *int            `json:"index"`
}

// weirdoCostRequest prices a single weirdo under a warband ability.
type weirdoCostRequest struct {
	Weirdo  warband.Weirdo  `json:"weirdo"`
	Ability warband.Ability `json:"ability"`
}

// weirdoCostBreakdown itemizes where a weirdo's points go.
type weirdoCostBreakdown struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	Attributes    int    `json:"attributes"`
	Weapons       int    `json:"weapons"`
	Equipment     int    `json:"equipment"`
	PsychicPowers int    `json:"psychicPowers"`
	TotalCost     int    `json:"totalCost"`
}

type warbandCostResponse struct {
	TotalCost  int                   `json:"totalCost"`
	PointLimit int                   `json:"pointLimit"`
	Weirdos    []weirdoCostBreakdown `json:"weirdos"`
}

func breakdownFor(w warband.Weirdo, ability warband.Ability) weirdoCostBreakdown {
	b := weirdoCostBreakdown{
		ID:         w.ID,
		Name:       w.Name,
		Attributes: cost.AttributesCost(w.Attributes, ability),
	}
	for _, wpn := range w.CloseCombatWeapons {
		b.Weapons += cost.WeaponCost(wpn, ability)
	}
	for _, wpn := range w.RangedWeapons {
		b.Weapons += cost.WeaponCost(wpn, ability)
	}
	for _, eq := range w.Equipment {
		b.Equipment += cost.EquipmentCost(eq, ability)
	}
	for _, p := range w.PsychicPowers {
		b.PsychicPowers += cost.PsychicPowerCost(p)
	}
	b.TotalCost = b.Attributes + b.Weapons + b.Equipment + b.PsychicPowers
	return b
}

func (h *Handler) handleValidateWarband(w http.ResponseWriter, r *http.Request) {
	var wb warband.Warband
	if err := decodeJSON(r, &wb); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	recost(&wb)
	h.writeJSON(w, http.StatusOK, validation.ValidateWarband(wb))
}

func (h *Handler) handleValidateWeirdo(w http.ResponseWriter, r *http.Request) {
	var req weirdoValidationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	index := -1
	if req.Index != nil {
		index = *req.Index
	}
	recost(&req.Warband)
	req.Weirdo.TotalCost = cost.WeirdoCost(req.Weirdo, req.Warband.Ability)

	findings := validation.ValidateWeirdo(req.Weirdo, req.Warband, index)
	h.writeJSON(w, http.StatusOK, validation.Result{
		Valid:  len(findings) == 0,
		Errors: findings,
	})
}

func (h *Handler) handleCostCalculate(w http.ResponseWriter, r *http.Request) {
	var wb warband.Warband
	if err := decodeJSON(r, &wb); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	resp := warbandCostResponse{
		PointLimit: wb.PointLimit,
		Weirdos:    make([]weirdoCostBreakdown, 0, len(wb.Weirdos)),
	}
	for _, weirdo := range wb.Weirdos {
		b := breakdownFor(weirdo, wb.Ability)
		resp.TotalCost += b.TotalCost
		resp.Weirdos = append(resp.Weirdos, b)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCostWeirdo(w http.ResponseWriter, r *http.Request) {
	var req weirdoCostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.badRequest(w, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, breakdownFor(req.Weirdo, req.Ability))
}
