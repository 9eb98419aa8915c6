// Package validation runs the full warband rule set against a weirdo or an
// entire warband. Checks are independent and never short-circuit: every
// violated rule is reported, each as a structured finding. Rule violations
// are findings, not Go errors; the functions here never fail and never
// mutate their inputs.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cory-johannsen/weirdos/internal/game/cost"
	"github.com/cory-johannsen/weirdos/internal/game/warband"
)

// Error is a single violated rule.
type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    Code   `json:"code"`
}

// Result is the outcome of validating a whole warband.
type Result struct {
	Valid  bool    `json:"valid"`
	Errors []Error `json:"errors"`
}

const (
	// specialSlotMin and specialSlotMax bound the single permitted
	// over-cap weirdo ("special slot").
	specialSlotMin = 21
	specialSlotMax = 25

	trooperCap = 20
	weirdoCap  = 25
)

func finding(field string, code Code, params map[string]string) Error {
	return Error{Field: field, Message: Message(code, params), Code: code}
}

// ValidateWarband runs every warband-level and weirdo-level rule and
// returns all findings together.
//
// Postcondition: Result.Valid is true iff Result.Errors is empty; wb is
// not mutated.
func ValidateWarband(wb warband.Warband) Result {
	errs := make([]Error, 0)

	if strings.TrimSpace(wb.Name) == "" {
		errs = append(errs, finding("name", CodeWarbandNameRequired, nil))
	}
	if !warband.ValidPointLimit(wb.PointLimit) {
		errs = append(errs, finding("pointLimit", CodeInvalidPointLimit, nil))
	}

	for i, w := range wb.Weirdos {
		prefix := fmt.Sprintf("weirdos[%d].", i)
		for _, e := range validateWeirdo(w, wb, i) {
			e.Field = prefix + e.Field
			errs = append(errs, e)
		}
	}

	if n := countSpecialSlot(wb); n > 1 {
		errs = append(errs, finding("weirdos", CodeMultiple25PointWeirdos, map[string]string{
			"count": strconv.Itoa(n),
		}))
	}

	// Checked against the declared limit even when that limit is itself
	// invalid; the two findings are independent.
	if total := cost.WarbandCost(wb); total > wb.PointLimit {
		errs = append(errs, finding("totalCost", CodeWarbandPointLimitExceeded, map[string]string{
			"cost":  strconv.Itoa(total),
			"limit": strconv.Itoa(wb.PointLimit),
		}))
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateWeirdo runs every weirdo-level rule against w in the context of
// wb. The index identifies w's position in wb.Weirdos so cost-based rules
// can exclude it when inspecting the rest of the roster; pass -1 for a
// weirdo not present in the roster.
func ValidateWeirdo(w warband.Weirdo, wb warband.Warband, index int) []Error {
	return validateWeirdo(w, wb, index)
}

func validateWeirdo(w warband.Weirdo, wb warband.Warband, index int) []Error {
	errs := make([]Error, 0)

	if strings.TrimSpace(w.Name) == "" {
		errs = append(errs, finding("name", CodeWeirdoNameRequired, nil))
	}

	// Attribute presence is uniform: an attribute counts as present iff its
	// value is one of its enumerated levels.
	attrsComplete := w.Attributes.Complete()
	if !attrsComplete {
		errs = append(errs, finding("attributes", CodeAttributesIncomplete, nil))
	}

	if len(w.CloseCombatWeapons) == 0 {
		errs = append(errs, finding("closeCombatWeapons", CodeCloseCombatWeaponRequired, nil))
	}

	// The ranged/firepower cross-check only makes sense once attributes are
	// set; absent attributes are already reported above.
	if attrsComplete {
		if w.Attributes.Firepower.HasRanged() && len(w.RangedWeapons) == 0 {
			errs = append(errs, finding("rangedWeapons", CodeRangedWeaponRequired, map[string]string{
				"firepower": string(w.Attributes.Firepower),
			}))
		}
		if len(w.RangedWeapons) > 0 && w.Attributes.Firepower == warband.FirepowerNone {
			errs = append(errs, finding("attributes.firepower", CodeFirepowerRequiredForRangedWeapon, nil))
		}
	}

	if limit := warband.EquipmentLimit(w.Type, wb.Ability); len(w.Equipment) > limit {
		errs = append(errs, finding("equipment", CodeEquipmentLimitExceeded, map[string]string{
			"count": strconv.Itoa(len(w.Equipment)),
			"limit": strconv.Itoa(limit),
		}))
	}

	if w.Type == warband.TypeTrooper {
		if e, ok := trooperPointFinding(w, wb, index); ok {
			errs = append(errs, e)
		}
	}

	if w.Type == warband.TypeTrooper && w.LeaderTrait != "" {
		errs = append(errs, finding("leaderTrait", CodeLeaderTraitInvalid, nil))
	}

	return errs
}

// trooperPointFinding applies the per-trooper point cap. A trooper costing
// 21-25 points is itself a special-slot candidate and passes the individual
// check (duplicate candidates surface as MULTIPLE_25_POINT_WEIRDOS at the
// warband level). Otherwise the cap is 25, or 20 when another weirdo
// already occupies the special slot.
func trooperPointFinding(w warband.Weirdo, wb warband.Warband, index int) (Error, bool) {
	c := cost.WeirdoCost(w, wb.Ability)
	if c >= specialSlotMin && c <= specialSlotMax {
		return Error{}, false
	}

	limit := weirdoCap
	if specialSlotTakenByOther(wb, index) {
		limit = trooperCap
	}
	if c <= limit {
		return Error{}, false
	}
	return finding("totalCost", CodeTrooperPointLimitExceeded, map[string]string{
		"cost":  strconv.Itoa(c),
		"limit": strconv.Itoa(limit),
	}), true
}

func specialSlotTakenByOther(wb warband.Warband, index int) bool {
	for i, other := range wb.Weirdos {
		if i == index {
			continue
		}
		c := cost.WeirdoCost(other, wb.Ability)
		if c >= specialSlotMin && c <= specialSlotMax {
			return true
		}
	}
	return false
}

func countSpecialSlot(wb warband.Warband) int {
	n := 0
	for _, w := range wb.Weirdos {
		c := cost.WeirdoCost(w, wb.Ability)
		if c >= specialSlotMin && c <= specialSlotMax {
			n++
		}
	}
	return n
}
