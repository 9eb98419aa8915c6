// Package importer handles import and export of warband JSON bundles.
// Import is the one layer in the system that hardens input: it checks the
// bundle shape, sanitizes every string, regenerates every ID, re-anchors
// entries to the game catalog, and recomputes all point totals. Rule
// violations are deliberately not rejected here; an imported draft may be
// invalid and is reported as such by the validation package.
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cory-johannsen/weirdos/internal/game/catalog"
	"github.com/cory-johannsen/weirdos/internal/game/cost"
	"github.com/cory-johannsen/weirdos/internal/game/warband"
)

// SchemaVersion is the current export bundle schema version.
const SchemaVersion = 1

// ErrUnsupportedSchema is returned when a bundle declares a schema version
// this build does not understand.
var ErrUnsupportedSchema = errors.New("unsupported bundle schema version")

// Bundle is the wire format for an exported warband.
type Bundle struct {
	SchemaVersion int             `json:"schemaVersion"`
	ExportedAt    time.Time       `json:"exportedAt"`
	Warband       warband.Warband `json:"warband"`
}

// Importer imports and exports warband bundles. The catalog, when present,
// is used to re-anchor imported weapons, equipment, and powers to their
// canonical records by name; a nil catalog skips re-anchoring.
type Importer struct {
	catalog *catalog.Catalog
}

// New constructs an Importer. catalog may be nil.
func New(c *catalog.Catalog) *Importer {
	return &Importer{catalog: c}
}

// Export wraps wb in a bundle and marshals it as indented JSON.
//
// Postcondition: the result round-trips through Import.
func (imp *Importer) Export(wb warband.Warband) ([]byte, error) {
	b := Bundle{
		SchemaVersion: SchemaVersion,
		ExportedAt:    time.Now().UTC(),
		Warband:       wb,
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling bundle: %w", err)
	}
	return data, nil
}

// Import decodes a bundle, hardens its contents, and returns a fresh
// warband ready to be stored: new IDs throughout, zeroed timestamps,
// sanitized strings, normalized enums, and recomputed totals.
//
// Postcondition: the returned warband shares no IDs with the input and
// every TotalCost field is consistent with the cost engine.
func (imp *Importer) Import(data []byte) (*warband.Warband, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing bundle: %w", err)
	}
	return imp.ImportBundle(b)
}

// ImportBundle hardens an already-decoded bundle. See Import.
func (imp *Importer) ImportBundle(b Bundle) (*warband.Warband, error) {
	if b.SchemaVersion != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrUnsupportedSchema, b.SchemaVersion, SchemaVersion)
	}

	wb := b.Warband
	wb.ID = uuid.New().String()
	wb.Name = sanitizeName(wb.Name)
	wb.CreatedAt = time.Time{}
	wb.UpdatedAt = time.Time{}
	if !wb.Ability.IsValid() {
		wb.Ability = warband.AbilityNone
	}

	for i := range wb.Weirdos {
		imp.hardenWeirdo(&wb.Weirdos[i])
	}
	for i := range wb.Weirdos {
		wb.Weirdos[i].TotalCost = cost.WeirdoCost(wb.Weirdos[i], wb.Ability)
	}
	wb.TotalCost = cost.WarbandCost(wb)

	return &wb, nil
}

func (imp *Importer) hardenWeirdo(w *warband.Weirdo) {
	w.ID = uuid.New().String()
	w.Name = sanitizeName(w.Name)
	w.Notes = sanitizeText(w.Notes)
	w.LeaderTrait = sanitizeName(w.LeaderTrait)
	if w.Type != warband.TypeLeader && w.Type != warband.TypeTrooper {
		w.Type = warband.TypeTrooper
	}
	if w.Type != warband.TypeLeader {
		w.LeaderTrait = ""
	}

	for i := range w.CloseCombatWeapons {
		imp.hardenWeapon(&w.CloseCombatWeapons[i], warband.WeaponClose)
	}
	for i := range w.RangedWeapons {
		imp.hardenWeapon(&w.RangedWeapons[i], warband.WeaponRanged)
	}
	for i := range w.Equipment {
		imp.hardenEquipment(&w.Equipment[i])
	}
	for i := range w.PsychicPowers {
		imp.hardenPower(&w.PsychicPowers[i])
	}
}

// hardenWeapon normalizes a weapon entry. The kind is forced to match the
// list the weapon arrived in; a catalog match by name replaces the entry
// wholesale so imported cost tampering cannot survive.
func (imp *Importer) hardenWeapon(w *warband.Weapon, kind warband.WeaponKind) {
	w.Name = sanitizeName(w.Name)
	w.Notes = sanitizeText(w.Notes)
	w.Kind = kind
	if w.BaseCost < 0 {
		w.BaseCost = 0
	}
	if imp.catalog != nil {
		if canonical, ok := imp.catalog.WeaponByName(w.Name); ok && canonical.Kind == kind {
			*w = canonical
			return
		}
	}
	w.ID = uuid.New().String()
}

// hardenEquipment normalizes an equipment entry. As with weapons, a catalog
// match by name replaces the entry wholesale so imported cost tampering
// cannot survive.
func (imp *Importer) hardenEquipment(e *warband.Equipment) {
	e.Name = sanitizeName(e.Name)
	e.Effect = sanitizeText(e.Effect)
	if e.Kind != warband.EquipmentPassive && e.Kind != warband.EquipmentAction {
		e.Kind = warband.EquipmentPassive
	}
	if e.BaseCost < 0 {
		e.BaseCost = 0
	}
	if imp.catalog != nil {
		if canonical, ok := imp.catalog.EquipmentByName(e.Name); ok {
			*e = canonical
			return
		}
	}
	e.ID = uuid.New().String()
}

// hardenPower normalizes a psychic power entry, re-anchoring it to the
// catalog by name like weapons and equipment.
func (imp *Importer) hardenPower(p *warband.PsychicPower) {
	p.Name = sanitizeName(p.Name)
	p.Effect = sanitizeText(p.Effect)
	switch p.Kind {
	case warband.PowerAttack, warband.PowerEffect, warband.PowerEither:
	default:
		p.Kind = warband.PowerEffect
	}
	if p.Cost < 0 {
		p.Cost = 0
	}
	if imp.catalog != nil {
		if canonical, ok := imp.catalog.PsychicPowerByName(p.Name); ok {
			*p = canonical
			return
		}
	}
	p.ID = uuid.New().String()
}
