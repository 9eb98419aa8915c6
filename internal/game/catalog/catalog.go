// Package catalog holds the fixed game catalog: every weapon, piece of
// equipment, psychic power, and leader trait a weirdo can take. The
// catalog is loaded once at startup from YAML content files and passed
// explicitly to its consumers; nothing here is lazily populated or
// mutable after Load returns.
package catalog

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/weirdos/internal/game/warband"
)

// LeaderTrait is an optional perk attachable only to the warband leader.
type LeaderTrait struct {
	ID     string `yaml:"id" json:"id"`
	Name   string `yaml:"name" json:"name"`
	Effect string `yaml:"effect,omitempty" json:"effect,omitempty"`
}

// Catalog is the complete, immutable game reference data.
type Catalog struct {
	weapons      map[string]warband.Weapon
	equipment    map[string]warband.Equipment
	powers       map[string]warband.PsychicPower
	leaderTraits map[string]LeaderTrait
}

// Weapon returns the weapon with the given ID and whether it exists.
func (c *Catalog) Weapon(id string) (warband.Weapon, bool) {
	w, ok := c.weapons[id]
	return w, ok
}

// Equipment returns the equipment with the given ID and whether it exists.
func (c *Catalog) Equipment(id string) (warband.Equipment, bool) {
	e, ok := c.equipment[id]
	return e, ok
}

// PsychicPower returns the power with the given ID and whether it exists.
func (c *Catalog) PsychicPower(id string) (warband.PsychicPower, bool) {
	p, ok := c.powers[id]
	return p, ok
}

// LeaderTrait returns the trait with the given ID and whether it exists.
func (c *Catalog) LeaderTrait(id string) (LeaderTrait, bool) {
	t, ok := c.leaderTraits[id]
	return t, ok
}

// WeaponByName returns the weapon with the given display name, if any.
// Names are unique within the catalog.
func (c *Catalog) WeaponByName(name string) (warband.Weapon, bool) {
	for _, w := range c.weapons {
		if w.Name == name {
			return w, true
		}
	}
	return warband.Weapon{}, false
}

// EquipmentByName returns the equipment with the given display name, if
// any. Names are unique within the catalog.
func (c *Catalog) EquipmentByName(name string) (warband.Equipment, bool) {
	for _, e := range c.equipment {
		if e.Name == name {
			return e, true
		}
	}
	return warband.Equipment{}, false
}

// PsychicPowerByName returns the power with the given display name, if any.
// Names are unique within the catalog.
func (c *Catalog) PsychicPowerByName(name string) (warband.PsychicPower, bool) {
	for _, p := range c.powers {
		if p.Name == name {
			return p, true
		}
	}
	return warband.PsychicPower{}, false
}

// Weapons returns all weapons sorted by name.
func (c *Catalog) Weapons() []warband.Weapon {
	out := make([]warband.Weapon, 0, len(c.weapons))
	for _, w := range c.weapons {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AllEquipment returns all equipment sorted by name.
func (c *Catalog) AllEquipment() []warband.Equipment {
	out := make([]warband.Equipment, 0, len(c.equipment))
	for _, e := range c.equipment {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// PsychicPowers returns all powers sorted by name.
func (c *Catalog) PsychicPowers() []warband.PsychicPower {
	out := make([]warband.PsychicPower, 0, len(c.powers))
	for _, p := range c.powers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LeaderTraits returns all leader traits sorted by name.
func (c *Catalog) LeaderTraits() []LeaderTrait {
	out := make([]LeaderTrait, 0, len(c.leaderTraits))
	for _, t := range c.leaderTraits {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func build(weapons []warband.Weapon, equipment []warband.Equipment,
	powers []warband.PsychicPower, traits []LeaderTrait) (*Catalog, error) {

	c := &Catalog{
		weapons:      make(map[string]warband.Weapon, len(weapons)),
		equipment:    make(map[string]warband.Equipment, len(equipment)),
		powers:       make(map[string]warband.PsychicPower, len(powers)),
		leaderTraits: make(map[string]LeaderTrait, len(traits)),
	}
	for _, w := range weapons {
		if err := validateWeapon(w); err != nil {
			return nil, err
		}
		if _, exists := c.weapons[w.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate weapon ID %q", w.ID)
		}
		c.weapons[w.ID] = w
	}
	for _, e := range equipment {
		if err := validateEquipment(e); err != nil {
			return nil, err
		}
		if _, exists := c.equipment[e.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate equipment ID %q", e.ID)
		}
		c.equipment[e.ID] = e
	}
	for _, p := range powers {
		if err := validatePower(p); err != nil {
			return nil, err
		}
		if _, exists := c.powers[p.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate psychic power ID %q", p.ID)
		}
		c.powers[p.ID] = p
	}
	for _, t := range traits {
		if t.ID == "" || t.Name == "" {
			return nil, fmt.Errorf("catalog: leader trait %q must have id and name", t.ID)
		}
		if _, exists := c.leaderTraits[t.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate leader trait ID %q", t.ID)
		}
		c.leaderTraits[t.ID] = t
	}
	return c, nil
}

func validateWeapon(w warband.Weapon) error {
	if w.ID == "" || w.Name == "" {
		return fmt.Errorf("catalog: weapon %q must have id and name", w.ID)
	}
	if w.Kind != warband.WeaponClose && w.Kind != warband.WeaponRanged {
		return fmt.Errorf("catalog: weapon %q has unknown kind %q", w.ID, w.Kind)
	}
	if w.BaseCost < 0 {
		return fmt.Errorf("catalog: weapon %q has negative base cost %d", w.ID, w.BaseCost)
	}
	return nil
}

func validateEquipment(e warband.Equipment) error {
	if e.ID == "" || e.Name == "" {
		return fmt.Errorf("catalog: equipment %q must have id and name", e.ID)
	}
	if e.Kind != warband.EquipmentPassive && e.Kind != warband.EquipmentAction {
		return fmt.Errorf("catalog: equipment %q has unknown kind %q", e.ID, e.Kind)
	}
	if e.BaseCost < 0 {
		return fmt.Errorf("catalog: equipment %q has negative base cost %d", e.ID, e.BaseCost)
	}
	return nil
}

func validatePower(p warband.PsychicPower) error {
	if p.ID == "" || p.Name == "" {
		return fmt.Errorf("catalog: psychic power %q must have id and name", p.ID)
	}
	switch p.Kind {
	case warband.PowerAttack, warband.PowerEffect, warband.PowerEither:
	default:
		return fmt.Errorf("catalog: psychic power %q has unknown kind %q", p.ID, p.Kind)
	}
	if p.Cost < 0 {
		return fmt.Errorf("catalog: psychic power %q has negative cost %d", p.ID, p.Cost)
	}
	return nil
}
