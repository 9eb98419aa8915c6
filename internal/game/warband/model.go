// Package warband defines the warband domain model: weirdos, their
// weapons, equipment, and psychic powers, and the warband roster that
// contains them. The model is plain data; game-rule invariants are
// enforced by the validation package, not here, so that invalid drafts
// remain representable and saveable.
package warband

import "time"

// DiceLevel is an attribute die rating for defense, prowess, and willpower.
type DiceLevel string

const (
	// Dice2d6 is the lowest attribute die rating.
	Dice2d6 DiceLevel = "2d6"
	// Dice2d8 is the middle attribute die rating.
	Dice2d8 DiceLevel = "2d8"
	// Dice2d10 is the highest attribute die rating.
	Dice2d10 DiceLevel = "2d10"
)

// IsValid reports whether d is one of the enumerated die ratings.
func (d DiceLevel) IsValid() bool {
	switch d {
	case Dice2d6, Dice2d8, Dice2d10:
		return true
	}
	return false
}

// FirepowerLevel is the ranged-attack die rating. Unlike the other dice
// attributes it may be None, meaning the weirdo cannot use ranged weapons.
type FirepowerLevel string

const (
	// FirepowerNone means the weirdo has no ranged capability.
	FirepowerNone FirepowerLevel = "None"
	// Firepower2d8 is the lower ranged die rating.
	Firepower2d8 FirepowerLevel = "2d8"
	// Firepower2d10 is the higher ranged die rating.
	Firepower2d10 FirepowerLevel = "2d10"
)

// IsValid reports whether f is one of the enumerated firepower levels.
func (f FirepowerLevel) IsValid() bool {
	switch f {
	case FirepowerNone, Firepower2d8, Firepower2d10:
		return true
	}
	return false
}

// HasRanged reports whether f permits carrying ranged weapons.
func (f FirepowerLevel) HasRanged() bool {
	return f == Firepower2d8 || f == Firepower2d10
}

// ValidSpeed reports whether s is an allowed speed level (1-3).
func ValidSpeed(s int) bool {
	return s >= 1 && s <= 3
}

// Attributes holds the five required attribute values of a weirdo.
type Attributes struct {
	Speed     int            `json:"speed" yaml:"speed"`
	Defense   DiceLevel      `json:"defense" yaml:"defense"`
	Firepower FirepowerLevel `json:"firepower" yaml:"firepower"`
	Prowess   DiceLevel      `json:"prowess" yaml:"prowess"`
	Willpower DiceLevel      `json:"willpower" yaml:"willpower"`
}

// Complete reports whether every attribute is set to an enumerated level.
//
// Postcondition: returns true iff all five attributes are valid levels.
func (a Attributes) Complete() bool {
	return ValidSpeed(a.Speed) &&
		a.Defense.IsValid() &&
		a.Firepower.IsValid() &&
		a.Prowess.IsValid() &&
		a.Willpower.IsValid()
}

// WeaponKind distinguishes close-combat from ranged weapons.
type WeaponKind string

const (
	// WeaponClose marks a close-combat weapon.
	WeaponClose WeaponKind = "close"
	// WeaponRanged marks a ranged weapon.
	WeaponRanged WeaponKind = "ranged"
)

// Weapon is a single weapon carried by a weirdo.
type Weapon struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Kind       WeaponKind `json:"kind" yaml:"kind"`
	BaseCost   int        `json:"baseCost" yaml:"base_cost"`
	MaxActions int        `json:"maxActions" yaml:"max_actions"`
	Notes      string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// EquipmentKind distinguishes passive gear from gear used as an action.
type EquipmentKind string

const (
	// EquipmentPassive marks always-on equipment.
	EquipmentPassive EquipmentKind = "Passive"
	// EquipmentAction marks equipment consumed or triggered as an action.
	EquipmentAction EquipmentKind = "Action"
)

// Equipment is a single piece of gear carried by a weirdo.
type Equipment struct {
	ID       string        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Kind     EquipmentKind `json:"kind" yaml:"kind"`
	BaseCost int           `json:"baseCost" yaml:"base_cost"`
	Effect   string        `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// PowerKind classifies how a psychic power is used.
type PowerKind string

const (
	// PowerAttack marks a power usable only as an attack.
	PowerAttack PowerKind = "Attack"
	// PowerEffect marks a power usable only as an effect.
	PowerEffect PowerKind = "Effect"
	// PowerEither marks a power usable either way.
	PowerEither PowerKind = "Either"
)

// PsychicPower is a power known by a weirdo. Its cost is fixed: no warband
// ability ever discounts psychic powers.
type PsychicPower struct {
	ID     string    `json:"id" yaml:"id"`
	Name   string    `json:"name" yaml:"name"`
	Kind   PowerKind `json:"kind" yaml:"kind"`
	Cost   int       `json:"cost" yaml:"cost"`
	Effect string    `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// Ability is a warband-wide rule modifier. The empty string means the
// warband has no ability.
type Ability string

const (
	// AbilityNone is the absence of a warband ability.
	AbilityNone Ability = ""
	// AbilityCyborgs raises the per-weirdo equipment limit by one.
	AbilityCyborgs Ability = "Cyborgs"
	// AbilityFanatics has no cost or roster effect in this engine.
	AbilityFanatics Ability = "Fanatics"
	// AbilityLivingWeapons has no cost or roster effect in this engine.
	AbilityLivingWeapons Ability = "Living Weapons"
	// AbilityHeavilyArmed discounts every ranged weapon by one point.
	AbilityHeavilyArmed Ability = "Heavily Armed"
	// AbilityMutants discounts speed and natural weapons by one point.
	AbilityMutants Ability = "Mutants"
	// AbilitySoldiers makes Grenade, Heavy Armor, and Medkit free.
	AbilitySoldiers Ability = "Soldiers"
	// AbilityUndead has no cost or roster effect in this engine.
	AbilityUndead Ability = "Undead"
)

// Abilities lists every named warband ability in rulebook order.
func Abilities() []Ability {
	return []Ability{
		AbilityCyborgs,
		AbilityFanatics,
		AbilityLivingWeapons,
		AbilityHeavilyArmed,
		AbilityMutants,
		AbilitySoldiers,
		AbilityUndead,
	}
}

// IsValid reports whether a is a named ability or none.
func (a Ability) IsValid() bool {
	if a == AbilityNone {
		return true
	}
	for _, known := range Abilities() {
		if a == known {
			return true
		}
	}
	return false
}

// WeirdoType distinguishes the warband leader from ordinary troopers.
type WeirdoType string

const (
	// TypeLeader marks the warband leader.
	TypeLeader WeirdoType = "leader"
	// TypeTrooper marks an ordinary warband member.
	TypeTrooper WeirdoType = "trooper"
)

// Weirdo is a single warband member.
type Weirdo struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Type               WeirdoType     `json:"type"`
	Attributes         Attributes     `json:"attributes"`
	CloseCombatWeapons []Weapon       `json:"closeCombatWeapons"`
	RangedWeapons      []Weapon       `json:"rangedWeapons"`
	Equipment          []Equipment    `json:"equipment"`
	PsychicPowers      []PsychicPower `json:"psychicPowers"`
	LeaderTrait        string         `json:"leaderTrait,omitempty"`
	Notes              string         `json:"notes,omitempty"`
	TotalCost          int            `json:"totalCost"`
}

// Warband is a player's full roster under a shared point budget.
type Warband struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Ability    Ability   `json:"ability,omitempty"`
	PointLimit int       `json:"pointLimit"`
	TotalCost  int       `json:"totalCost"`
	Weirdos    []Weirdo  `json:"weirdos"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PointLimits returns the playable warband sizes.
func PointLimits() []int {
	return []int{75, 125}
}

// ValidPointLimit reports whether limit is a playable warband size.
func ValidPointLimit(limit int) bool {
	return limit == 75 || limit == 125
}

// EquipmentLimit returns the maximum pieces of equipment a weirdo of the
// given type may carry under the given warband ability. Cyborgs raise the
// limit by one for every weirdo.
func EquipmentLimit(t WeirdoType, ability Ability) int {
	limit := 1
	if t == TypeLeader {
		limit = 2
	}
	if ability == AbilityCyborgs {
		limit++
	}
	return limit
}
