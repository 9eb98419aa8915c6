// Package cost computes point costs for weirdos and warbands. Every
// function is pure: fixed base-cost tables plus at most one warband-ability
// discount, no state and no I/O.
package cost

import "github.com/cory-johannsen/weirdos/internal/game/warband"

// AttributeName identifies one of the five weirdo attributes in cost lookups.
type AttributeName string

const (
	// AttrSpeed is the movement attribute (levels 1-3).
	AttrSpeed AttributeName = "speed"
	// AttrDefense is the defense dice attribute.
	AttrDefense AttributeName = "defense"
	// AttrFirepower is the ranged dice attribute.
	AttrFirepower AttributeName = "firepower"
	// AttrProwess is the close-combat dice attribute.
	AttrProwess AttributeName = "prowess"
	// AttrWillpower is the willpower dice attribute.
	AttrWillpower AttributeName = "willpower"
)

var speedCosts = map[int]int{1: 0, 2: 1, 3: 3}

var defenseCosts = map[warband.DiceLevel]int{
	warband.Dice2d6:  2,
	warband.Dice2d8:  4,
	warband.Dice2d10: 8,
}

var firepowerCosts = map[warband.FirepowerLevel]int{
	warband.FirepowerNone: 0,
	warband.Firepower2d8:  2,
	warband.Firepower2d10: 4,
}

var prowessCosts = map[warband.DiceLevel]int{
	warband.Dice2d6:  2,
	warband.Dice2d8:  4,
	warband.Dice2d10: 6,
}

var willpowerCosts = prowessCosts

// SpeedCost returns the base cost of a speed level. Levels outside the
// table cost 0; the validation package owns level-domain checking.
func SpeedCost(level int) int {
	return speedCosts[level]
}

// DiceCost returns the base cost for a dice attribute at the given level.
//
// Precondition: attr is AttrDefense, AttrProwess, or AttrWillpower.
func DiceCost(attr AttributeName, level warband.DiceLevel) int {
	if attr == AttrDefense {
		return defenseCosts[level]
	}
	return prowessCosts[level]
}

// FirepowerCost returns the base cost of a firepower level.
func FirepowerCost(level warband.FirepowerLevel) int {
	return firepowerCosts[level]
}

// AttributesCost returns the summed cost of all five attributes under the
// given warband ability.
func AttributesCost(a warband.Attributes, ability warband.Ability) int {
	s := strategyFor(ability)
	total := s.speed(SpeedCost(a.Speed))
	total += DiceCost(AttrDefense, a.Defense)
	total += FirepowerCost(a.Firepower)
	total += DiceCost(AttrProwess, a.Prowess)
	total += DiceCost(AttrWillpower, a.Willpower)
	return total
}

// WeaponCost returns the cost of a weapon under the given warband ability.
func WeaponCost(w warband.Weapon, ability warband.Ability) int {
	return strategyFor(ability).weapon(w)
}

// EquipmentCost returns the cost of a piece of equipment under the given
// warband ability.
func EquipmentCost(e warband.Equipment, ability warband.Ability) int {
	return strategyFor(ability).equipment(e)
}

// PsychicPowerCost returns the cost of a psychic power. No warband ability
// ever modifies psychic power costs.
func PsychicPowerCost(p warband.PsychicPower) int {
	return p.Cost
}

// WeirdoCost returns the total point cost of a weirdo under the given
// warband ability: attributes, all weapons, all equipment, all powers.
//
// Postcondition: deterministic; identical inputs yield identical results.
func WeirdoCost(w warband.Weirdo, ability warband.Ability) int {
	total := AttributesCost(w.Attributes, ability)
	for _, wpn := range w.CloseCombatWeapons {
		total += WeaponCost(wpn, ability)
	}
	for _, wpn := range w.RangedWeapons {
		total += WeaponCost(wpn, ability)
	}
	for _, eq := range w.Equipment {
		total += EquipmentCost(eq, ability)
	}
	for _, p := range w.PsychicPowers {
		total += PsychicPowerCost(p)
	}
	return total
}

// WarbandCost returns the summed cost of every weirdo in the warband under
// the warband's ability.
func WarbandCost(wb warband.Warband) int {
	total := 0
	for _, w := range wb.Weirdos {
		total += WeirdoCost(w, wb.Ability)
	}
	return total
}
