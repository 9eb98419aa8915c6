package cost

import "github.com/cory-johannsen/weirdos/internal/game/warband"

// strategy is the per-ability discount rule set. Each field adjusts one
// cost category; the zero behavior for every category is "no change".
// Keeping each ability's rules in one value means adding an ability
// touches strategyFor, never the cost functions themselves.
type strategy struct {
	speed     func(base int) int
	weapon    func(w warband.Weapon) int
	equipment func(e warband.Equipment) int
}

func noDiscount() strategy {
	return strategy{
		speed:     func(base int) int { return base },
		weapon:    func(w warband.Weapon) int { return w.BaseCost },
		equipment: func(e warband.Equipment) int { return e.BaseCost },
	}
}

// mutantWeapons are the natural weapons discounted by the Mutants ability.
var mutantWeapons = map[string]bool{
	"Claws & Teeth":          true,
	"Horrible Claws & Teeth": true,
	"Whip/Tail":              true,
}

// soldierEquipment is the gear made free by the Soldiers ability.
var soldierEquipment = map[string]bool{
	"Grenade":     true,
	"Heavy Armor": true,
	"Medkit":      true,
}

// strategyFor resolves the discount strategy for an ability. Unrecognized
// abilities get the no-op strategy, matching AbilityNone.
func strategyFor(ability warband.Ability) strategy {
	s := noDiscount()
	switch ability {
	case warband.AbilityMutants:
		s.speed = func(base int) int {
			return floorZero(base - 1)
		}
		s.weapon = func(w warband.Weapon) int {
			if mutantWeapons[w.Name] {
				return floorZero(w.BaseCost - 1)
			}
			return w.BaseCost
		}
	case warband.AbilityHeavilyArmed:
		s.weapon = func(w warband.Weapon) int {
			if w.Kind == warband.WeaponRanged {
				return floorZero(w.BaseCost - 1)
			}
			return w.BaseCost
		}
	case warband.AbilitySoldiers:
		s.equipment = func(e warband.Equipment) int {
			if soldierEquipment[e.Name] {
				return 0
			}
			return e.BaseCost
		}
	}
	return s
}

func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
