package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/weirdos/internal/game/cost"
	"github.com/cory-johannsen/weirdos/internal/game/warband"
)

func makeWeapon(name string, kind warband.WeaponKind, baseCost int) warband.Weapon {
	return warband.Weapon{ID: "w-" + name, Name: name, Kind: kind, BaseCost: baseCost, MaxActions: 2}
}

func makeAttributes() warband.Attributes {
	return warband.Attributes{
		Speed:     2,
		Defense:   warband.Dice2d8,
		Firepower: warband.FirepowerNone,
		Prowess:   warband.Dice2d6,
		Willpower: warband.Dice2d6,
	}
}

func TestSpeedCost_Table(t *testing.T) {
	assert.Equal(t, 0, cost.SpeedCost(1))
	assert.Equal(t, 1, cost.SpeedCost(2))
	assert.Equal(t, 3, cost.SpeedCost(3))
}

func TestDiceCost_DefenseTable(t *testing.T) {
	assert.Equal(t, 2, cost.DiceCost(cost.AttrDefense, warband.Dice2d6))
	assert.Equal(t, 4, cost.DiceCost(cost.AttrDefense, warband.Dice2d8))
	assert.Equal(t, 8, cost.DiceCost(cost.AttrDefense, warband.Dice2d10))
}

func TestDiceCost_ProwessAndWillpowerTable(t *testing.T) {
	for _, attr := range []cost.AttributeName{cost.AttrProwess, cost.AttrWillpower} {
		assert.Equal(t, 2, cost.DiceCost(attr, warband.Dice2d6))
		assert.Equal(t, 4, cost.DiceCost(attr, warband.Dice2d8))
		assert.Equal(t, 6, cost.DiceCost(attr, warband.Dice2d10))
	}
}

func TestFirepowerCost_Table(t *testing.T) {
	assert.Equal(t, 0, cost.FirepowerCost(warband.FirepowerNone))
	assert.Equal(t, 2, cost.FirepowerCost(warband.Firepower2d8))
	assert.Equal(t, 4, cost.FirepowerCost(warband.Firepower2d10))
}

func TestAttributesCost_MutantsDiscountsSpeedOnly(t *testing.T) {
	attrs := makeAttributes()

	// Speed 2 costs 1 base; Mutants reduce it to 0.
	withMutants := cost.AttributesCost(attrs, warband.AbilityMutants)
	without := cost.AttributesCost(attrs, warband.AbilityNone)
	assert.Equal(t, without-1, withMutants)

	// Speed 1 already costs 0 and never goes negative.
	attrs.Speed = 1
	assert.Equal(t,
		cost.AttributesCost(attrs, warband.AbilityNone),
		cost.AttributesCost(attrs, warband.AbilityMutants),
	)
}

func TestWeaponCost_MutantsNaturalWeapons(t *testing.T) {
	claws := makeWeapon("Claws & Teeth", warband.WeaponClose, 2)
	assert.Equal(t, 1, cost.WeaponCost(claws, warband.AbilityMutants))

	freeClaws := makeWeapon("Claws & Teeth", warband.WeaponClose, 0)
	assert.Equal(t, 0, cost.WeaponCost(freeClaws, warband.AbilityMutants))

	blade := makeWeapon("Blade", warband.WeaponClose, 2)
	assert.Equal(t, 2, cost.WeaponCost(blade, warband.AbilityMutants))
}

func TestWeaponCost_HeavilyArmedRangedOnly(t *testing.T) {
	rifle := makeWeapon("Rifle", warband.WeaponRanged, 4)
	assert.Equal(t, 3, cost.WeaponCost(rifle, warband.AbilityHeavilyArmed))

	blade := makeWeapon("Blade", warband.WeaponClose, 2)
	assert.Equal(t, 2, cost.WeaponCost(blade, warband.AbilityHeavilyArmed))

	freeGun := makeWeapon("Holdout Pistol", warband.WeaponRanged, 0)
	assert.Equal(t, 0, cost.WeaponCost(freeGun, warband.AbilityHeavilyArmed))
}

func TestEquipmentCost_SoldiersFreeGear(t *testing.T) {
	for _, name := range []string{"Grenade", "Heavy Armor", "Medkit"} {
		eq := warband.Equipment{ID: "e", Name: name, Kind: warband.EquipmentAction, BaseCost: 3}
		assert.Equal(t, 0, cost.EquipmentCost(eq, warband.AbilitySoldiers), name)
	}

	shield := warband.Equipment{ID: "e", Name: "Shield", Kind: warband.EquipmentPassive, BaseCost: 2}
	assert.Equal(t, 2, cost.EquipmentCost(shield, warband.AbilitySoldiers))
	assert.Equal(t, 3, cost.EquipmentCost(warband.Equipment{Name: "Grenade", BaseCost: 3}, warband.AbilityNone))
}

// Property: psychic power cost is invariant under every ability.
func TestPsychicPowerCost_AbilityIsolation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := rapid.IntRange(0, 10).Draw(rt, "cost")
		p := warband.PsychicPower{ID: "p", Name: "Dominate", Kind: warband.PowerEffect, Cost: c}
		if got := cost.PsychicPowerCost(p); got != c {
			rt.Fatalf("PsychicPowerCost = %d, want %d", got, c)
		}
	})
}

// Property: weirdo cost is deterministic for identical inputs.
func TestWeirdoCost_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := drawWeirdo(rt)
		ability := drawAbility(rt)
		first := cost.WeirdoCost(w, ability)
		second := cost.WeirdoCost(w, ability)
		if first != second {
			rt.Fatalf("WeirdoCost not deterministic: %d then %d", first, second)
		}
	})
}

// Property: no ability ever raises a cost above the no-ability baseline,
// and costs never go negative.
func TestWeirdoCost_DiscountsOnlyLower(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := drawWeirdo(rt)
		base := cost.WeirdoCost(w, warband.AbilityNone)
		for _, ability := range warband.Abilities() {
			got := cost.WeirdoCost(w, ability)
			if got > base {
				rt.Fatalf("ability %s raised cost: %d > %d", ability, got, base)
			}
			if got < 0 {
				rt.Fatalf("ability %s produced negative cost %d", ability, got)
			}
		}
	})
}

func TestWeirdoCost_SumsAllCategories(t *testing.T) {
	w := warband.Weirdo{
		Name:       "Gunner",
		Type:       warband.TypeTrooper,
		Attributes: makeAttributes(), // 1 + 4 + 0 + 2 + 2 = 9
		CloseCombatWeapons: []warband.Weapon{
			makeWeapon("Blade", warband.WeaponClose, 2),
		},
		RangedWeapons: nil,
		Equipment: []warband.Equipment{
			{ID: "e1", Name: "Shield", Kind: warband.EquipmentPassive, BaseCost: 2},
		},
		PsychicPowers: []warband.PsychicPower{
			{ID: "p1", Name: "Push", Kind: warband.PowerAttack, Cost: 3},
		},
	}
	assert.Equal(t, 16, cost.WeirdoCost(w, warband.AbilityNone))
}

func TestWarbandCost_SumsWeirdosUnderAbility(t *testing.T) {
	weirdo := warband.Weirdo{
		Name:       "Mutant",
		Type:       warband.TypeTrooper,
		Attributes: makeAttributes(),
		CloseCombatWeapons: []warband.Weapon{
			makeWeapon("Claws & Teeth", warband.WeaponClose, 2),
		},
	}
	wb := warband.Warband{
		Name:       "The Changed",
		Ability:    warband.AbilityMutants,
		PointLimit: 75,
		Weirdos:    []warband.Weirdo{weirdo, weirdo},
	}
	// Per weirdo: attributes 9 - 1 (speed) + claws 2 - 1 = 9.
	assert.Equal(t, 18, cost.WarbandCost(wb))
}

func TestAttributeCost_MutantsSpeedScenario(t *testing.T) {
	attrs := warband.Attributes{
		Speed:     2,
		Defense:   warband.Dice2d6,
		Firepower: warband.FirepowerNone,
		Prowess:   warband.Dice2d6,
		Willpower: warband.Dice2d6,
	}
	// Speed 2 costs 1 with no ability and 0 under Mutants.
	assert.Equal(t, 7, cost.AttributesCost(attrs, warband.AbilityNone))
	assert.Equal(t, 6, cost.AttributesCost(attrs, warband.AbilityMutants))
}

func drawAbility(rt *rapid.T) warband.Ability {
	all := append([]warband.Ability{warband.AbilityNone}, warband.Abilities()...)
	return rapid.SampledFrom(all).Draw(rt, "ability")
}

func drawWeirdo(rt *rapid.T) warband.Weirdo {
	names := []string{"Claws & Teeth", "Horrible Claws & Teeth", "Whip/Tail", "Blade", "Pistol", "Rifle"}
	attrs := warband.Attributes{
		Speed:     rapid.IntRange(1, 3).Draw(rt, "speed"),
		Defense:   rapid.SampledFrom([]warband.DiceLevel{warband.Dice2d6, warband.Dice2d8, warband.Dice2d10}).Draw(rt, "defense"),
		Firepower: rapid.SampledFrom([]warband.FirepowerLevel{warband.FirepowerNone, warband.Firepower2d8, warband.Firepower2d10}).Draw(rt, "firepower"),
		Prowess:   rapid.SampledFrom([]warband.DiceLevel{warband.Dice2d6, warband.Dice2d8, warband.Dice2d10}).Draw(rt, "prowess"),
		Willpower: rapid.SampledFrom([]warband.DiceLevel{warband.Dice2d6, warband.Dice2d8, warband.Dice2d10}).Draw(rt, "willpower"),
	}
	w := warband.Weirdo{Name: "Weirdo", Type: warband.TypeTrooper, Attributes: attrs}
	for i := 0; i < rapid.IntRange(1, 3).Draw(rt, "closeCount"); i++ {
		w.CloseCombatWeapons = append(w.CloseCombatWeapons, makeWeapon(
			rapid.SampledFrom(names).Draw(rt, "closeName"),
			warband.WeaponClose,
			rapid.IntRange(0, 4).Draw(rt, "closeCost"),
		))
	}
	for i := 0; i < rapid.IntRange(0, 2).Draw(rt, "rangedCount"); i++ {
		w.RangedWeapons = append(w.RangedWeapons, makeWeapon(
			rapid.SampledFrom(names).Draw(rt, "rangedName"),
			warband.WeaponRanged,
			rapid.IntRange(0, 4).Draw(rt, "rangedCost"),
		))
	}
	for i := 0; i < rapid.IntRange(0, 2).Draw(rt, "equipCount"); i++ {
		w.Equipment = append(w.Equipment, warband.Equipment{
			ID:       "e",
			Name:     rapid.SampledFrom([]string{"Grenade", "Heavy Armor", "Medkit", "Shield"}).Draw(rt, "equipName"),
			Kind:     warband.EquipmentPassive,
			BaseCost: rapid.IntRange(0, 4).Draw(rt, "equipCost"),
		})
	}
	for i := 0; i < rapid.IntRange(0, 2).Draw(rt, "powerCount"); i++ {
		w.PsychicPowers = append(w.PsychicPowers, warband.PsychicPower{
			ID:   "p",
			Name: "Power",
			Kind: warband.PowerEither,
			Cost: rapid.IntRange(0, 5).Draw(rt, "powerCost"),
		})
	}
	return w
}
