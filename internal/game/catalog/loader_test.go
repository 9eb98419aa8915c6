package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/weirdos/internal/game/catalog"
)

func writeContent(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

const weaponsYAML = `
weapons:
  - id: claws-teeth
    name: Claws & Teeth
    kind: close
    base_cost: 2
    max_actions: 2
  - id: rifle
    name: Rifle
    kind: ranged
    base_cost: 4
    max_actions: 2
    notes: Long range.
`

const gearYAML = `
equipment:
  - id: grenade
    name: Grenade
    kind: Action
    base_cost: 3
    effect: One-use blast.
psychic_powers:
  - id: dominate
    name: Dominate
    kind: Effect
    cost: 4
leader_traits:
  - id: tactician
    name: Tactician
    effect: Re-roll one activation die.
`

func TestLoad_MergesFiles(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "weapons.yaml", weaponsYAML)
	writeContent(t, dir, "gear.yaml", gearYAML)

	c, err := catalog.Load(dir)
	require.NoError(t, err)

	w, ok := c.Weapon("rifle")
	require.True(t, ok)
	assert.Equal(t, "Rifle", w.Name)
	assert.Equal(t, 4, w.BaseCost)

	byName, ok := c.WeaponByName("Claws & Teeth")
	require.True(t, ok)
	assert.Equal(t, "claws-teeth", byName.ID)

	eq, ok := c.Equipment("grenade")
	require.True(t, ok)
	assert.Equal(t, 3, eq.BaseCost)

	p, ok := c.PsychicPower("dominate")
	require.True(t, ok)
	assert.Equal(t, 4, p.Cost)

	tr, ok := c.LeaderTrait("tactician")
	require.True(t, ok)
	assert.Equal(t, "Tactician", tr.Name)
}

func TestLoad_ListingsSortedByName(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "weapons.yaml", weaponsYAML)

	c, err := catalog.Load(dir)
	require.NoError(t, err)

	weapons := c.Weapons()
	require.Len(t, weapons, 2)
	assert.Equal(t, "Claws & Teeth", weapons[0].Name)
	assert.Equal(t, "Rifle", weapons[1].Name)
}

func TestLoad_DuplicateIDRejected(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "a.yaml", weaponsYAML)
	writeContent(t, dir, "b.yaml", weaponsYAML)

	_, err := catalog.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate weapon ID")
}

func TestLoad_UnknownKindRejected(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "bad.yaml", `
weapons:
  - id: zapgun
    name: Zap Gun
    kind: beam
    base_cost: 3
`)

	_, err := catalog.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestLoad_NegativeCostRejected(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, "bad.yaml", `
equipment:
  - id: cursed
    name: Cursed Idol
    kind: Passive
    base_cost: -1
`)

	_, err := catalog.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative base cost")
}

func TestLoad_MissingDirectory(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
