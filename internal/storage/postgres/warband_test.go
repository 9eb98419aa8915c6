package postgres_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/weirdos/internal/game/warband"
	"github.com/cory-johannsen/weirdos/internal/storage/postgres"
	"github.com/cory-johannsen/weirdos/internal/testutil"
)

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func testWarband(name string) *warband.Warband {
	return &warband.Warband{
		Name:       name,
		Ability:    warband.AbilityMutants,
		PointLimit: 75,
		TotalCost:  15,
		Weirdos: []warband.Weirdo{
			{
				Name: "Grix",
				Type: warband.TypeLeader,
				Attributes: warband.Attributes{
					Speed:     2,
					Defense:   warband.Dice2d8,
					Firepower: warband.FirepowerNone,
					Prowess:   warband.Dice2d8,
					Willpower: warband.Dice2d6,
				},
				CloseCombatWeapons: []warband.Weapon{
					{ID: "claws-teeth", Name: "Claws & Teeth", Kind: warband.WeaponClose, BaseCost: 1, MaxActions: 2},
				},
				Equipment: []warband.Equipment{
					{ID: "medkit", Name: "Medkit", Kind: warband.EquipmentAction, BaseCost: 2},
				},
				PsychicPowers: []warband.PsychicPower{
					{ID: "mind-spike", Name: "Mind Spike", Kind: warband.PowerAttack, Cost: 3},
				},
				LeaderTrait: "Tactician",
				TotalCost:   15,
			},
		},
	}
}

func TestWarbandRepository_CreateAndGet(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewWarbandRepository(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, testWarband(uniqueName("create")))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())
	require.Len(t, created.Weirdos, 1)
	assert.NotEmpty(t, created.Weirdos[0].ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, warband.AbilityMutants, got.Ability)
	assert.Equal(t, 75, got.PointLimit)
	assert.Equal(t, 15, got.TotalCost)

	require.Len(t, got.Weirdos, 1)
	w := got.Weirdos[0]
	assert.Equal(t, "Grix", w.Name)
	assert.Equal(t, warband.TypeLeader, w.Type)
	assert.Equal(t, 2, w.Attributes.Speed)
	assert.Equal(t, warband.Dice2d8, w.Attributes.Defense)
	assert.Equal(t, warband.FirepowerNone, w.Attributes.Firepower)
	assert.Equal(t, "Tactician", w.LeaderTrait)

	// Loadout survives the JSONB round trip intact.
	require.Len(t, w.CloseCombatWeapons, 1)
	assert.Equal(t, "Claws & Teeth", w.CloseCombatWeapons[0].Name)
	assert.Equal(t, 1, w.CloseCombatWeapons[0].BaseCost)
	assert.Equal(t, 2, w.CloseCombatWeapons[0].MaxActions)
	require.Len(t, w.Equipment, 1)
	assert.Equal(t, warband.EquipmentAction, w.Equipment[0].Kind)
	require.Len(t, w.PsychicPowers, 1)
	assert.Equal(t, 3, w.PsychicPowers[0].Cost)
}

func TestWarbandRepository_GetByID_NotFound(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewWarbandRepository(pool)

	_, err := repo.GetByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, postgres.ErrWarbandNotFound)
}

func TestWarbandRepository_Create_DuplicateName(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewWarbandRepository(pool)
	ctx := context.Background()

	name := uniqueName("dup")
	_, err := repo.Create(ctx, testWarband(name))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testWarband(name))
	require.ErrorIs(t, err, postgres.ErrWarbandNameTaken)
}

func TestWarbandRepository_Create_DuplicateNameCaseInsensitive(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewWarbandRepository(pool)
	ctx := context.Background()

	name := uniqueName("case")
	_, err := repo.Create(ctx, testWarband(name))
	require.NoError(t, err)

	_, err = repo.Create(ctx, testWarband(strings.ToUpper(name)))
	require.ErrorIs(t, err, postgres.ErrWarbandNameTaken)
}

func TestWarbandRepository_List_OrderedByCreation(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewWarbandRepository(pool)
	ctx := context.Background()

	first, err := repo.Create(ctx, testWarband(uniqueName("list_a")))
	require.NoError(t, err)
	second, err := repo.Create(ctx, testWarband(uniqueName("list_b")))
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	require.Len(t, all[0].Weirdos, 1)
}

func TestWarbandRepository_Update_ReplacesRoster(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewWarbandRepository(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, testWarband(uniqueName("update")))
	require.NoError(t, err)

	created.PointLimit = 125
	created.Weirdos = []warband.Weirdo{
		{
			Name: "Vesper",
			Type: warband.TypeTrooper,
			Attributes: warband.Attributes{
				Speed:     1,
				Defense:   warband.Dice2d6,
				Firepower: warband.Firepower2d8,
				Prowess:   warband.Dice2d6,
				Willpower: warband.Dice2d6,
			},
			CloseCombatWeapons: []warband.Weapon{
				{ID: "knife", Name: "Knife", Kind: warband.WeaponClose, BaseCost: 1, MaxActions: 2},
			},
			RangedWeapons: []warband.Weapon{
				{ID: "pistol", Name: "Pistol", Kind: warband.WeaponRanged, BaseCost: 2, MaxActions: 2},
			},
			TotalCost: 11,
		},
		{
			Name: "Thorn",
			Type: warband.TypeTrooper,
			Attributes: warband.Attributes{
				Speed:     1,
				Defense:   warband.Dice2d6,
				Firepower: warband.FirepowerNone,
				Prowess:   warband.Dice2d6,
				Willpower: warband.Dice2d6,
			},
			CloseCombatWeapons: []warband.Weapon{
				{ID: "knife", Name: "Knife", Kind: warband.WeaponClose, BaseCost: 1, MaxActions: 2},
			},
			TotalCost: 7,
		},
	}

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 125, updated.PointLimit)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, got.Weirdos, 2)
	assert.Equal(t, "Vesper", got.Weirdos[0].Name)
	assert.Equal(t, "Thorn", got.Weirdos[1].Name)
	require.Len(t, got.Weirdos[0].RangedWeapons, 1)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestWarbandRepository_Update_NotFound(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewWarbandRepository(pool)

	wb := testWarband(uniqueName("ghost"))
	wb.ID = "00000000-0000-0000-0000-000000000000"
	_, err := repo.Update(context.Background(), wb)
	require.ErrorIs(t, err, postgres.ErrWarbandNotFound)
}

func TestWarbandRepository_Delete(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewWarbandRepository(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, testWarband(uniqueName("delete")))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, postgres.ErrWarbandNotFound)

	// Cascade removed the weirdos as well.
	var count int
	err = pool.QueryRow(ctx, `SELECT count(*) FROM weirdos WHERE warband_id = $1`, created.ID).Scan(&count)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestWarbandRepository_Delete_NotFound(t *testing.T) {
	pool := testutil.NewPool(t)
	repo := postgres.NewWarbandRepository(pool)

	err := repo.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
	require.ErrorIs(t, err, postgres.ErrWarbandNotFound)
}
