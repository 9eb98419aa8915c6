package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/weirdos/internal/game/warband"
)

// ErrWarbandNotFound is returned when a warband lookup yields no results.
var ErrWarbandNotFound = errors.New("warband not found")

// ErrWarbandNameTaken is returned when creating a warband with a name that
// is already in use.
var ErrWarbandNameTaken = errors.New("warband name already taken")

// WarbandRepository provides warband persistence operations. Weirdos are
// stored in their own table, ordered by position; their weapon, equipment,
// and power lists are stored as JSONB.
type WarbandRepository struct {
	db *pgxpool.Pool
}

// NewWarbandRepository creates a WarbandRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewWarbandRepository(db *pgxpool.Pool) *WarbandRepository {
	return &WarbandRepository{db: db}
}

// Create inserts a new warband and its weirdos, generating IDs where absent.
//
// Precondition: wb.Name must be non-empty.
// Postcondition: Returns the stored warband with ID and timestamps set, or
// ErrWarbandNameTaken on a duplicate name.
func (r *WarbandRepository) Create(ctx context.Context, wb *warband.Warband) (*warband.Warband, error) {
	out := *wb
	if out.ID == "" {
		out.ID = uuid.New().String()
	}
	for i := range out.Weirdos {
		if out.Weirdos[i].ID == "" {
			out.Weirdos[i].ID = uuid.New().String()
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	err = tx.QueryRow(ctx, `
		INSERT INTO warbands (id, name, ability, point_limit, total_cost)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`,
		out.ID, out.Name, string(out.Ability), out.PointLimit, out.TotalCost,
	).Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrWarbandNameTaken
		}
		return nil, fmt.Errorf("inserting warband: %w", err)
	}

	if err := insertWeirdos(ctx, tx, out.ID, out.Weirdos); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing warband: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a warband and its weirdos by primary key.
//
// Precondition: id must be non-empty.
// Postcondition: Returns the warband or ErrWarbandNotFound.
func (r *WarbandRepository) GetByID(ctx context.Context, id string) (*warband.Warband, error) {
	var wb warband.Warband
	var ability string
	err := r.db.QueryRow(ctx, `
		SELECT id, name, ability, point_limit, total_cost, created_at, updated_at
		FROM warbands WHERE id = $1`,
		id,
	).Scan(&wb.ID, &wb.Name, &ability, &wb.PointLimit, &wb.TotalCost, &wb.CreatedAt, &wb.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWarbandNotFound
		}
		return nil, fmt.Errorf("selecting warband: %w", err)
	}
	wb.Ability = warband.Ability(ability)

	weirdos, err := r.weirdosFor(ctx, id)
	if err != nil {
		return nil, err
	}
	wb.Weirdos = weirdos
	return &wb, nil
}

// List returns all warbands with their weirdos, ordered by creation time.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *WarbandRepository) List(ctx context.Context) ([]*warband.Warband, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, ability, point_limit, total_cost, created_at, updated_at
		FROM warbands ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing warbands: %w", err)
	}
	defer rows.Close()

	warbands := make([]*warband.Warband, 0)
	for rows.Next() {
		var wb warband.Warband
		var ability string
		if err := rows.Scan(&wb.ID, &wb.Name, &ability, &wb.PointLimit, &wb.TotalCost,
			&wb.CreatedAt, &wb.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning warband row: %w", err)
		}
		wb.Ability = warband.Ability(ability)
		warbands = append(warbands, &wb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, wb := range warbands {
		weirdos, err := r.weirdosFor(ctx, wb.ID)
		if err != nil {
			return nil, err
		}
		wb.Weirdos = weirdos
	}
	return warbands, nil
}

// Update replaces a warband's fields and its entire weirdo roster.
//
// Precondition: wb.ID must reference an existing warband.
// Postcondition: Returns the stored warband with a fresh updated_at, or
// ErrWarbandNotFound.
func (r *WarbandRepository) Update(ctx context.Context, wb *warband.Warband) (*warband.Warband, error) {
	out := *wb
	for i := range out.Weirdos {
		if out.Weirdos[i].ID == "" {
			out.Weirdos[i].ID = uuid.New().String()
		}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	err = tx.QueryRow(ctx, `
		UPDATE warbands
		SET name = $2, ability = $3, point_limit = $4, total_cost = $5, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		out.ID, out.Name, string(out.Ability), out.PointLimit, out.TotalCost,
	).Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWarbandNotFound
		}
		if isDuplicateKeyError(err) {
			return nil, ErrWarbandNameTaken
		}
		return nil, fmt.Errorf("updating warband: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM weirdos WHERE warband_id = $1`, out.ID); err != nil {
		return nil, fmt.Errorf("clearing weirdos: %w", err)
	}
	if err := insertWeirdos(ctx, tx, out.ID, out.Weirdos); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing warband update: %w", err)
	}
	return &out, nil
}

// Delete removes a warband and, via cascade, its weirdos.
//
// Postcondition: Returns nil on success or ErrWarbandNotFound.
func (r *WarbandRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM warbands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting warband: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWarbandNotFound
	}
	return nil
}

func insertWeirdos(ctx context.Context, tx pgx.Tx, warbandID string, weirdos []warband.Weirdo) error {
	for i, w := range weirdos {
		ccw, rw, eq, pp, err := marshalLoadout(w)
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO weirdos
				(id, warband_id, position, name, type,
				 speed, defense, prowess, willpower, firepower,
				 leader_trait, notes, total_cost,
				 close_combat_weapons, ranged_weapons, equipment, psychic_powers)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
			w.ID, warbandID, i, w.Name, string(w.Type),
			w.Attributes.Speed, string(w.Attributes.Defense), string(w.Attributes.Prowess),
			string(w.Attributes.Willpower), string(w.Attributes.Firepower),
			w.LeaderTrait, w.Notes, w.TotalCost,
			ccw, rw, eq, pp,
		)
		if err != nil {
			return fmt.Errorf("inserting weirdo %q: %w", w.Name, err)
		}
	}
	return nil
}

func (r *WarbandRepository) weirdosFor(ctx context.Context, warbandID string) ([]warband.Weirdo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, type,
		       speed, defense, prowess, willpower, firepower,
		       leader_trait, notes, total_cost,
		       close_combat_weapons, ranged_weapons, equipment, psychic_powers
		FROM weirdos WHERE warband_id = $1 ORDER BY position ASC`,
		warbandID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing weirdos: %w", err)
	}
	defer rows.Close()

	weirdos := make([]warband.Weirdo, 0)
	for rows.Next() {
		var w warband.Weirdo
		var typ, defense, prowess, willpower, firepower string
		var ccw, rw, eq, pp []byte
		if err := rows.Scan(&w.ID, &w.Name, &typ,
			&w.Attributes.Speed, &defense, &prowess, &willpower, &firepower,
			&w.LeaderTrait, &w.Notes, &w.TotalCost,
			&ccw, &rw, &eq, &pp); err != nil {
			return nil, fmt.Errorf("scanning weirdo row: %w", err)
		}
		w.Type = warband.WeirdoType(typ)
		w.Attributes.Defense = warband.DiceLevel(defense)
		w.Attributes.Prowess = warband.DiceLevel(prowess)
		w.Attributes.Willpower = warband.DiceLevel(willpower)
		w.Attributes.Firepower = warband.FirepowerLevel(firepower)
		if err := unmarshalLoadout(&w, ccw, rw, eq, pp); err != nil {
			return nil, err
		}
		weirdos = append(weirdos, w)
	}
	return weirdos, rows.Err()
}

func marshalLoadout(w warband.Weirdo) (ccw, rw, eq, pp []byte, err error) {
	if ccw, err = json.Marshal(w.CloseCombatWeapons); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshalling close combat weapons: %w", err)
	}
	if rw, err = json.Marshal(w.RangedWeapons); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshalling ranged weapons: %w", err)
	}
	if eq, err = json.Marshal(w.Equipment); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshalling equipment: %w", err)
	}
	if pp, err = json.Marshal(w.PsychicPowers); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("marshalling psychic powers: %w", err)
	}
	return ccw, rw, eq, pp, nil
}

func unmarshalLoadout(w *warband.Weirdo, ccw, rw, eq, pp []byte) error {
	if err := json.Unmarshal(ccw, &w.CloseCombatWeapons); err != nil {
		return fmt.Errorf("unmarshalling close combat weapons: %w", err)
	}
	if err := json.Unmarshal(rw, &w.RangedWeapons); err != nil {
		return fmt.Errorf("unmarshalling ranged weapons: %w", err)
	}
	if err := json.Unmarshal(eq, &w.Equipment); err != nil {
		return fmt.Errorf("unmarshalling equipment: %w", err)
	}
	if err := json.Unmarshal(pp, &w.PsychicPowers); err != nil {
		return fmt.Errorf("unmarshalling psychic powers: %w", err)
	}
	return nil
}
