package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kantine-klima/internal/storage"
)

const canteenColumns = `id, name, location, address, co2_per_kg, green_percent, meat_percent,
	organic_percent, food_waste_percent, local_sourced, employees, meals_per_day, operating_days`

func (s *Storage) ListCanteens(ctx context.Context) ([]storage.CanteenSummary, error) {
	const op = "storage.sqlstore.ListCanteens"

	rows, err := s.db.QueryContext(ctx, `SELECT id, name, location FROM canteens ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query canteens: %w", op, err)
	}
	defer rows.Close()

	canteens := make([]storage.CanteenSummary, 0)
	for rows.Next() {
		var c storage.CanteenSummary
		if err := rows.Scan(&c.ID, &c.Name, &c.Location); err != nil {
			return nil, fmt.Errorf("%s: failed to scan canteen: %w", op, err)
		}
		canteens = append(canteens, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return canteens, nil
}

func (s *Storage) GetCanteenByID(ctx context.Context, id int64) (*storage.Canteen, error) {
	const op = "storage.sqlstore.GetCanteenByID"

	row := s.db.QueryRowContext(ctx, `SELECT `+canteenColumns+` FROM canteens WHERE id = ?`, id)

	c, err := scanCanteen(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: id %d: %w", op, id, storage.ErrCanteenNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to scan canteen: %w", op, err)
	}

	return c, nil
}

func (s *Storage) GetCanteenWaste(ctx context.Context, id int64) (*storage.CanteenWaste, error) {
	const op = "storage.sqlstore.GetCanteenWaste"

	w := &storage.CanteenWaste{CanteenID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT food_waste_percent, meals_per_day FROM canteens WHERE id = ?`, id,
	).Scan(&w.FoodWastePercent, &w.MealsPerDay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: id %d: %w", op, id, storage.ErrCanteenNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to scan waste: %w", op, err)
	}

	return w, nil
}

// UpdateCanteen applies the set fields and returns the stored row.
func (s *Storage) UpdateCanteen(ctx context.Context, id int64, upd storage.CanteenUpdate) (*storage.Canteen, error) {
	const op = "storage.sqlstore.UpdateCanteen"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to begin tx: %w", op, err)
	}
	defer tx.Rollback()

	c, err := scanCanteen(tx.QueryRowContext(ctx, `SELECT `+canteenColumns+` FROM canteens WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: id %d: %w", op, id, storage.ErrCanteenNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to load canteen: %w", op, err)
	}

	upd.Apply(c)

	_, err = tx.ExecContext(ctx, `
		UPDATE canteens
		SET co2_per_kg = ?, green_percent = ?, meat_percent = ?, organic_percent = ?,
			food_waste_percent = ?, local_sourced = ?, employees = ?, meals_per_day = ?, operating_days = ?
		WHERE id = ?`,
		c.Co2PerKg, c.GreenPercent, c.MeatPercent, c.OrganicPercent,
		c.FoodWastePercent, c.LocalSourcedPercent, c.Employees, c.MealsPerDay, c.OperatingDays,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update canteen: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: failed to commit: %w", op, err)
	}

	return c, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCanteen(row scanner) (*storage.Canteen, error) {
	var c storage.Canteen
	err := row.Scan(&c.ID, &c.Name, &c.Location, &c.Address, &c.Co2PerKg, &c.GreenPercent, &c.MeatPercent,
		&c.OrganicPercent, &c.FoodWastePercent, &c.LocalSourcedPercent, &c.Employees, &c.MealsPerDay, &c.OperatingDays)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
