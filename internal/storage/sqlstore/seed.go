package sqlstore

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"kantine-klima/internal/storage"
)

//go:embed seed.yaml
var seedYAML []byte

type seedData struct {
	Canteens          []storage.Canteen          `yaml:"canteens"`
	WasteTips         []storage.WasteTip         `yaml:"waste_tips"`
	PlantAlternatives []storage.PlantAlternative `yaml:"plant_alternatives"`
}

func loadSeed() (*seedData, error) {
	var data seedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return &data, nil
}

// Seed fills the tables from the built-in data set. Tables that already
// hold rows are left untouched.
func (s *Storage) Seed(ctx context.Context) error {
	const op = "storage.sqlstore.Seed"

	data, err := loadSeed()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.seed(ctx, data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// seed inserts every table under its own savepoint. A key conflict rolls
// back only that table and the rest still gets seeded.
func (s *Storage) seed(ctx context.Context, data *seedData) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	steps := []struct {
		table string
		rows  [][]any
		stmt  string
	}{
		{
			table: "canteens",
			rows:  canteenRows(data.Canteens),
			stmt: `INSERT INTO canteens (id, name, location, address, co2_per_kg, green_percent, meat_percent,
				organic_percent, food_waste_percent, local_sourced, employees, meals_per_day, operating_days)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		},
		{
			table: "waste_reduction_tips",
			rows:  tipRows(data.WasteTips),
			stmt: `INSERT INTO waste_reduction_tips (id, tip_category, tip_title, tip_description,
				potential_reduction_percent, difficulty, implementation_time, cost_impact)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		},
		{
			table: "plant_alternatives",
			rows:  alternativeRows(data.PlantAlternatives),
			stmt: `INSERT INTO plant_alternatives (id, meat_product, plant_alternative, alternative_category,
				co2_saving_percent, protein_per_100g, taste_similarity, cooking_method, cost_comparison)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		},
	}

	for _, step := range steps {
		var count int
		// имя таблицы из константы выше, не из ввода
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+step.table).Scan(&count); err != nil {
			return fmt.Errorf("failed to count %s: %w", step.table, err)
		}
		if count > 0 {
			s.log.Debug("table already seeded", slog.String("table", step.table), slog.Int("rows", count))
			continue
		}

		savepoint := "seed_" + step.table
		if _, err := tx.ExecContext(ctx, "SAVEPOINT "+savepoint); err != nil {
			return fmt.Errorf("failed to create savepoint for %s: %w", step.table, err)
		}

		inserted, err := insertRows(ctx, tx, step.stmt, step.rows)
		switch {
		case err == nil:
			if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+savepoint); err != nil {
				return fmt.Errorf("failed to release savepoint for %s: %w", step.table, err)
			}
			s.log.Info("table seeded", slog.String("table", step.table), slog.Int("rows", inserted))
		case isDuplicate(err):
			// другой инстанс успел засеять эту таблицу
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+savepoint); rbErr != nil {
				return fmt.Errorf("failed to roll back %s: %w", step.table, rbErr)
			}
			s.log.Warn("seed conflict, table skipped",
				slog.String("table", step.table),
				slog.String("error", err.Error()),
			)
		default:
			return fmt.Errorf("failed to insert into %s: %w", step.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

func insertRows(ctx context.Context, tx *sql.Tx, query string, rows [][]any) (int, error) {
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return i, err
		}
	}

	return len(rows), nil
}

func canteenRows(cs []storage.Canteen) [][]any {
	rows := make([][]any, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []any{c.ID, c.Name, c.Location, c.Address, c.Co2PerKg, c.GreenPercent, c.MeatPercent,
			c.OrganicPercent, c.FoodWastePercent, c.LocalSourcedPercent, c.Employees, c.MealsPerDay, c.OperatingDays})
	}
	return rows
}

func tipRows(ts []storage.WasteTip) [][]any {
	rows := make([][]any, 0, len(ts))
	for _, t := range ts {
		rows = append(rows, []any{t.ID, t.Category, t.Title, t.Description,
			t.PotentialReductionPercent, t.Difficulty, t.ImplementationTime, t.CostImpact})
	}
	return rows
}

func alternativeRows(as []storage.PlantAlternative) [][]any {
	rows := make([][]any, 0, len(as))
	for _, a := range as {
		rows = append(rows, []any{a.ID, a.MeatProduct, a.Alternative, a.Category,
			a.Co2SavingPercent, a.ProteinPer100g, a.TasteSimilarity, a.CookingMethod, a.CostComparison})
	}
	return rows
}
