package sqlstore

import (
	"context"
	"fmt"

	"kantine-klima/internal/storage"
)

// ListWasteTips returns the tips of one category, or all when category is empty.
func (s *Storage) ListWasteTips(ctx context.Context, category string) ([]storage.WasteTip, error) {
	const op = "storage.sqlstore.ListWasteTips"

	query := `SELECT id, tip_category, tip_title, tip_description, potential_reduction_percent,
		difficulty, implementation_time, cost_impact FROM waste_reduction_tips`
	var args []any
	if category != "" {
		query += ` WHERE tip_category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY potential_reduction_percent DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query tips: %w", op, err)
	}
	defer rows.Close()

	tips := make([]storage.WasteTip, 0)
	for rows.Next() {
		var t storage.WasteTip
		if err := rows.Scan(&t.ID, &t.Category, &t.Title, &t.Description, &t.PotentialReductionPercent,
			&t.Difficulty, &t.ImplementationTime, &t.CostImpact); err != nil {
			return nil, fmt.Errorf("%s: failed to scan tip: %w", op, err)
		}
		tips = append(tips, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return tips, nil
}

// ListPlantAlternatives returns the alternatives for one meat product, or
// all when meat is empty. Best CO2 saving first.
func (s *Storage) ListPlantAlternatives(ctx context.Context, meat string) ([]storage.PlantAlternative, error) {
	const op = "storage.sqlstore.ListPlantAlternatives"

	query := `SELECT id, meat_product, plant_alternative, alternative_category, co2_saving_percent,
		protein_per_100g, taste_similarity, cooking_method, cost_comparison FROM plant_alternatives`
	var args []any
	if meat != "" {
		query += ` WHERE meat_product = ?`
		args = append(args, meat)
	}
	query += ` ORDER BY co2_saving_percent DESC, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query alternatives: %w", op, err)
	}
	defer rows.Close()

	alts := make([]storage.PlantAlternative, 0)
	for rows.Next() {
		var a storage.PlantAlternative
		if err := rows.Scan(&a.ID, &a.MeatProduct, &a.Alternative, &a.Category, &a.Co2SavingPercent,
			&a.ProteinPer100g, &a.TasteSimilarity, &a.CookingMethod, &a.CostComparison); err != nil {
			return nil, fmt.Errorf("%s: failed to scan alternative: %w", op, err)
		}
		alts = append(alts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows iteration: %w", op, err)
	}

	return alts, nil
}
