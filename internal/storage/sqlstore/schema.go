package sqlstore

import (
	"context"
	"fmt"
)

// One statement per Exec, the mysql driver rejects multi statements by default.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS canteens (
		id BIGINT NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location VARCHAR(255) NOT NULL DEFAULT '',
		address VARCHAR(255) NOT NULL DEFAULT '',
		co2_per_kg DOUBLE NOT NULL DEFAULT 0,
		green_percent DOUBLE NOT NULL DEFAULT 0,
		meat_percent DOUBLE NOT NULL DEFAULT 0,
		organic_percent DOUBLE NOT NULL DEFAULT 0,
		food_waste_percent DOUBLE NOT NULL DEFAULT 0,
		local_sourced DOUBLE NOT NULL DEFAULT 0,
		employees INT NOT NULL DEFAULT 0,
		meals_per_day INT NOT NULL DEFAULT 0,
		operating_days INT NOT NULL DEFAULT 240
	)`,
	`CREATE TABLE IF NOT EXISTS waste_reduction_tips (
		id BIGINT NOT NULL PRIMARY KEY,
		tip_category VARCHAR(64) NOT NULL,
		tip_title VARCHAR(255) NOT NULL,
		tip_description TEXT NOT NULL,
		potential_reduction_percent DOUBLE NOT NULL DEFAULT 0,
		difficulty VARCHAR(32) NOT NULL DEFAULT '',
		implementation_time VARCHAR(64) NOT NULL DEFAULT '',
		cost_impact VARCHAR(64) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS plant_alternatives (
		id BIGINT NOT NULL PRIMARY KEY,
		meat_product VARCHAR(64) NOT NULL,
		plant_alternative VARCHAR(128) NOT NULL,
		alternative_category VARCHAR(64) NOT NULL DEFAULT '',
		co2_saving_percent DOUBLE NOT NULL DEFAULT 0,
		protein_per_100g DOUBLE NOT NULL DEFAULT 0,
		taste_similarity VARCHAR(32) NOT NULL DEFAULT '',
		cooking_method VARCHAR(255) NOT NULL DEFAULT '',
		cost_comparison VARCHAR(64) NOT NULL DEFAULT ''
	)`,
}

func (s *Storage) migrate(ctx context.Context) error {
	const op = "storage.sqlstore.migrate"

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: failed to create schema: %w", op, err)
		}
	}

	return nil
}
