package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// Column types are chosen to be valid in both Postgres and SQLite; SQLite
// resolves them by affinity.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS individual_forms (
		claim_id       TEXT PRIMARY KEY,
		claimant_name  TEXT NOT NULL DEFAULT '',
		address        TEXT,
		village        TEXT,
		land_no        TEXT,
		gram_panchayat TEXT,
		taluka         TEXT,
		district       TEXT,
		state          TEXT,
		area           DOUBLE PRECISION,
		income         DOUBLE PRECISION,
		forest_near    TEXT,
		aadhar_number  TEXT,
		status         TEXT NOT NULL DEFAULT 'Unknown',
		created_at     TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS village_form (
		claim_id         TEXT PRIMARY KEY,
		claimant_name    TEXT NOT NULL DEFAULT '',
		village          TEXT,
		gram_panchayat   TEXT,
		taluka           TEXT,
		district         TEXT,
		state            TEXT,
		village_no       TEXT,
		resources_rights TEXT,
		status           TEXT NOT NULL DEFAULT 'Unknown',
		created_at       TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS forest_form (
		claim_id       TEXT PRIMARY KEY,
		claimant_name  TEXT NOT NULL DEFAULT '',
		village        TEXT,
		gram_panchayat TEXT,
		taluka         TEXT,
		forest         TEXT,
		district       TEXT,
		state          TEXT,
		forest_no      TEXT,
		resource       TEXT,
		status         TEXT NOT NULL DEFAULT 'Unknown',
		created_at     TIMESTAMP NOT NULL
	)`,
}

// Migrate creates the claim tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
