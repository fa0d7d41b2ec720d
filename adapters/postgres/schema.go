package postgres

import (
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS completeness_reports (
	id                  UUID PRIMARY KEY,
	study_name          TEXT NOT NULL,
	variable_names      TEXT[] NOT NULL,
	n_effective         INTEGER NOT NULL,
	n_total             INTEGER NOT NULL,
	n_missing           INTEGER NOT NULL,
	proportion_complete DOUBLE PRECISION NOT NULL,
	proportion_missing  DOUBLE PRECISION NOT NULL,
	missing_by_variable BIGINT[] NOT NULL,
	has_estimate        BOOLEAN NOT NULL DEFAULT FALSE,
	successes           INTEGER NOT NULL DEFAULT 0,
	p_hat               DOUBLE PRECISION NOT NULL DEFAULT 0,
	standard_error      DOUBLE PRECISION NOT NULL DEFAULT 0,
	ci_lower            DOUBLE PRECISION NOT NULL DEFAULT 0,
	ci_upper            DOUBLE PRECISION NOT NULL DEFAULT 0,
	confidence_level    DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_completeness_reports_created_at
	ON completeness_reports (created_at DESC);
`

// EnsureSchema creates the report table if it does not exist
func EnsureSchema(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
