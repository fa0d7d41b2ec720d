package postgres

import (
	"context"
	"database/sql"
	"errors"

	"effsample/domain/core"
	"effsample/models"
	"effsample/ports"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ReportRepositoryImpl implements ReportRepository for PostgreSQL
type ReportRepositoryImpl struct {
	db *sqlx.DB
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &ReportRepositoryImpl{db: db}
}

// Save inserts a completeness report
func (r *ReportRepositoryImpl) Save(ctx context.Context, report *models.CompletenessReport) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO completeness_reports (
			id, study_name, variable_names,
			n_effective, n_total, n_missing,
			proportion_complete, proportion_missing, missing_by_variable,
			has_estimate, successes, p_hat, standard_error, ci_lower, ci_upper, confidence_level,
			created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`, report.ID, report.StudyName, report.VariableNames,
		report.NEffective, report.NTotal, report.NMissing,
		report.ProportionComplete, report.ProportionMissing, report.MissingByVariable,
		report.HasEstimate, report.Successes, report.PHat, report.StandardError,
		report.CILower, report.CIUpper, report.ConfidenceLevel,
		report.CreatedAt)

	return err
}

// GetByID retrieves a report by its identifier
func (r *ReportRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.CompletenessReport, error) {
	var report models.CompletenessReport
	err := r.db.GetContext(ctx, &report, `
		SELECT id, study_name, variable_names,
		       n_effective, n_total, n_missing,
		       proportion_complete, proportion_missing, missing_by_variable,
		       has_estimate, successes, p_hat, standard_error, ci_lower, ci_upper, confidence_level,
		       created_at
		FROM completeness_reports
		WHERE id = $1
	`, id)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, core.NewNotFoundError("report", id.String())
	}
	if err != nil {
		return nil, err
	}

	return &report, nil
}

// ListRecent returns the most recent reports, newest first
func (r *ReportRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*models.CompletenessReport, error) {
	reports := []*models.CompletenessReport{}
	err := r.db.SelectContext(ctx, &reports, `
		SELECT id, study_name, variable_names,
		       n_effective, n_total, n_missing,
		       proportion_complete, proportion_missing, missing_by_variable,
		       has_estimate, successes, p_hat, standard_error, ci_lower, ci_upper, confidence_level,
		       created_at
		FROM completeness_reports
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}

	return reports, nil
}

// Delete removes a report
func (r *ReportRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM completeness_reports WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.NewNotFoundError("report", id.String())
	}
	return nil
}
