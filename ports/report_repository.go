package ports

import (
	"context"

	"effsample/models"

	"github.com/google/uuid"
)

// ReportRepository persists completeness reports
type ReportRepository interface {
	Save(ctx context.Context, report *models.CompletenessReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.CompletenessReport, error)
	ListRecent(ctx context.Context, limit int) ([]*models.CompletenessReport, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
