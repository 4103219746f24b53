package services

import (
	"context"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/pkg/apperrors"
)

// BatchStore abstracts batch record persistence
type BatchStore interface {
	CreateBatch(ctx context.Context, batch *models.Batch) (*models.Batch, error)
	ListBatches(ctx context.Context) ([]*models.Batch, error)
}

// BatchService handles admin-managed batch records
type BatchService struct {
	batches BatchStore
}

// NewBatchService creates a new BatchService instance
func NewBatchService(batches BatchStore) *BatchService {
	return &BatchService{batches: batches}
}

// CreateBatch stores a free-form batch record. Empty payloads are rejected.
func (s *BatchService) CreateBatch(ctx context.Context, data map[string]interface{}) (*models.Batch, error) {
	if len(data) == 0 {
		return nil, apperrors.NewBadRequestError("batch payload must not be empty")
	}

	return s.batches.CreateBatch(ctx, &models.Batch{Data: data})
}

// ListBatches returns all batch records
func (s *BatchService) ListBatches(ctx context.Context) ([]*models.Batch, error) {
	return s.batches.ListBatches(ctx)
}
