package repositories

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/campusdesk/internal/app/models"
	"github.com/kerem/campusdesk/internal/pkg/logger"
)

// BatchRepository handles database operations for batch records. The payload
// is stored as JSONB so admins can evolve the batch shape without migrations.
type BatchRepository struct {
	db *pgxpool.Pool
}

// NewBatchRepository creates a new BatchRepository instance
func NewBatchRepository(db *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{db: db}
}

// CreateBatch inserts a batch record
func (r *BatchRepository) CreateBatch(ctx context.Context, batch *models.Batch) (*models.Batch, error) {
	payload, err := json.Marshal(batch.Data)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO batches (data)
		VALUES ($1)
		RETURNING id, created_at`

	err = r.db.QueryRow(ctx, query, payload).Scan(&batch.ID, &batch.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create batch")
		return nil, err
	}

	return batch, nil
}

// ListBatches retrieves all batch records ordered by creation time
func (r *BatchRepository) ListBatches(ctx context.Context) ([]*models.Batch, error) {
	query := `
		SELECT id, data, created_at
		FROM batches
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list batches")
		return nil, err
	}
	defer rows.Close()

	var batches []*models.Batch
	for rows.Next() {
		batch := &models.Batch{}
		var payload []byte
		if err := rows.Scan(&batch.ID, &payload, &batch.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &batch.Data); err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, rows.Err()
}
