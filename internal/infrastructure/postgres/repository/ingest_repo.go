package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultIngestRepository struct {
	DB *gorm.DB
}

func NewDefaultIngestRepository(db *gorm.DB) *DefaultIngestRepository {
	return &DefaultIngestRepository{DB: db}
}

// UpsertJob keeps at most one job per ad. Re-enqueueing resets the status
// to PENDING and clears the error while preserving the attempt counter.
func (r *DefaultIngestRepository) UpsertJob(ctx context.Context, adID string) (*domain.MediaIngestJob, error) {
	jobModel := &models.MediaIngestJobModel{
		ID:        uuid.New().String(),
		AdID:      adID,
		Status:    domain.IngestPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "ad_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":     domain.IngestPending,
				"last_error": "",
				"updated_at": time.Now(),
			}),
		}).
		Create(jobModel).Error
	if err != nil {
		return nil, err
	}

	return r.GetJobByAdID(ctx, adID)
}

func (r *DefaultIngestRepository) GetJobByAdID(ctx context.Context, adID string) (*domain.MediaIngestJob, error) {
	var jobModel models.MediaIngestJobModel
	if err := r.DB.WithContext(ctx).First(&jobModel, "ad_id = ?", adID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainIngestJob(&jobModel), nil
}

func (r *DefaultIngestRepository) FindClaimableJob(ctx context.Context, maxAttempts int) (*domain.MediaIngestJob, error) {
	var jobModel models.MediaIngestJobModel
	err := r.DB.WithContext(ctx).
		Where("status IN ? AND attempts < ?",
			[]domain.IngestStatus{domain.IngestPending, domain.IngestFailed}, maxAttempts).
		Order("created_at ASC").
		First(&jobModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainIngestJob(&jobModel), nil
}

// ClaimJob races against concurrent workers; the conditional update only
// succeeds while the row still holds its pre-claim status.
func (r *DefaultIngestRepository) ClaimJob(ctx context.Context, jobID string) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.MediaIngestJobModel{}).
		Where("id = ? AND status IN ?", jobID,
			[]domain.IngestStatus{domain.IngestPending, domain.IngestFailed}).
		Updates(map[string]interface{}{
			"status":     domain.IngestProcessing,
			"attempts":   gorm.Expr("attempts + 1"),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DefaultIngestRepository) MarkJobFailed(ctx context.Context, jobID, lastError string) error {
	return r.DB.WithContext(ctx).
		Model(&models.MediaIngestJobModel{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":     domain.IngestFailed,
			"last_error": lastError,
			"updated_at": time.Now(),
		}).Error
}

// MarkJobFailedTerminal pins attempts to the cap so the claim filter never
// picks the job up again.
func (r *DefaultIngestRepository) MarkJobFailedTerminal(ctx context.Context, jobID, lastError string, maxAttempts int) error {
	return r.DB.WithContext(ctx).
		Model(&models.MediaIngestJobModel{}).
		Where("id = ?", jobID).
		Updates(map[string]interface{}{
			"status":     domain.IngestFailed,
			"last_error": lastError,
			"attempts":   maxAttempts,
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultIngestRepository) CompleteJob(ctx context.Context, jobID, adID string, durationSeconds int64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.AdModel{}).
			Where("id = ?", adID).
			Updates(map[string]interface{}{
				"duration_seconds": durationSeconds,
				"updated_at":       time.Now(),
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.MediaIngestJobModel{}).
			Where("id = ?", jobID).
			Updates(map[string]interface{}{
				"status":     domain.IngestDone,
				"last_error": "",
				"updated_at": time.Now(),
			}).Error
	})
}
