package repository

import (
	"context"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultAdRepository struct {
	DB *gorm.DB
}

func NewDefaultAdRepository(db *gorm.DB) *DefaultAdRepository {
	return &DefaultAdRepository{DB: db}
}

func (r *DefaultAdRepository) CreateAd(ctx context.Context, ad *domain.Ad) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMAd(ad)).Error
}

func (r *DefaultAdRepository) GetAdByID(ctx context.Context, adID string) (*domain.Ad, error) {
	var adModel models.AdModel
	if err := r.DB.WithContext(ctx).First(&adModel, "id = ?", adID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainAd(&adModel), nil
}

func (r *DefaultAdRepository) SetAdStatus(ctx context.Context, adID string, status domain.AdStatus) error {
	return r.DB.WithContext(ctx).
		Model(&models.AdModel{}).
		Where("id = ?", adID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultAdRepository) SetAdDuration(ctx context.Context, adID string, seconds int64) error {
	return r.DB.WithContext(ctx).
		Model(&models.AdModel{}).
		Where("id = ?", adID).
		Updates(map[string]interface{}{
			"duration_seconds": seconds,
			"updated_at":       time.Now(),
		}).Error
}

func (r *DefaultAdRepository) ListServableAds(ctx context.Context, includeIDs, excludeIDs []string, limit int) ([]*domain.Ad, error) {
	if len(includeIDs) == 0 {
		return []*domain.Ad{}, nil
	}

	query := r.DB.WithContext(ctx).
		Where("status = ?", domain.AdStatusApproved).
		Where("id IN ?", includeIDs)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var adModels []models.AdModel
	if err := query.Limit(limit).Find(&adModels).Error; err != nil {
		return nil, err
	}

	ads := make([]*domain.Ad, len(adModels))
	for i, adModel := range adModels {
		ads[i] = mappers.ToDomainAd(&adModel)
	}
	return ads, nil
}
