package repository

import (
	"context"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultFraudRepository struct {
	DB *gorm.DB
}

func NewDefaultFraudRepository(db *gorm.DB) *DefaultFraudRepository {
	return &DefaultFraudRepository{DB: db}
}

func (r *DefaultFraudRepository) CreateFlag(ctx context.Context, flag *domain.FraudFlag) error {
	flagModel := &models.FraudFlagModel{
		ID:        flag.ID,
		UserID:    flag.UserID,
		Reason:    flag.Reason,
		Severity:  flag.Severity,
		CreatedAt: flag.CreatedAt,
	}
	return r.DB.WithContext(ctx).Create(flagModel).Error
}

func (r *DefaultFraudRepository) ListRecentFlags(ctx context.Context, limit int) ([]*domain.FraudFlag, error) {
	var flagModels []models.FraudFlagModel
	err := r.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&flagModels).Error
	if err != nil {
		return nil, err
	}

	flags := make([]*domain.FraudFlag, len(flagModels))
	for i, flagModel := range flagModels {
		flags[i] = mappers.ToDomainFraudFlag(&flagModel)
	}
	return flags, nil
}
