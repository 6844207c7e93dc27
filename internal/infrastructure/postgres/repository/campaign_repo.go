package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCampaignRepository struct {
	DB *gorm.DB
}

func NewDefaultCampaignRepository(db *gorm.DB) *DefaultCampaignRepository {
	return &DefaultCampaignRepository{DB: db}
}

func (r *DefaultCampaignRepository) GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	var campaignModel models.CampaignModel
	if err := r.DB.WithContext(ctx).First(&campaignModel, "id = ?", campaignID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainCampaign(&campaignModel), nil
}

func (r *DefaultCampaignRepository) GetActiveCampaignForAd(ctx context.Context, adID string) (*domain.Campaign, error) {
	var campaignModel models.CampaignModel
	err := r.DB.WithContext(ctx).
		Where("ad_id = ? AND status = ?", adID, domain.CampaignActive).
		Order("created_at ASC").
		First(&campaignModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainCampaign(&campaignModel), nil
}

func (r *DefaultCampaignRepository) ListEligibleAdIDs(ctx context.Context) ([]string, error) {
	var adIDs []string
	err := r.DB.WithContext(ctx).
		Model(&models.CampaignModel{}).
		Where("status = ? AND spend_coins < budget_coins", domain.CampaignActive).
		Pluck("ad_id", &adIDs).Error
	if err != nil {
		return nil, err
	}
	return adIDs, nil
}

func (r *DefaultCampaignRepository) ListCampaignsByOwner(ctx context.Context, ownerID string) ([]*domain.Campaign, error) {
	var campaignModels []models.CampaignModel
	err := r.DB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&campaignModels).Error
	if err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, len(campaignModels))
	for i, campaignModel := range campaignModels {
		campaigns[i] = mappers.ToDomainCampaign(&campaignModel)
	}
	return campaigns, nil
}

// CreateCampaignFunded funds a campaign from the owner's wallet. The
// conditional decrement guarantees insufficient balance fails before any
// mutation is visible.
func (r *DefaultCampaignRepository) CreateCampaignFunded(ctx context.Context, campaign *domain.Campaign, entry *domain.LedgerEntry) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WalletModel{}).
			Where("user_id = ? AND balance >= ?", campaign.OwnerID, campaign.BudgetCoins).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance - ?", campaign.BudgetCoins),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInsufficientBalance
		}

		if err := tx.Create(mappers.ToGORMCampaign(campaign)).Error; err != nil {
			return err
		}

		return tx.Create(mappers.ToGORMLedgerEntry(entry)).Error
	})
}

func (r *DefaultCampaignRepository) SetCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) error {
	return r.DB.WithContext(ctx).
		Model(&models.CampaignModel{}).
		Where("id = ?", campaignID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *DefaultCampaignRepository) IncreaseBudget(ctx context.Context, campaignID string, delta int64) error {
	return r.DB.WithContext(ctx).
		Model(&models.CampaignModel{}).
		Where("id = ?", campaignID).
		Updates(map[string]interface{}{
			"budget_coins": gorm.Expr("budget_coins + ?", delta),
			"updated_at":   time.Now(),
		}).Error
}
