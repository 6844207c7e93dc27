package mappers

import (
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
)

func ToGORMAd(ad *domain.Ad) *models.AdModel {
	return &models.AdModel{
		ID:              ad.ID,
		OwnerID:         ad.OwnerID,
		Type:            ad.Type,
		Title:           ad.Title,
		MediaKey:        ad.MediaKey,
		DurationSeconds: ad.DurationSeconds,
		Status:          ad.Status,
		CreatedAt:       ad.CreatedAt,
		UpdatedAt:       ad.UpdatedAt,
	}
}

func ToDomainAd(model *models.AdModel) *domain.Ad {
	return &domain.Ad{
		ID:              model.ID,
		OwnerID:         model.OwnerID,
		Type:            model.Type,
		Title:           model.Title,
		MediaKey:        model.MediaKey,
		DurationSeconds: model.DurationSeconds,
		Status:          model.Status,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func ToGORMCampaign(campaign *domain.Campaign) *models.CampaignModel {
	return &models.CampaignModel{
		ID:          campaign.ID,
		OwnerID:     campaign.OwnerID,
		AdID:        campaign.AdID,
		BudgetCoins: campaign.BudgetCoins,
		SpendCoins:  campaign.SpendCoins,
		Status:      campaign.Status,
		CreatedAt:   campaign.CreatedAt,
		UpdatedAt:   campaign.UpdatedAt,
	}
}

func ToDomainCampaign(model *models.CampaignModel) *domain.Campaign {
	return &domain.Campaign{
		ID:          model.ID,
		OwnerID:     model.OwnerID,
		AdID:        model.AdID,
		BudgetCoins: model.BudgetCoins,
		SpendCoins:  model.SpendCoins,
		Status:      model.Status,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
