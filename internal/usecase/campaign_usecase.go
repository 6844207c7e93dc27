package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/config"
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/kafka"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type CampaignUsecase interface {
	CreateCampaign(ctx context.Context, ownerID, adID string, budgetCoins int64) (*domain.Campaign, error)
	PauseCampaign(ctx context.Context, campaignID string) error
	ResumeCampaign(ctx context.Context, campaignID string) error
	IncreaseBudget(ctx context.Context, campaignID string, delta int64) error
	ListCampaignsByOwner(ctx context.Context, ownerID string) ([]*domain.Campaign, error)
}

type DefaultCampaignUsecase struct {
	CampaignRepo domain.CampaignRepository
	AdRepo       domain.AdRepository
	Publisher    EventPublisher
	Metrics      *metrics.RewardMetrics
	Rewards      config.Rewards
}

func NewDefaultCampaignUsecase(
	campaignRepo domain.CampaignRepository,
	adRepo domain.AdRepository,
	publisher EventPublisher,
	rewardMetrics *metrics.RewardMetrics,
	rewards config.Rewards) *DefaultCampaignUsecase {

	return &DefaultCampaignUsecase{
		CampaignRepo: campaignRepo,
		AdRepo:       adRepo,
		Publisher:    publisher,
		Metrics:      rewardMetrics,
		Rewards:      rewards,
	}
}

// CreateCampaign funds an ad from the owner's wallet. Budget defaults to
// the configured per-campaign amount when not supplied.
func (uc *DefaultCampaignUsecase) CreateCampaign(ctx context.Context, ownerID, adID string, budgetCoins int64) (*domain.Campaign, error) {
	if budgetCoins < 0 {
		return nil, domain.ErrInvalidPayload
	}
	if budgetCoins == 0 {
		budgetCoins = uc.Rewards.CoinsPerCampaign
	}

	if _, err := uc.AdRepo.GetAdByID(ctx, adID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, "ad not found")
		}
		return nil, err
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	campaign := &domain.Campaign{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		AdID:        adID,
		BudgetCoins: budgetCoins,
		SpendCoins:  0,
		Status:      domain.CampaignActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	entry := &domain.LedgerEntry{
		ID:        idGenerator(),
		UserID:    ownerID,
		Delta:     -budgetCoins,
		Reason:    domain.ReasonCampaignSpend,
		RefType:   "campaign",
		RefID:     campaign.ID,
		CreatedAt: now,
	}

	if err := uc.CampaignRepo.CreateCampaignFunded(ctx, campaign, entry); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.CampaignsCreatedTotal.WithLabelValues(ownerID).Inc()
	}

	if uc.Publisher != nil {
		event := kafka.CampaignCreatedEvent{
			CampaignID:  campaign.ID,
			OwnerID:     ownerID,
			AdID:        adID,
			BudgetCoins: budgetCoins,
		}
		if err := uc.Publisher.PublishCampaignCreated(event); err != nil {
			log.Printf("failed to publish campaign created event: %v", err)
		}
	}

	return campaign, nil
}

func (uc *DefaultCampaignUsecase) PauseCampaign(ctx context.Context, campaignID string) error {
	if _, err := uc.getCampaign(ctx, campaignID); err != nil {
		return err
	}
	return uc.CampaignRepo.SetCampaignStatus(ctx, campaignID, domain.CampaignPaused)
}

// ResumeCampaign reactivates a paused or completed campaign. An exhausted
// budget must be increased first; resume only re-validates spend < budget.
func (uc *DefaultCampaignUsecase) ResumeCampaign(ctx context.Context, campaignID string) error {
	campaign, err := uc.getCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.SpendCoins >= campaign.BudgetCoins {
		return domain.ErrCampaignBudgetExhausted
	}
	return uc.CampaignRepo.SetCampaignStatus(ctx, campaignID, domain.CampaignActive)
}

func (uc *DefaultCampaignUsecase) IncreaseBudget(ctx context.Context, campaignID string, delta int64) error {
	if delta <= 0 {
		return domain.ErrInvalidPayload
	}
	if _, err := uc.getCampaign(ctx, campaignID); err != nil {
		return err
	}
	return uc.CampaignRepo.IncreaseBudget(ctx, campaignID, delta)
}

func (uc *DefaultCampaignUsecase) ListCampaignsByOwner(ctx context.Context, ownerID string) ([]*domain.Campaign, error) {
	return uc.CampaignRepo.ListCampaignsByOwner(ctx, ownerID)
}

func (uc *DefaultCampaignUsecase) getCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaign, err := uc.CampaignRepo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, "campaign not found")
		}
		return nil, err
	}
	return campaign, nil
}
