package usecase

import (
	"context"
	"errors"
	"log"
	"log/slog"
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

type StartViewInput struct {
	AdID        string
	ViewerID    string
	Fingerprint string
	IPAddress   string
	UserAgent   string
}

type StartViewOutput struct {
	ViewID    string
	StartedAt time.Time
}

type CompleteViewInput struct {
	ViewID          string
	AdID            string
	ViewerID        string
	WatchedSeconds  int64
	ClientCompleted bool
}

type CompleteViewOutput struct {
	RewardCoins int64
}

type ViewUsecase interface {
	StartView(ctx context.Context, input *StartViewInput) (*StartViewOutput, error)
	CompleteView(ctx context.Context, input *CompleteViewInput) (*CompleteViewOutput, error)
}

type DefaultViewUsecase struct {
	ViewRepo     domain.ViewRepository
	AdRepo       domain.AdRepository
	CampaignRepo domain.CampaignRepository
	FraudUsecase FraudUsecase
	Publisher    EventPublisher
	Metrics      *metrics.RewardMetrics
	Rewards      config.Rewards
}

func NewDefaultViewUsecase(
	viewRepo domain.ViewRepository,
	adRepo domain.AdRepository,
	campaignRepo domain.CampaignRepository,
	fraudUsecase FraudUsecase,
	publisher EventPublisher,
	rewardMetrics *metrics.RewardMetrics,
	rewards config.Rewards) *DefaultViewUsecase {

	return &DefaultViewUsecase{
		ViewRepo:     viewRepo,
		AdRepo:       adRepo,
		CampaignRepo: campaignRepo,
		FraudUsecase: fraudUsecase,
		Publisher:    publisher,
		Metrics:      rewardMetrics,
		Rewards:      rewards,
	}
}

// StartView records a fresh AdView. Concurrent or repeated starts are
// allowed; an abandoned view is simply never completed.
func (uc *DefaultViewUsecase) StartView(ctx context.Context, input *StartViewInput) (*StartViewOutput, error) {
	if _, err := uc.AdRepo.GetAdByID(ctx, input.AdID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, "ad not found")
		}
		return nil, err
	}

	view := &domain.AdView{
		ID:          uuid.New().String(),
		AdID:        input.AdID,
		ViewerID:    input.ViewerID,
		StartedAt:   time.Now(),
		IPAddress:   input.IPAddress,
		Fingerprint: input.Fingerprint,
		UserAgent:   input.UserAgent,
	}
	if err := uc.ViewRepo.CreateView(ctx, view); err != nil {
		return nil, err
	}

	return &StartViewOutput{ViewID: view.ID, StartedAt: view.StartedAt}, nil
}

// CompleteView validates one watch session and, on success, runs the atomic
// reward unit. Every rejection is a named, client-correctable error; none
// of them leaves partial state behind.
func (uc *DefaultViewUsecase) CompleteView(ctx context.Context, input *CompleteViewInput) (*CompleteViewOutput, error) {
	if !input.ClientCompleted {
		return nil, uc.reject(domain.ErrInvalidPayload)
	}

	view, err := uc.ViewRepo.GetView(ctx, input.ViewID, input.AdID, input.ViewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, uc.reject(domain.ErrViewNotFound)
		}
		return nil, err
	}
	if view.Valid {
		return nil, uc.reject(domain.ErrAlreadyCompleted)
	}

	now := time.Now()
	elapsedSeconds := int64(now.Sub(view.StartedAt).Seconds())
	if elapsedSeconds < uc.Rewards.MinWatchSeconds {
		return nil, uc.reject(domain.ErrWatchTimeTooShort)
	}

	ad, err := uc.AdRepo.GetAdByID(ctx, input.AdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, "ad not found")
		}
		return nil, err
	}
	// Banner ads only need the minimum watch time; videos with a known
	// duration must be watched end to end by both clocks
	if ad.Type == domain.AdTypeVideo && ad.DurationSeconds > 0 {
		if input.WatchedSeconds < ad.DurationSeconds || elapsedSeconds < ad.DurationSeconds {
			return nil, uc.reject(domain.ErrVideoNotFullyWatched)
		}
	}

	day := now.UTC().Format("2006-01-02")
	earnedToday, err := uc.ViewRepo.GetDailyEarning(ctx, input.ViewerID, day)
	if err != nil {
		return nil, err
	}
	if earnedToday+uc.Rewards.CoinsPerWatch > uc.Rewards.MaxDailyCoins {
		return nil, uc.reject(domain.ErrDailyCapReached)
	}

	campaign, err := uc.CampaignRepo.GetActiveCampaignForAd(ctx, input.AdID)
	if err != nil {
		return nil, err
	}
	if campaign == nil || campaign.SpendCoins >= campaign.BudgetCoins {
		return nil, uc.reject(domain.ErrCampaignInactive)
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	completedAt := now
	view.CompletedAt = &completedAt
	view.ClientWatchedSeconds = input.WatchedSeconds
	view.ClientCompleted = true

	commit := &domain.RewardCommit{
		View:       view,
		CampaignID: campaign.ID,
		Entry: &domain.LedgerEntry{
			ID:        idGenerator(),
			UserID:    input.ViewerID,
			Delta:     uc.Rewards.CoinsPerWatch,
			Reason:    domain.ReasonWatchReward,
			RefType:   "ad",
			RefID:     input.AdID,
			CreatedAt: now,
		},
		Day:      day,
		DailyCap: uc.Rewards.MaxDailyCoins,
	}

	// The pre-checks above are fast-fail only; the commit re-validates the
	// idempotency flag, the budget and the daily cap under the transaction
	if err := uc.ViewRepo.CommitReward(ctx, commit); err != nil {
		if errors.Is(err, domain.ErrAlreadyCompleted) ||
			errors.Is(err, domain.ErrCampaignInactive) ||
			errors.Is(err, domain.ErrDailyCapReached) {
			return nil, uc.reject(err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, "wallet not found")
		}
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RewardsGrantedTotal.WithLabelValues(string(ad.Type)).Inc()
		uc.Metrics.RewardCoinsTotal.WithLabelValues(string(ad.Type)).Add(float64(uc.Rewards.CoinsPerWatch))
		uc.Metrics.CampaignSpendCoinsTotal.WithLabelValues(campaign.ID).Add(float64(uc.Rewards.CoinsPerWatch))
		if campaign.SpendCoins+uc.Rewards.CoinsPerWatch >= campaign.BudgetCoins {
			uc.Metrics.CampaignsCompletedTotal.Inc()
		}
	}

	if uc.Publisher != nil {
		event := kafka.ViewCompletedEvent{
			ViewID:      view.ID,
			AdID:        input.AdID,
			ViewerID:    input.ViewerID,
			CampaignID:  campaign.ID,
			RewardCoins: uc.Rewards.CoinsPerWatch,
			CompletedAt: completedAt,
		}
		if err := uc.Publisher.PublishViewCompleted(event); err != nil {
			log.Printf("failed to publish view completed event: %v", err)
		}
	}

	// Advisory only: fraud flags never undo the reward
	if uc.FraudUsecase != nil {
		if err := uc.FraudUsecase.CheckCompletedView(ctx, view); err != nil {
			slog.Error("fraud check failed", "view_id", view.ID, "error", err.Error())
		}
	}

	return &CompleteViewOutput{RewardCoins: uc.Rewards.CoinsPerWatch}, nil
}

func (uc *DefaultViewUsecase) reject(reason error) error {
	if uc.Metrics != nil {
		uc.Metrics.RewardRejectionsTotal.WithLabelValues(reason.Error()).Inc()
	}
	return reason
}
