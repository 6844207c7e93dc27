package usecase

import (
	"context"
	"math/rand"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/metrics"
)

// candidatePoolSize bounds the sample the random pick draws from.
const candidatePoolSize = 10

type CandidateAd struct {
	Ad       *domain.Ad
	MediaURL string
}

type QueueUsecase interface {
	// SelectCandidateAd picks one servable ad for the viewer, or returns
	// (nil, nil) when the pool is empty. An empty pool is a normal
	// outcome, not an error.
	SelectCandidateAd(ctx context.Context, viewerID string) (*CandidateAd, error)
}

type DefaultQueueUsecase struct {
	ViewRepo     domain.ViewRepository
	AdRepo       domain.AdRepository
	CampaignRepo domain.CampaignRepository
	Resolver     domain.MediaURLResolver
	Metrics      *metrics.RewardMetrics
}

func NewDefaultQueueUsecase(
	viewRepo domain.ViewRepository,
	adRepo domain.AdRepository,
	campaignRepo domain.CampaignRepository,
	resolver domain.MediaURLResolver,
	rewardMetrics *metrics.RewardMetrics) *DefaultQueueUsecase {

	return &DefaultQueueUsecase{
		ViewRepo:     viewRepo,
		AdRepo:       adRepo,
		CampaignRepo: campaignRepo,
		Resolver:     resolver,
		Metrics:      rewardMetrics,
	}
}

func (uc *DefaultQueueUsecase) SelectCandidateAd(ctx context.Context, viewerID string) (*CandidateAd, error) {
	since := time.Now().Add(-24 * time.Hour)
	excludeIDs, err := uc.ViewRepo.ListViewedAdIDs(ctx, viewerID, since)
	if err != nil {
		return nil, err
	}

	eligibleIDs, err := uc.CampaignRepo.ListEligibleAdIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(eligibleIDs) == 0 {
		return uc.noCandidate(), nil
	}

	candidates, err := uc.AdRepo.ListServableAds(ctx, eligibleIDs, excludeIDs, candidatePoolSize)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return uc.noCandidate(), nil
	}

	ad := candidates[rand.Intn(len(candidates))]

	if uc.Metrics != nil {
		uc.Metrics.CandidateServedTotal.WithLabelValues("served").Inc()
	}

	mediaURL := ""
	if uc.Resolver != nil {
		mediaURL = uc.Resolver.PublicMediaURL(ad.MediaKey)
	}

	return &CandidateAd{Ad: ad, MediaURL: mediaURL}, nil
}

func (uc *DefaultQueueUsecase) noCandidate() *CandidateAd {
	if uc.Metrics != nil {
		uc.Metrics.CandidateServedTotal.WithLabelValues("empty").Inc()
	}
	return nil
}
