package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/config"
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/kafka"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
)

type FraudUsecase interface {
	// CheckCompletedView runs the per-IP and per-fingerprint heuristics
	// for a view that just completed. Flags are advisory; the caller's
	// transaction has already committed.
	CheckCompletedView(ctx context.Context, view *domain.AdView) error
	ListRecentFlags(ctx context.Context, limit int) ([]*domain.FraudFlag, error)
}

type DefaultFraudUsecase struct {
	ViewRepo  domain.ViewRepository
	FraudRepo domain.FraudRepository
	Publisher EventPublisher
	Metrics   *metrics.RewardMetrics
	Cfg       config.Fraud
}

func NewDefaultFraudUsecase(
	viewRepo domain.ViewRepository,
	fraudRepo domain.FraudRepository,
	publisher EventPublisher,
	rewardMetrics *metrics.RewardMetrics,
	cfg config.Fraud) *DefaultFraudUsecase {

	return &DefaultFraudUsecase{
		ViewRepo:  viewRepo,
		FraudRepo: fraudRepo,
		Publisher: publisher,
		Metrics:   rewardMetrics,
		Cfg:       cfg,
	}
}

func (uc *DefaultFraudUsecase) CheckCompletedView(ctx context.Context, view *domain.AdView) error {
	since := time.Now().Add(-time.Duration(uc.Cfg.WindowHours) * time.Hour)

	// The two checks are independent: one completion can raise zero, one
	// or two flags
	if view.IPAddress != "" {
		distinct, err := uc.ViewRepo.CountDistinctViewersByIP(ctx, view.IPAddress, since)
		if err != nil {
			return fmt.Errorf("count viewers by ip: %w", err)
		}
		if distinct >= uc.Cfg.IPDailyLimit {
			if err := uc.writeFlag(ctx, view.ViewerID, domain.FraudReasonSharedIP); err != nil {
				return err
			}
		}
	}

	if view.Fingerprint != "" {
		distinct, err := uc.ViewRepo.CountDistinctViewersByFingerprint(ctx, view.Fingerprint, since)
		if err != nil {
			return fmt.Errorf("count viewers by fingerprint: %w", err)
		}
		if distinct >= uc.Cfg.FingerprintDailyLimit {
			if err := uc.writeFlag(ctx, view.ViewerID, domain.FraudReasonSharedFingerprint); err != nil {
				return err
			}
		}
	}

	return nil
}

func (uc *DefaultFraudUsecase) writeFlag(ctx context.Context, userID, reason string) error {
	flag := &domain.FraudFlag{
		ID:        uuid.New().String(),
		UserID:    userID,
		Reason:    reason,
		Severity:  2,
		CreatedAt: time.Now(),
	}
	if err := uc.FraudRepo.CreateFlag(ctx, flag); err != nil {
		return fmt.Errorf("create fraud flag: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.FraudFlagsTotal.WithLabelValues(reason).Inc()
	}

	if uc.Publisher != nil {
		event := kafka.FraudFlagEvent{UserID: userID, Reason: reason, Severity: 2}
		if err := uc.Publisher.PublishFraudFlag(event); err != nil {
			log.Printf("failed to publish fraud flag event: %v", err)
		}
	}

	return nil
}

func (uc *DefaultFraudUsecase) ListRecentFlags(ctx context.Context, limit int) ([]*domain.FraudFlag, error) {
	if limit <= 0 {
		limit = 100
	}
	return uc.FraudRepo.ListRecentFlags(ctx, limit)
}
