package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/config"
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/metrics"
	"gorm.io/gorm"
)

type IngestUsecase interface {
	// RunIngestTick claims and processes at most one job. A lost claim
	// race or an empty queue are quiet no-ops.
	RunIngestTick(ctx context.Context) error
}

type DefaultIngestUsecase struct {
	IngestRepo domain.IngestRepository
	AdRepo     domain.AdRepository
	Prober     domain.DurationProber
	Resolver   domain.MediaURLResolver
	Metrics    *metrics.RewardMetrics
	Cfg        config.Ingest
}

func NewDefaultIngestUsecase(
	ingestRepo domain.IngestRepository,
	adRepo domain.AdRepository,
	prober domain.DurationProber,
	resolver domain.MediaURLResolver,
	rewardMetrics *metrics.RewardMetrics,
	cfg config.Ingest) *DefaultIngestUsecase {

	return &DefaultIngestUsecase{
		IngestRepo: ingestRepo,
		AdRepo:     adRepo,
		Prober:     prober,
		Resolver:   resolver,
		Metrics:    rewardMetrics,
		Cfg:        cfg,
	}
}

func (uc *DefaultIngestUsecase) RunIngestTick(ctx context.Context) error {
	job, err := uc.IngestRepo.FindClaimableJob(ctx, uc.Cfg.MaxAttempts)
	if err != nil {
		return err
	}
	if job == nil {
		return nil
	}

	claimed, err := uc.IngestRepo.ClaimJob(ctx, job.ID)
	if err != nil {
		return err
	}
	if !claimed {
		// Another worker won the conditional update
		return nil
	}

	ad, err := uc.AdRepo.GetAdByID(ctx, job.AdID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The ad will never reappear; pin the job so it is not retried
			slog.Warn("ingest job targets missing ad", "job_id", job.ID, "ad_id", job.AdID)
			uc.countResult(domain.IngestErrAdNotFound)
			return uc.IngestRepo.MarkJobFailedTerminal(ctx, job.ID, domain.IngestErrAdNotFound, uc.Cfg.MaxAttempts)
		}
		return err
	}

	started := time.Now()
	seconds, probeErr := uc.Prober.ProbeDuration(ctx, uc.Resolver.PublicMediaURL(ad.MediaKey))
	if uc.Metrics != nil {
		uc.Metrics.IngestProbeDuration.Observe(time.Since(started).Seconds())
	}
	if probeErr != nil || seconds <= 0 {
		slog.Warn("duration probe failed", "job_id", job.ID, "ad_id", ad.ID, "attempts", job.Attempts+1)
		uc.countResult(domain.IngestErrProbeFailed)
		return uc.IngestRepo.MarkJobFailed(ctx, job.ID, domain.IngestErrProbeFailed)
	}

	if err := uc.IngestRepo.CompleteJob(ctx, job.ID, ad.ID, seconds); err != nil {
		return err
	}

	slog.Info("ingested media duration", "ad_id", ad.ID, "duration_seconds", seconds)
	uc.countResult("done")
	return nil
}

func (uc *DefaultIngestUsecase) countResult(result string) {
	if uc.Metrics != nil {
		uc.Metrics.IngestJobsTotal.WithLabelValues(result).Inc()
	}
}
