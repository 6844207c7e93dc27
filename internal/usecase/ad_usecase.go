package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type CreateAdInput struct {
	OwnerID         string
	Type            domain.AdType
	Title           string
	MediaKey        string
	DurationSeconds int64
}

type AdUsecase interface {
	CreateAd(ctx context.Context, input *CreateAdInput) (*domain.Ad, error)
	// ProbeAdDuration probes the ad's media synchronously on behalf of its
	// owner, bypassing the ingestion queue.
	ProbeAdDuration(ctx context.Context, ownerID, adID string) (*domain.Ad, error)
	// SetAdStatus is consumed by the external moderation collaborator.
	SetAdStatus(ctx context.Context, adID string, adStatus domain.AdStatus) error
	EnqueueIngestJob(ctx context.Context, adID string) (*domain.MediaIngestJob, error)
}

type DefaultAdUsecase struct {
	AdRepo     domain.AdRepository
	IngestRepo domain.IngestRepository
	Prober     domain.DurationProber
	Resolver   domain.MediaURLResolver
}

func NewDefaultAdUsecase(
	adRepo domain.AdRepository,
	ingestRepo domain.IngestRepository,
	prober domain.DurationProber,
	resolver domain.MediaURLResolver) *DefaultAdUsecase {

	return &DefaultAdUsecase{
		AdRepo:     adRepo,
		IngestRepo: ingestRepo,
		Prober:     prober,
		Resolver:   resolver,
	}
}

func (uc *DefaultAdUsecase) CreateAd(ctx context.Context, input *CreateAdInput) (*domain.Ad, error) {
	if input.Title == "" || len(input.MediaKey) < 3 {
		return nil, domain.ErrInvalidPayload
	}
	if input.Type != domain.AdTypeVideo && input.Type != domain.AdTypeBanner {
		return nil, domain.ErrInvalidPayload
	}

	now := time.Now()
	ad := &domain.Ad{
		ID:              uuid.New().String(),
		OwnerID:         input.OwnerID,
		Type:            input.Type,
		Title:           input.Title,
		MediaKey:        input.MediaKey,
		DurationSeconds: input.DurationSeconds,
		Status:          domain.AdStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.AdRepo.CreateAd(ctx, ad); err != nil {
		return nil, err
	}

	// A video without a known duration cannot be validated on completion
	// until the ingestion queue backfills it
	if ad.Type == domain.AdTypeVideo && ad.DurationSeconds == 0 {
		if _, err := uc.IngestRepo.UpsertJob(ctx, ad.ID); err != nil {
			return nil, err
		}
	}

	return ad, nil
}

func (uc *DefaultAdUsecase) ProbeAdDuration(ctx context.Context, ownerID, adID string) (*domain.Ad, error) {
	ad, err := uc.AdRepo.GetAdByID(ctx, adID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, "ad not found")
		}
		return nil, err
	}
	if ad.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	if ad.Type != domain.AdTypeVideo {
		return nil, domain.ErrNotAVideo
	}

	seconds, err := uc.Prober.ProbeDuration(ctx, uc.Resolver.PublicMediaURL(ad.MediaKey))
	if err != nil || seconds <= 0 {
		return nil, domain.ErrDurationProbeFailed
	}

	if err := uc.AdRepo.SetAdDuration(ctx, adID, seconds); err != nil {
		return nil, err
	}
	ad.DurationSeconds = seconds

	return ad, nil
}

func (uc *DefaultAdUsecase) SetAdStatus(ctx context.Context, adID string, adStatus domain.AdStatus) error {
	if _, err := uc.AdRepo.GetAdByID(ctx, adID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status.Error(codes.NotFound, "ad not found")
		}
		return err
	}
	return uc.AdRepo.SetAdStatus(ctx, adID, adStatus)
}

func (uc *DefaultAdUsecase) EnqueueIngestJob(ctx context.Context, adID string) (*domain.MediaIngestJob, error) {
	if _, err := uc.AdRepo.GetAdByID(ctx, adID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, "ad not found")
		}
		return nil, err
	}
	return uc.IngestRepo.UpsertJob(ctx, adID)
}
