package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newAdUsecase(f *fixture, prober domain.DurationProber) *DefaultAdUsecase {
	return NewDefaultAdUsecase(f.adRepo, f.ingestRepo, prober, testResolver())
}

func TestCreateAdValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := newAdUsecase(f, &stubProber{})

	_, err := uc.CreateAd(ctx, &CreateAdInput{Type: domain.AdTypeVideo, MediaKey: "media/a.mp4"})
	require.ErrorIs(t, err, domain.ErrInvalidPayload)

	_, err = uc.CreateAd(ctx, &CreateAdInput{Type: domain.AdTypeVideo, Title: "ad", MediaKey: "ab"})
	require.ErrorIs(t, err, domain.ErrInvalidPayload)

	_, err = uc.CreateAd(ctx, &CreateAdInput{Type: "popup", Title: "ad", MediaKey: "media/a.mp4"})
	require.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestCreateAdStartsPendingModeration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	uc := newAdUsecase(f, &stubProber{})

	ad, err := uc.CreateAd(ctx, &CreateAdInput{
		OwnerID:         owner.ID,
		Type:            domain.AdTypeVideo,
		Title:           "launch video",
		MediaKey:        "media/launch.mp4",
		DurationSeconds: 45,
	})
	require.NoError(t, err)
	require.Equal(t, domain.AdStatusPending, ad.Status)

	require.NoError(t, uc.SetAdStatus(ctx, ad.ID, domain.AdStatusApproved))
	approved, err := f.adRepo.GetAdByID(ctx, ad.ID)
	require.NoError(t, err)
	require.Equal(t, domain.AdStatusApproved, approved.Status)
}

func TestCreateAdEnqueuesIngestForUnknownDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	uc := newAdUsecase(f, &stubProber{})

	video, err := uc.CreateAd(ctx, &CreateAdInput{
		OwnerID:  owner.ID,
		Type:     domain.AdTypeVideo,
		Title:    "video without duration",
		MediaKey: "media/video.mp4",
	})
	require.NoError(t, err)

	job, err := f.ingestRepo.GetJobByAdID(ctx, video.ID)
	require.NoError(t, err)
	require.Equal(t, domain.IngestPending, job.Status)

	// Banners and videos with a known duration do not need ingestion
	banner, err := uc.CreateAd(ctx, &CreateAdInput{
		OwnerID:  owner.ID,
		Type:     domain.AdTypeBanner,
		Title:    "banner",
		MediaKey: "media/banner.png",
	})
	require.NoError(t, err)
	_, err = f.ingestRepo.GetJobByAdID(ctx, banner.ID)
	require.Error(t, err)

	known, err := uc.CreateAd(ctx, &CreateAdInput{
		OwnerID:         owner.ID,
		Type:            domain.AdTypeVideo,
		Title:           "known duration",
		MediaKey:        "media/known.mp4",
		DurationSeconds: 30,
	})
	require.NoError(t, err)
	_, err = f.ingestRepo.GetJobByAdID(ctx, known.ID)
	require.Error(t, err)
}

func TestProbeAdDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	stranger := f.ensureUser(t, "stranger")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 0)

	uc := newAdUsecase(f, &stubProber{seconds: 90})

	_, err := uc.ProbeAdDuration(ctx, stranger.ID, ad.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)

	probed, err := uc.ProbeAdDuration(ctx, owner.ID, ad.ID)
	require.NoError(t, err)
	require.Equal(t, int64(90), probed.DurationSeconds)

	stored, err := f.adRepo.GetAdByID(ctx, ad.ID)
	require.NoError(t, err)
	require.Equal(t, int64(90), stored.DurationSeconds)
}

func TestProbeAdDurationRejectsNonVideo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	banner := f.createApprovedAd(t, owner.ID, domain.AdTypeBanner, 0)

	uc := newAdUsecase(f, &stubProber{seconds: 90})
	_, err := uc.ProbeAdDuration(ctx, owner.ID, banner.ID)
	require.ErrorIs(t, err, domain.ErrNotAVideo)
}

func TestProbeAdDurationProbeFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 0)

	uc := newAdUsecase(f, &stubProber{err: errors.New("connection refused")})
	_, err := uc.ProbeAdDuration(ctx, owner.ID, ad.ID)
	require.ErrorIs(t, err, domain.ErrDurationProbeFailed)
}

func TestAdOperationsOnMissingAd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	uc := newAdUsecase(f, &stubProber{})
	_, err := uc.ProbeAdDuration(ctx, "owner", "missing")
	require.Equal(t, codes.NotFound, status.Code(err))
	require.Equal(t, codes.NotFound, status.Code(uc.SetAdStatus(ctx, "missing", domain.AdStatusApproved)))
	_, err = uc.EnqueueIngestJob(ctx, "missing")
	require.Equal(t, codes.NotFound, status.Code(err))
}
