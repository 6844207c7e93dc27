package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/adcoin/adcoin-reward-service/internal/config"
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newIngestUsecase(f *fixture, prober domain.DurationProber) *DefaultIngestUsecase {
	return NewDefaultIngestUsecase(f.ingestRepo, f.adRepo, prober, testResolver(), nil, config.Ingest{
		MaxAttempts: 5,
	})
}

func TestIngestTickBackfillsDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 0)
	_, err := f.ingestRepo.UpsertJob(ctx, ad.ID)
	require.NoError(t, err)

	uc := newIngestUsecase(f, &stubProber{seconds: 42})
	require.NoError(t, uc.RunIngestTick(ctx))

	stored, err := f.adRepo.GetAdByID(ctx, ad.ID)
	require.NoError(t, err)
	require.Equal(t, int64(42), stored.DurationSeconds)

	job, err := f.ingestRepo.GetJobByAdID(ctx, ad.ID)
	require.NoError(t, err)
	require.Equal(t, domain.IngestDone, job.Status)
	require.Equal(t, 1, job.Attempts)
	require.Empty(t, job.LastError)
}

func TestIngestTickEmptyQueue(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, newIngestUsecase(f, &stubProber{}).RunIngestTick(context.Background()))
}

func TestIngestRetriesUntilAttemptsExhausted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 0)
	_, err := f.ingestRepo.UpsertJob(ctx, ad.ID)
	require.NoError(t, err)

	prober := &stubProber{err: errors.New("403 from cdn")}
	uc := newIngestUsecase(f, prober)

	for i := 0; i < 5; i++ {
		require.NoError(t, uc.RunIngestTick(ctx))
	}

	job, err := f.ingestRepo.GetJobByAdID(ctx, ad.ID)
	require.NoError(t, err)
	require.Equal(t, domain.IngestFailed, job.Status)
	require.Equal(t, 5, job.Attempts)
	require.Equal(t, domain.IngestErrProbeFailed, job.LastError)
	require.Equal(t, 5, prober.calls)

	// The exhausted job is no longer picked up
	require.NoError(t, uc.RunIngestTick(ctx))
	require.Equal(t, 5, prober.calls)
}

func TestIngestMissingAdIsTerminal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	adID := uuid.New().String()
	_, err := f.ingestRepo.UpsertJob(ctx, adID)
	require.NoError(t, err)

	prober := &stubProber{seconds: 42}
	uc := newIngestUsecase(f, prober)
	require.NoError(t, uc.RunIngestTick(ctx))

	job, err := f.ingestRepo.GetJobByAdID(ctx, adID)
	require.NoError(t, err)
	require.Equal(t, domain.IngestFailed, job.Status)
	require.Equal(t, domain.IngestErrAdNotFound, job.LastError)
	require.Equal(t, 5, job.Attempts)
	require.Equal(t, 0, prober.calls)

	claimable, err := f.ingestRepo.FindClaimableJob(ctx, 5)
	require.NoError(t, err)
	require.Nil(t, claimable)
}

func TestReEnqueuePreservesAttempts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 0)
	_, err := f.ingestRepo.UpsertJob(ctx, ad.ID)
	require.NoError(t, err)

	failing := newIngestUsecase(f, &stubProber{err: errors.New("timeout")})
	require.NoError(t, failing.RunIngestTick(ctx))
	require.NoError(t, failing.RunIngestTick(ctx))

	job, err := f.ingestRepo.UpsertJob(ctx, ad.ID)
	require.NoError(t, err)
	require.Equal(t, domain.IngestPending, job.Status)
	require.Equal(t, 2, job.Attempts)
	require.Empty(t, job.LastError)
}

func TestClaimJobSingleWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	job, err := f.ingestRepo.UpsertJob(ctx, uuid.New().String())
	require.NoError(t, err)

	claimed, err := f.ingestRepo.ClaimJob(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, claimed)

	claimed, err = f.ingestRepo.ClaimJob(ctx, job.ID)
	require.NoError(t, err)
	require.False(t, claimed)
}
