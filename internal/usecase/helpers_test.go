package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/config"
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/kafka"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/repository"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/probe"
	"github.com/adcoin/adcoin-reward-service/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db           *gorm.DB
	userRepo     domain.UserRepository
	walletRepo   domain.WalletRepository
	adRepo       domain.AdRepository
	campaignRepo domain.CampaignRepository
	viewRepo     domain.ViewRepository
	fraudRepo    domain.FraudRepository
	ingestRepo   domain.IngestRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	return &fixture{
		db:           db,
		userRepo:     repository.NewDefaultUserRepository(db),
		walletRepo:   repository.NewDefaultWalletRepository(db),
		adRepo:       repository.NewDefaultAdRepository(db),
		campaignRepo: repository.NewDefaultCampaignRepository(db),
		viewRepo:     repository.NewDefaultViewRepository(db),
		fraudRepo:    repository.NewDefaultFraudRepository(db),
		ingestRepo:   repository.NewDefaultIngestRepository(db),
	}
}

func testRewards() config.Rewards {
	return config.Rewards{
		MinWatchSeconds:  15,
		CoinsPerWatch:    5,
		MaxDailyCoins:    200,
		CoinsPerCampaign: 50,
	}
}

func (f *fixture) ensureUser(t *testing.T, externalID string) *domain.User {
	t.Helper()
	user, err := f.userRepo.EnsureUser(context.Background(), externalID, externalID)
	require.NoError(t, err)
	return user
}

func (f *fixture) fundWallet(t *testing.T, userID string, coins int64) {
	t.Helper()
	walletUC := NewDefaultWalletUsecase(f.walletRepo)
	require.NoError(t, walletUC.AdjustWallet(context.Background(), userID, coins))
}

func (f *fixture) createApprovedAd(t *testing.T, ownerID string, adType domain.AdType, durationSeconds int64) *domain.Ad {
	t.Helper()
	now := time.Now()
	ad := &domain.Ad{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		Type:            adType,
		Title:           "test ad",
		MediaKey:        "media/" + uuid.New().String() + ".mp4",
		DurationSeconds: durationSeconds,
		Status:          domain.AdStatusApproved,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, f.adRepo.CreateAd(context.Background(), ad))
	return ad
}

func (f *fixture) startViewAt(t *testing.T, adID, viewerID string, startedAt time.Time, ip, fingerprint string) *domain.AdView {
	t.Helper()
	view := &domain.AdView{
		ID:          uuid.New().String(),
		AdID:        adID,
		ViewerID:    viewerID,
		StartedAt:   startedAt,
		IPAddress:   ip,
		Fingerprint: fingerprint,
	}
	require.NoError(t, f.viewRepo.CreateView(context.Background(), view))
	return view
}

func (f *fixture) walletBalance(t *testing.T, userID string) int64 {
	t.Helper()
	wallet, err := f.walletRepo.GetWallet(context.Background(), userID)
	require.NoError(t, err)
	return wallet.Balance
}

func testResolver() *probe.CDNMediaResolver {
	return probe.NewCDNMediaResolver("https://cdn.test")
}

// stubPublisher records emitted events in place of a kafka writer.
type stubPublisher struct {
	viewEvents     []kafka.ViewCompletedEvent
	campaignEvents []kafka.CampaignCreatedEvent
	fraudEvents    []kafka.FraudFlagEvent
}

func (p *stubPublisher) PublishViewCompleted(event kafka.ViewCompletedEvent) error {
	p.viewEvents = append(p.viewEvents, event)
	return nil
}

func (p *stubPublisher) PublishCampaignCreated(event kafka.CampaignCreatedEvent) error {
	p.campaignEvents = append(p.campaignEvents, event)
	return nil
}

func (p *stubPublisher) PublishFraudFlag(event kafka.FraudFlagEvent) error {
	p.fraudEvents = append(p.fraudEvents, event)
	return nil
}

// stubProber satisfies domain.DurationProber without shelling out.
type stubProber struct {
	seconds int64
	err     error
	calls   int
}

func (p *stubProber) ProbeDuration(ctx context.Context, mediaURL string) (int64, error) {
	p.calls++
	return p.seconds, p.err
}
