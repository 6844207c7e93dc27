package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newQueueUsecase(f *fixture) *DefaultQueueUsecase {
	return NewDefaultQueueUsecase(f.viewRepo, f.adRepo, f.campaignRepo, testResolver(), nil)
}

func TestSelectCandidateAdServesFundedAd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	viewer := f.ensureUser(t, "viewer")
	f.fundWallet(t, owner.ID, 200)
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 30)
	f.fundedCampaign(t, owner.ID, ad.ID, 50)

	uc := newQueueUsecase(f)
	candidate, err := uc.SelectCandidateAd(ctx, viewer.ID)
	require.NoError(t, err)
	require.NotNil(t, candidate)
	require.Equal(t, ad.ID, candidate.Ad.ID)
	require.Equal(t, "https://cdn.test/"+ad.MediaKey, candidate.MediaURL)
}

func TestSelectCandidateAdEmptyPool(t *testing.T) {
	f := newFixture(t)

	uc := newQueueUsecase(f)
	candidate, err := uc.SelectCandidateAd(context.Background(), uuid.New().String())
	require.NoError(t, err)
	require.Nil(t, candidate)
}

func TestSelectCandidateAdSkipsUnapprovedAds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	viewer := f.ensureUser(t, "viewer")
	f.fundWallet(t, owner.ID, 200)
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 30)
	f.fundedCampaign(t, owner.ID, ad.ID, 50)
	require.NoError(t, f.adRepo.SetAdStatus(ctx, ad.ID, domain.AdStatusPending))

	uc := newQueueUsecase(f)
	candidate, err := uc.SelectCandidateAd(ctx, viewer.ID)
	require.NoError(t, err)
	require.Nil(t, candidate)
}

func TestSelectCandidateAdSkipsExhaustedCampaigns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	viewer := f.ensureUser(t, "viewer")
	f.fundWallet(t, owner.ID, 200)
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 30)
	campaign := f.fundedCampaign(t, owner.ID, ad.ID, 50)

	err := f.db.Model(&models.CampaignModel{}).
		Where("id = ?", campaign.ID).
		Update("spend_coins", 50).Error
	require.NoError(t, err)

	uc := newQueueUsecase(f)
	candidate, err := uc.SelectCandidateAd(ctx, viewer.ID)
	require.NoError(t, err)
	require.Nil(t, candidate)
}

func TestSelectCandidateAdExcludesRecentlyViewed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	viewer := f.ensureUser(t, "viewer")
	other := f.ensureUser(t, "other")
	f.fundWallet(t, owner.ID, 200)
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 30)
	f.fundedCampaign(t, owner.ID, ad.ID, 50)

	f.startViewAt(t, ad.ID, viewer.ID, time.Now().Add(-1*time.Hour), "", "")

	uc := newQueueUsecase(f)
	candidate, err := uc.SelectCandidateAd(ctx, viewer.ID)
	require.NoError(t, err)
	require.Nil(t, candidate)

	// The exclusion is per viewer
	candidate, err = uc.SelectCandidateAd(ctx, other.ID)
	require.NoError(t, err)
	require.NotNil(t, candidate)
}

func TestSelectCandidateAdViewExclusionExpires(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	viewer := f.ensureUser(t, "viewer")
	f.fundWallet(t, owner.ID, 200)
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeVideo, 30)
	f.fundedCampaign(t, owner.ID, ad.ID, 50)

	// A view older than the 24h window no longer hides the ad
	f.startViewAt(t, ad.ID, viewer.ID, time.Now().Add(-25*time.Hour), "", "")

	uc := newQueueUsecase(f)
	candidate, err := uc.SelectCandidateAd(ctx, viewer.ID)
	require.NoError(t, err)
	require.NotNil(t, candidate)
}
