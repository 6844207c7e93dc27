package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/config"
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func newFraudUsecase(f *fixture) *DefaultFraudUsecase {
	return NewDefaultFraudUsecase(f.viewRepo, f.fraudRepo, nil, nil, config.Fraud{
		IPDailyLimit:          5,
		FingerprintDailyLimit: 5,
		WindowHours:           24,
	})
}

func TestFraudFlagsSharedIP(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeBanner, 0)

	var last *domain.AdView
	for i := 0; i < 5; i++ {
		viewer := f.ensureUser(t, fmt.Sprintf("viewer-%d", i))
		last = f.startViewAt(t, ad.ID, viewer.ID, time.Now().Add(-1*time.Hour),
			"203.0.113.7", fmt.Sprintf("fp-%d", i))
	}

	uc := newFraudUsecase(f)
	require.NoError(t, uc.CheckCompletedView(ctx, last))

	flags, err := uc.ListRecentFlags(ctx, 10)
	require.NoError(t, err)
	require.Len(t, flags, 1)
	require.Equal(t, domain.FraudReasonSharedIP, flags[0].Reason)
	require.Equal(t, last.ViewerID, flags[0].UserID)
	require.Equal(t, int32(2), flags[0].Severity)
}

func TestFraudBelowThresholdRaisesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeBanner, 0)

	var last *domain.AdView
	for i := 0; i < 4; i++ {
		viewer := f.ensureUser(t, fmt.Sprintf("viewer-%d", i))
		last = f.startViewAt(t, ad.ID, viewer.ID, time.Now().Add(-1*time.Hour),
			"203.0.113.7", fmt.Sprintf("fp-%d", i))
	}

	uc := newFraudUsecase(f)
	require.NoError(t, uc.CheckCompletedView(ctx, last))

	flags, err := uc.ListRecentFlags(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, flags)
}

func TestFraudFlagsSharedFingerprint(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeBanner, 0)

	var last *domain.AdView
	for i := 0; i < 5; i++ {
		viewer := f.ensureUser(t, fmt.Sprintf("viewer-%d", i))
		last = f.startViewAt(t, ad.ID, viewer.ID, time.Now().Add(-1*time.Hour),
			fmt.Sprintf("198.51.100.%d", i), "shared-fingerprint")
	}

	uc := newFraudUsecase(f)
	require.NoError(t, uc.CheckCompletedView(ctx, last))

	flags, err := uc.ListRecentFlags(ctx, 10)
	require.NoError(t, err)
	require.Len(t, flags, 1)
	require.Equal(t, domain.FraudReasonSharedFingerprint, flags[0].Reason)
}

func TestFraudIgnoresViewsOutsideWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeBanner, 0)

	var last *domain.AdView
	for i := 0; i < 5; i++ {
		viewer := f.ensureUser(t, fmt.Sprintf("viewer-%d", i))
		last = f.startViewAt(t, ad.ID, viewer.ID, time.Now().Add(-30*time.Hour),
			"203.0.113.7", fmt.Sprintf("fp-%d", i))
	}

	uc := newFraudUsecase(f)
	require.NoError(t, uc.CheckCompletedView(ctx, last))

	flags, err := uc.ListRecentFlags(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, flags)
}

func TestFraudSkipsEmptySignals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.ensureUser(t, "owner")
	ad := f.createApprovedAd(t, owner.ID, domain.AdTypeBanner, 0)

	var last *domain.AdView
	for i := 0; i < 6; i++ {
		viewer := f.ensureUser(t, fmt.Sprintf("viewer-%d", i))
		last = f.startViewAt(t, ad.ID, viewer.ID, time.Now().Add(-1*time.Hour), "", "")
	}

	uc := newFraudUsecase(f)
	require.NoError(t, uc.CheckCompletedView(ctx, last))

	flags, err := uc.ListRecentFlags(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, flags)
}
