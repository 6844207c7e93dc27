package usecase

import (
	"context"
	"testing"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestEnsureUserCreatesWallet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	uc := NewDefaultUserUsecase(f.userRepo)
	user, err := uc.EnsureUser(ctx, "auth0|abc", "Alex")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	wallet, err := f.walletRepo.GetWallet(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), wallet.Balance)
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	uc := NewDefaultUserUsecase(f.userRepo)
	first, err := uc.EnsureUser(ctx, "auth0|abc", "Alex")
	require.NoError(t, err)

	second, err := uc.EnsureUser(ctx, "auth0|abc", "renamed")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	got, err := uc.GetUserByID(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "auth0|abc", got.ExternalID)
}

func TestEnsureUserRequiresExternalID(t *testing.T) {
	f := newFixture(t)

	uc := NewDefaultUserUsecase(f.userRepo)
	_, err := uc.EnsureUser(context.Background(), "", "anon")
	require.ErrorIs(t, err, domain.ErrInvalidPayload)
}
