package usecase

import (
	"context"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
)

type UserUsecase interface {
	// EnsureUser is called by the external auth collaborator on every
	// authentication; first sight creates the user and an empty wallet.
	EnsureUser(ctx context.Context, externalID, displayName string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

type DefaultUserUsecase struct {
	UserRepo domain.UserRepository
}

func NewDefaultUserUsecase(userRepo domain.UserRepository) *DefaultUserUsecase {
	return &DefaultUserUsecase{UserRepo: userRepo}
}

func (uc *DefaultUserUsecase) EnsureUser(ctx context.Context, externalID, displayName string) (*domain.User, error) {
	if externalID == "" {
		return nil, domain.ErrInvalidPayload
	}
	return uc.UserRepo.EnsureUser(ctx, externalID, displayName)
}

func (uc *DefaultUserUsecase) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return uc.UserRepo.GetUserByID(ctx, userID)
}
