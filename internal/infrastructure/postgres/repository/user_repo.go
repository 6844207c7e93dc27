package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

// EnsureUser finds the user by the immutable external identity key,
// creating the user together with a zero-balance wallet on first sight.
func (r *DefaultUserRepository) EnsureUser(ctx context.Context, externalID, displayName string) (*domain.User, error) {
	var userModel models.UserModel
	err := r.DB.WithContext(ctx).First(&userModel, "external_id = ?", externalID).Error
	if err == nil {
		return mappers.ToDomainUser(&userModel), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &domain.User{
		ID:          uuid.New().String(),
		ExternalID:  externalID,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMUser(user)).Error; err != nil {
			return err
		}
		wallet := &models.WalletModel{UserID: user.ID, Balance: 0, UpdatedAt: time.Now()}
		return tx.Create(wallet).Error
	})
	if err != nil {
		// Concurrent first-auth may have won the unique index race
		var existing models.UserModel
		if findErr := r.DB.WithContext(ctx).First(&existing, "external_id = ?", externalID).Error; findErr == nil {
			return mappers.ToDomainUser(&existing), nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (r *DefaultUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.WithContext(ctx).First(&userModel, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainUser(&userModel), nil
}
