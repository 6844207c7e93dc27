package repository

import (
	"context"
	"errors"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/mappers"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWalletRepository struct {
	DB *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{DB: db}
}

func (r *DefaultWalletRepository) GetWallet(ctx context.Context, userID string) (*domain.Wallet, error) {
	var walletModel models.WalletModel
	if err := r.DB.WithContext(ctx).First(&walletModel, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainWallet(&walletModel), nil
}

// AdjustBalanceAtomic applies the entry delta to the wallet and appends the
// ledger entry as one transaction. The conditional update keeps the balance
// non-negative; zero rows affected means either a missing wallet or an
// insufficient balance.
func (r *DefaultWalletRepository) AdjustBalanceAtomic(ctx context.Context, entry *domain.LedgerEntry) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WalletModel{}).
			Where("user_id = ? AND balance + ? >= 0", entry.UserID, entry.Delta).
			Updates(map[string]interface{}{
				"balance":    gorm.Expr("balance + ?", entry.Delta),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var exists int64
			if err := tx.Model(&models.WalletModel{}).
				Where("user_id = ?", entry.UserID).
				Count(&exists).Error; err != nil {
				return err
			}
			if exists == 0 {
				return gorm.ErrRecordNotFound
			}
			return domain.ErrInsufficientBalance
		}

		return tx.Create(mappers.ToGORMLedgerEntry(entry)).Error
	})
}

func (r *DefaultWalletRepository) ListLedgerEntries(ctx context.Context, userID string, limit int) ([]*domain.LedgerEntry, error) {
	var entryModels []models.LedgerEntryModel
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, len(entryModels))
	for i, entryModel := range entryModels {
		entries[i] = mappers.ToDomainLedgerEntry(&entryModel)
	}
	return entries, nil
}

func (r *DefaultWalletRepository) ListEntriesByReason(ctx context.Context, reason domain.LedgerReason, limit int) ([]*domain.LedgerEntry, error) {
	var entryModels []models.LedgerEntryModel
	err := r.DB.WithContext(ctx).
		Where("reason = ?", string(reason)).
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, len(entryModels))
	for i, entryModel := range entryModels {
		entries[i] = mappers.ToDomainLedgerEntry(&entryModel)
	}
	return entries, nil
}

// SumLedgerDeltas returns the signed sum of all entries for a user. The
// result must always match the wallet balance.
func (r *DefaultWalletRepository) SumLedgerDeltas(ctx context.Context, userID string) (int64, error) {
	var sum *int64
	err := r.DB.WithContext(ctx).
		Model(&models.LedgerEntryModel{}).
		Select("SUM(delta)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
