package mappers

import (
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
)

func ToGORMUser(user *domain.User) *models.UserModel {
	return &models.UserModel{
		ID:          user.ID,
		ExternalID:  user.ExternalID,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}

func ToDomainUser(model *models.UserModel) *domain.User {
	return &domain.User{
		ID:          model.ID,
		ExternalID:  model.ExternalID,
		DisplayName: model.DisplayName,
		CreatedAt:   model.CreatedAt,
	}
}

func ToDomainWallet(model *models.WalletModel) *domain.Wallet {
	return &domain.Wallet{
		UserID:    model.UserID,
		Balance:   model.Balance,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMLedgerEntry(entry *domain.LedgerEntry) *models.LedgerEntryModel {
	return &models.LedgerEntryModel{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Delta:     entry.Delta,
		Reason:    string(entry.Reason),
		RefType:   entry.RefType,
		RefID:     entry.RefID,
		CreatedAt: entry.CreatedAt,
	}
}

func ToDomainLedgerEntry(model *models.LedgerEntryModel) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		ID:        model.ID,
		UserID:    model.UserID,
		Delta:     model.Delta,
		Reason:    domain.LedgerReason(model.Reason),
		RefType:   model.RefType,
		RefID:     model.RefID,
		CreatedAt: model.CreatedAt,
	}
}
