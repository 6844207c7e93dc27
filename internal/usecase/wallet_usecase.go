package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/jaevor/go-nanoid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"
)

type WalletOutput struct {
	Wallet *domain.Wallet
	Ledger []*domain.LedgerEntry
}

type WalletUsecase interface {
	GetWallet(ctx context.Context, userID string) (*WalletOutput, error)
	// AdjustWallet applies an administrative coin adjustment: wallet delta
	// plus an ADMIN_ADJUST ledger entry as one atomic unit.
	AdjustWallet(ctx context.Context, userID string, delta int64) error
	ListAdjustments(ctx context.Context, limit int) ([]*domain.LedgerEntry, error)
}

type DefaultWalletUsecase struct {
	WalletRepo domain.WalletRepository
}

func NewDefaultWalletUsecase(walletRepo domain.WalletRepository) *DefaultWalletUsecase {
	return &DefaultWalletUsecase{WalletRepo: walletRepo}
}

func (uc *DefaultWalletUsecase) GetWallet(ctx context.Context, userID string) (*WalletOutput, error) {
	wallet, err := uc.WalletRepo.GetWallet(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, "wallet not found")
		}
		return nil, err
	}

	ledger, err := uc.WalletRepo.ListLedgerEntries(ctx, userID, 50)
	if err != nil {
		return nil, err
	}

	return &WalletOutput{Wallet: wallet, Ledger: ledger}, nil
}

func (uc *DefaultWalletUsecase) AdjustWallet(ctx context.Context, userID string, delta int64) error {
	if delta == 0 {
		return domain.ErrInvalidPayload
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return err
	}

	entry := &domain.LedgerEntry{
		ID:        idGenerator(),
		UserID:    userID,
		Delta:     delta,
		Reason:    domain.ReasonAdminAdjust,
		RefType:   "admin",
		RefID:     "manual",
		CreatedAt: time.Now(),
	}

	if err := uc.WalletRepo.AdjustBalanceAtomic(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return status.Error(codes.NotFound, "wallet not found")
		}
		return err
	}
	return nil
}

func (uc *DefaultWalletUsecase) ListAdjustments(ctx context.Context, limit int) ([]*domain.LedgerEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	return uc.WalletRepo.ListEntriesByReason(ctx, domain.ReasonAdminAdjust, limit)
}
