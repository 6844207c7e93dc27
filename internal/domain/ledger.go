package domain

import (
	"context"
	"time"
)

type LedgerReason string

const (
	ReasonWatchReward   LedgerReason = "WATCH_REWARD"
	ReasonCampaignSpend LedgerReason = "CAMPAIGN_SPEND"
	ReasonAdminAdjust   LedgerReason = "ADMIN_ADJUST"
)

// LedgerEntry is the append-only record of a single coin movement.
// The signed sum of a user's entries must equal the wallet balance.
type LedgerEntry struct {
	ID        string
	UserID    string
	Delta     int64
	Reason    LedgerReason
	RefType   string
	RefID     string
	CreatedAt time.Time
}

type WalletRepository interface {
	GetWallet(ctx context.Context, userID string) (*Wallet, error)
	// AdjustBalanceAtomic applies entry.Delta to the wallet and appends the
	// entry in one transaction. The balance may not go below zero.
	AdjustBalanceAtomic(ctx context.Context, entry *LedgerEntry) error
	ListLedgerEntries(ctx context.Context, userID string, limit int) ([]*LedgerEntry, error)
	ListEntriesByReason(ctx context.Context, reason LedgerReason, limit int) ([]*LedgerEntry, error)
	SumLedgerDeltas(ctx context.Context, userID string) (int64, error)
}
