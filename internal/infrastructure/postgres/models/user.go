package models

import "time"

type UserModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	ExternalID  string `gorm:"uniqueIndex;not null"`
	DisplayName string
	CreatedAt   time.Time
}

type WalletModel struct {
	UserID    string `gorm:"primaryKey;type:uuid"`
	Balance   int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

type LedgerEntryModel struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"type:uuid;not null;index:idx_ledger_user"`
	Delta     int64  `gorm:"not null"`
	Reason    string `gorm:"not null;index:idx_ledger_reason"`
	RefType   string
	RefID     string
	CreatedAt time.Time `gorm:"index:idx_ledger_created_at"`
}
