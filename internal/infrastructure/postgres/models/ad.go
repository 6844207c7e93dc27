package models

import (
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
)

type AdModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	OwnerID         string `gorm:"type:uuid;not null;index:idx_ad_owner"`
	Type            domain.AdType
	Title           string
	MediaKey        string
	DurationSeconds int64
	Status          domain.AdStatus `gorm:"index:idx_ad_status"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CampaignModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	OwnerID     string `gorm:"type:uuid;not null;index:idx_campaign_owner"`
	AdID        string `gorm:"type:uuid;not null;index:idx_campaign_ad"`
	BudgetCoins int64  `gorm:"not null"`
	SpendCoins  int64  `gorm:"not null;default:0"`
	Status      domain.CampaignStatus `gorm:"index:idx_campaign_status"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
