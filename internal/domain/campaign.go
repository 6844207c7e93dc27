package domain

import (
	"context"
	"time"
)

type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "ACTIVE"
	CampaignPaused    CampaignStatus = "PAUSED"
	CampaignCompleted CampaignStatus = "COMPLETED"
)

// Campaign is an advertiser's funded commitment to pay coins for validated
// views of one ad. SpendCoins never exceeds BudgetCoins.
type Campaign struct {
	ID          string
	OwnerID     string
	AdID        string
	BudgetCoins int64
	SpendCoins  int64
	Status      CampaignStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CampaignRepository interface {
	GetCampaignByID(ctx context.Context, campaignID string) (*Campaign, error)
	// GetActiveCampaignForAd returns the ACTIVE campaign funding the ad,
	// or nil when none exists.
	GetActiveCampaignForAd(ctx context.Context, adID string) (*Campaign, error)
	// ListEligibleAdIDs returns ad ids backed by an ACTIVE campaign whose
	// spend is strictly below budget.
	ListEligibleAdIDs(ctx context.Context) ([]string, error)
	ListCampaignsByOwner(ctx context.Context, ownerID string) ([]*Campaign, error)
	// CreateCampaignFunded decrements the owner's wallet by the budget,
	// creates the campaign and appends the funding entry in one transaction.
	// Fails ErrInsufficientBalance before any mutation.
	CreateCampaignFunded(ctx context.Context, campaign *Campaign, entry *LedgerEntry) error
	SetCampaignStatus(ctx context.Context, campaignID string, status CampaignStatus) error
	IncreaseBudget(ctx context.Context, campaignID string, delta int64) error
}
