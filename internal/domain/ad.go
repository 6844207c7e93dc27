package domain

import (
	"context"
	"time"
)

type AdType string

const (
	AdTypeVideo  AdType = "video"
	AdTypeBanner AdType = "banner"
)

type AdStatus string

const (
	AdStatusPending  AdStatus = "PENDING"
	AdStatusApproved AdStatus = "APPROVED"
	AdStatusRejected AdStatus = "REJECTED"
)

// Ad media duration is in whole seconds; 0 means not yet known.
type Ad struct {
	ID              string
	OwnerID         string
	Type            AdType
	Title           string
	MediaKey        string
	DurationSeconds int64
	Status          AdStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AdRepository interface {
	CreateAd(ctx context.Context, ad *Ad) error
	GetAdByID(ctx context.Context, adID string) (*Ad, error)
	SetAdStatus(ctx context.Context, adID string, status AdStatus) error
	SetAdDuration(ctx context.Context, adID string, seconds int64) error
	// ListServableAds returns approved ads restricted to includeIDs and
	// with excludeIDs filtered out, capped to limit.
	ListServableAds(ctx context.Context, includeIDs, excludeIDs []string, limit int) ([]*Ad, error)
}
