package domain

import (
	"context"
	"time"
)

// AdView tracks one viewer's attempt to watch one ad. A view is created at
// start and mutated exactly once when completion is validated; Valid is the
// idempotency boundary for reward issuance.
type AdView struct {
	ID                   string
	AdID                 string
	ViewerID             string
	StartedAt            time.Time
	CompletedAt          *time.Time
	Valid                bool
	ClientWatchedSeconds int64
	ClientCompleted      bool
	IPAddress            string
	Fingerprint          string
	UserAgent            string
}

type DailyEarning struct {
	UserID string
	Day    string
	Coins  int64
}

// RewardCommit is the atomic unit turning a validated view into a wallet
// credit and a campaign-budget debit.
type RewardCommit struct {
	View       *AdView
	CampaignID string
	Entry      *LedgerEntry
	Day        string
	DailyCap   int64
}

type ViewRepository interface {
	CreateView(ctx context.Context, view *AdView) error
	GetView(ctx context.Context, viewID, adID, viewerID string) (*AdView, error)
	ListViewedAdIDs(ctx context.Context, viewerID string, since time.Time) ([]string, error)
	CountDistinctViewersByIP(ctx context.Context, ip string, since time.Time) (int64, error)
	CountDistinctViewersByFingerprint(ctx context.Context, fingerprint string, since time.Time) (int64, error)
	GetDailyEarning(ctx context.Context, userID, day string) (int64, error)
	// CommitReward performs the reward unit all-or-nothing: marks the view
	// valid, appends the ledger entry, credits the wallet, increments the
	// campaign spend (transitioning to COMPLETED on exhaustion) and upserts
	// the daily earning row. Conditional-update failures surface as
	// ErrAlreadyCompleted, ErrCampaignInactive or ErrDailyCapReached, and a
	// missing wallet row as the storage not-found error, with every step
	// rolled back.
	CommitReward(ctx context.Context, commit *RewardCommit) error
}
