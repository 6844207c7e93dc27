package domain

import (
	"context"
	"time"
)

type IngestStatus string

const (
	IngestPending    IngestStatus = "PENDING"
	IngestProcessing IngestStatus = "PROCESSING"
	IngestFailed     IngestStatus = "FAILED"
	IngestDone       IngestStatus = "DONE"
)

const (
	IngestErrAdNotFound  = "ad_not_found"
	IngestErrProbeFailed = "probe_failed"
)

// MediaIngestJob backfills a video ad's duration. One job per ad.
type MediaIngestJob struct {
	ID        string
	AdID      string
	Status    IngestStatus
	Attempts  int
	LastError string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type IngestRepository interface {
	// UpsertJob creates the job for the ad or resets an existing one to
	// PENDING, clearing the last error. Attempts are preserved.
	UpsertJob(ctx context.Context, adID string) (*MediaIngestJob, error)
	GetJobByAdID(ctx context.Context, adID string) (*MediaIngestJob, error)
	// FindClaimableJob returns the oldest PENDING or FAILED job with
	// attempts below the limit, or nil when none exists.
	FindClaimableJob(ctx context.Context, maxAttempts int) (*MediaIngestJob, error)
	// ClaimJob conditionally transitions the job to PROCESSING and
	// increments attempts. Returns false when another worker won the race.
	ClaimJob(ctx context.Context, jobID string) (bool, error)
	MarkJobFailed(ctx context.Context, jobID, lastError string) error
	// MarkJobFailedTerminal pins attempts to the cap so the job is never
	// claimed again.
	MarkJobFailedTerminal(ctx context.Context, jobID, lastError string, maxAttempts int) error
	// CompleteJob writes the probed duration onto the ad and marks the job
	// DONE in one transaction.
	CompleteJob(ctx context.Context, jobID, adID string, durationSeconds int64) error
}
