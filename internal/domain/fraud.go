package domain

import (
	"context"
	"time"
)

const (
	FraudReasonSharedIP          = "ip_shared_multiple_users"
	FraudReasonSharedFingerprint = "fingerprint_shared_multiple_users"
)

// FraudFlag is an advisory abuse signal. It never blocks a transaction.
type FraudFlag struct {
	ID        string
	UserID    string
	Reason    string
	Severity  int32
	CreatedAt time.Time
}

type FraudRepository interface {
	CreateFlag(ctx context.Context, flag *FraudFlag) error
	ListRecentFlags(ctx context.Context, limit int) ([]*FraudFlag, error)
}
