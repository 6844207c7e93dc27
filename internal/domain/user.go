package domain

import (
	"context"
	"time"
)

type User struct {
	ID          string
	ExternalID  string
	DisplayName string
	CreatedAt   time.Time
}

type Wallet struct {
	UserID    string
	Balance   int64
	UpdatedAt time.Time
}

type UserRepository interface {
	EnsureUser(ctx context.Context, externalID, displayName string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
}
