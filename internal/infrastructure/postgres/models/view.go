package models

import "time"

type AdViewModel struct {
	ID                   string    `gorm:"primaryKey;type:uuid"`
	AdID                 string    `gorm:"type:uuid;not null;index:idx_view_ad"`
	ViewerID             string    `gorm:"type:uuid;not null;index:idx_view_viewer_started"`
	StartedAt            time.Time `gorm:"index:idx_view_viewer_started;index:idx_view_ip_started,priority:2;index:idx_view_fp_started,priority:2"`
	CompletedAt          *time.Time
	Valid                bool `gorm:"not null;default:false"`
	ClientWatchedSeconds int64
	ClientCompleted      bool
	IPAddress            string `gorm:"index:idx_view_ip_started,priority:1"`
	Fingerprint          string `gorm:"index:idx_view_fp_started,priority:1"`
	UserAgent            string
}

type DailyEarningModel struct {
	UserID string `gorm:"primaryKey;type:uuid"`
	Day    string `gorm:"primaryKey;size:10"`
	Coins  int64  `gorm:"not null"`
}

type FraudFlagModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"type:uuid;not null;index:idx_fraud_user"`
	Reason    string
	Severity  int32
	CreatedAt time.Time `gorm:"index:idx_fraud_created_at"`
}
