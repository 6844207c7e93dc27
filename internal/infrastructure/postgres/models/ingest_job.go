package models

import (
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
)

type MediaIngestJobModel struct {
	ID        string              `gorm:"primaryKey;type:uuid"`
	AdID      string              `gorm:"type:uuid;not null;uniqueIndex:idx_ingest_ad"`
	Status    domain.IngestStatus `gorm:"index:idx_ingest_status"`
	Attempts  int                 `gorm:"not null;default:0"`
	LastError string
	CreatedAt time.Time `gorm:"index:idx_ingest_created_at"`
	UpdatedAt time.Time
}
