package background

import (
	"context"
	"log"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/usecase"
)

type BackgroundTasks struct {
	IngestUsecase usecase.IngestUsecase
	PollInterval  time.Duration
}

func NewBackgroundTasks(ingestUC usecase.IngestUsecase, pollInterval time.Duration) *BackgroundTasks {
	return &BackgroundTasks{
		IngestUsecase: ingestUC,
		PollInterval:  pollInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startIngestLoop(ctx)
}

// startIngestLoop processes at most one ingestion job per tick. A failing
// tick is logged and never stops the loop.
func (bt *BackgroundTasks) startIngestLoop(ctx context.Context) {
	ticker := time.NewTicker(bt.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.IngestUsecase.RunIngestTick(ctx); err != nil {
				log.Printf("Ingest tick error: %v\n", err)
			}
		}
	}
}
