package setup

import (
	"fmt"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/config"
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/kafka"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/metrics"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/repository"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/probe"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.RewardConfig
	DB           *gorm.DB
	Publisher    *kafka.RewardEventPublisher
	Metrics      *metrics.RewardMetrics
	Prober       domain.DurationProber
	Resolver     domain.MediaURLResolver
	Repositories *Repositories
}

type Repositories struct {
	UserRepo     domain.UserRepository
	WalletRepo   domain.WalletRepository
	AdRepo       domain.AdRepository
	CampaignRepo domain.CampaignRepository
	ViewRepo     domain.ViewRepository
	FraudRepo    domain.FraudRepository
	IngestRepo   domain.IngestRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	publisher := kafka.NewRewardEventPublisher(brokers)

	repos := &Repositories{
		UserRepo:     repository.NewDefaultUserRepository(db),
		WalletRepo:   repository.NewDefaultWalletRepository(db),
		AdRepo:       repository.NewDefaultAdRepository(db),
		CampaignRepo: repository.NewDefaultCampaignRepository(db),
		ViewRepo:     repository.NewDefaultViewRepository(db),
		FraudRepo:    repository.NewDefaultFraudRepository(db),
		IngestRepo:   repository.NewDefaultIngestRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    publisher,
		Metrics:      metrics.NewRewardMetrics(),
		Prober:       probe.NewFFProbe(cfg.Ingest.FfprobePath, time.Duration(cfg.Ingest.ProbeTimeoutSeconds)*time.Second),
		Resolver:     probe.NewCDNMediaResolver(cfg.Ingest.MediaBaseURL),
		Repositories: repos,
	}, nil
}
