package setup

import (
	"github.com/adcoin/adcoin-reward-service/internal/usecase"
)

type UseCases struct {
	UserUsecase     usecase.UserUsecase
	WalletUsecase   usecase.WalletUsecase
	ViewUsecase     usecase.ViewUsecase
	QueueUsecase    usecase.QueueUsecase
	CampaignUsecase usecase.CampaignUsecase
	AdUsecase       usecase.AdUsecase
	FraudUsecase    usecase.FraudUsecase
	IngestUsecase   usecase.IngestUsecase
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	userUsecase := usecase.NewDefaultUserUsecase(deps.Repositories.UserRepo)
	walletUsecase := usecase.NewDefaultWalletUsecase(deps.Repositories.WalletRepo)

	fraudUsecase := usecase.NewDefaultFraudUsecase(
		deps.Repositories.ViewRepo,
		deps.Repositories.FraudRepo,
		deps.Publisher,
		deps.Metrics,
		deps.Config.Fraud,
	)

	viewUsecase := usecase.NewDefaultViewUsecase(
		deps.Repositories.ViewRepo,
		deps.Repositories.AdRepo,
		deps.Repositories.CampaignRepo,
		fraudUsecase,
		deps.Publisher,
		deps.Metrics,
		deps.Config.Rewards,
	)

	queueUsecase := usecase.NewDefaultQueueUsecase(
		deps.Repositories.ViewRepo,
		deps.Repositories.AdRepo,
		deps.Repositories.CampaignRepo,
		deps.Resolver,
		deps.Metrics,
	)

	campaignUsecase := usecase.NewDefaultCampaignUsecase(
		deps.Repositories.CampaignRepo,
		deps.Repositories.AdRepo,
		deps.Publisher,
		deps.Metrics,
		deps.Config.Rewards,
	)

	adUsecase := usecase.NewDefaultAdUsecase(
		deps.Repositories.AdRepo,
		deps.Repositories.IngestRepo,
		deps.Prober,
		deps.Resolver,
	)

	ingestUsecase := usecase.NewDefaultIngestUsecase(
		deps.Repositories.IngestRepo,
		deps.Repositories.AdRepo,
		deps.Prober,
		deps.Resolver,
		deps.Metrics,
		deps.Config.Ingest,
	)

	return &UseCases{
		UserUsecase:     userUsecase,
		WalletUsecase:   walletUsecase,
		ViewUsecase:     viewUsecase,
		QueueUsecase:    queueUsecase,
		CampaignUsecase: campaignUsecase,
		AdUsecase:       adUsecase,
		FraudUsecase:    fraudUsecase,
		IngestUsecase:   ingestUsecase,
	}, nil
}
