package mappers

import (
	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/postgres/models"
)

func ToGORMAdView(view *domain.AdView) *models.AdViewModel {
	return &models.AdViewModel{
		ID:                   view.ID,
		AdID:                 view.AdID,
		ViewerID:             view.ViewerID,
		StartedAt:            view.StartedAt,
		CompletedAt:          view.CompletedAt,
		Valid:                view.Valid,
		ClientWatchedSeconds: view.ClientWatchedSeconds,
		ClientCompleted:      view.ClientCompleted,
		IPAddress:            view.IPAddress,
		Fingerprint:          view.Fingerprint,
		UserAgent:            view.UserAgent,
	}
}

func ToDomainAdView(model *models.AdViewModel) *domain.AdView {
	return &domain.AdView{
		ID:                   model.ID,
		AdID:                 model.AdID,
		ViewerID:             model.ViewerID,
		StartedAt:            model.StartedAt,
		CompletedAt:          model.CompletedAt,
		Valid:                model.Valid,
		ClientWatchedSeconds: model.ClientWatchedSeconds,
		ClientCompleted:      model.ClientCompleted,
		IPAddress:            model.IPAddress,
		Fingerprint:          model.Fingerprint,
		UserAgent:            model.UserAgent,
	}
}

func ToDomainFraudFlag(model *models.FraudFlagModel) *domain.FraudFlag {
	return &domain.FraudFlag{
		ID:        model.ID,
		UserID:    model.UserID,
		Reason:    model.Reason,
		Severity:  model.Severity,
		CreatedAt: model.CreatedAt,
	}
}

func ToDomainIngestJob(model *models.MediaIngestJobModel) *domain.MediaIngestJob {
	return &domain.MediaIngestJob{
		ID:        model.ID,
		AdID:      model.AdID,
		Status:    model.Status,
		Attempts:  model.Attempts,
		LastError: model.LastError,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
