package usecase

import (
	"github.com/adcoin/adcoin-reward-service/internal/infrastructure/kafka"
)

// EventPublisher is the slice of the kafka publisher the usecases emit
// through. Tests substitute a recording double.
type EventPublisher interface {
	PublishViewCompleted(event kafka.ViewCompletedEvent) error
	PublishCampaignCreated(event kafka.CampaignCreatedEvent) error
	PublishFraudFlag(event kafka.FraudFlagEvent) error
}
