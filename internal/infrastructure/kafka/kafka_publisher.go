package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adcoin/adcoin-reward-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type RewardEventPublisher struct {
	writer *kafka.Writer
}

var _ domain.PublisherPort = (*RewardEventPublisher)(nil)

func NewRewardEventPublisher(brokers []string) *RewardEventPublisher {
	return &RewardEventPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *RewardEventPublisher) Publish(topic string, msgs ...domain.Message) error {
	var km []kafka.Message
	for _, m := range msgs {
		km = append(km, kafka.Message{
			Key:   m.Key,
			Value: m.Value,
			Time:  time.Now(),
			Topic: topic,
		})
	}

	return k.writer.WriteMessages(context.Background(), km...)
}

func (k *RewardEventPublisher) PublishViewCompleted(event ViewCompletedEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(TopicRewardEvents, domain.Message{Key: []byte(event.ViewerID), Value: v})
}

func (k *RewardEventPublisher) PublishCampaignCreated(event CampaignCreatedEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(TopicCampaignEvents, domain.Message{Key: []byte(event.OwnerID), Value: v})
}

func (k *RewardEventPublisher) PublishFraudFlag(event FraudFlagEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.Publish(TopicFraudEvents, domain.Message{Key: []byte(event.UserID), Value: v})
}
