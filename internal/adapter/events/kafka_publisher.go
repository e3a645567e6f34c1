package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/core/port"
)

var _ port.EventPublisher = (*KafkaPublisher)(nil)

// KafkaPublisher writes campaign events to a single topic keyed by
// campaign id, so all events of one campaign land on one partition in
// commit order.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher writing to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, timeout time.Duration) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka publisher requires at least one broker")
	}
	if topic == "" {
		return nil, errors.New("kafka publisher requires a topic")
	}
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
			WriteTimeout: timeout,
		},
	}, nil
}

// Publish writes e synchronously.
func (p *KafkaPublisher) Publish(ctx context.Context, e domain.Event) error {
	msg, err := encode(e)
	if err != nil {
		return err
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event: %w", e.Type, err)
	}
	return nil
}

// Close flushes pending writes.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type eventMessage struct {
	Type          string      `json:"type"`
	CampaignID    uuid.UUID   `json:"campaignId"`
	ActorID       uuid.UUID   `json:"actorId"`
	Status        string      `json:"status,omitempty"`
	InfluencerIDs []uuid.UUID `json:"influencerIds,omitempty"`
	Count         int         `json:"count,omitempty"`
	OccurredAt    time.Time   `json:"occurredAt"`
}

func encode(e domain.Event) (kafka.Message, error) {
	payload, err := json.Marshal(eventMessage{
		Type:          string(e.Type),
		CampaignID:    e.CampaignID,
		ActorID:       e.ActorID,
		Status:        e.Status,
		InfluencerIDs: e.InfluencerIDs,
		Count:         e.Count,
		OccurredAt:    e.OccurredAt,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s event: %w", e.Type, err)
	}
	return kafka.Message{
		Key:     []byte(e.CampaignID.String()),
		Value:   payload,
		Headers: []kafka.Header{{Key: "event-type", Value: []byte(e.Type)}},
		Time:    e.OccurredAt,
	}, nil
}
