// Package kafka publishes cargo application events to Kafka topics.
// Messages are JSON encoded and keyed by tracking id, so all events of one
// cargo land in the same partition and keep their order.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Topic names for cargo application events.
const (
	TopicCargoHandled     = "cargo.handled"
	TopicCargoMisdirected = "cargo.misdirected"
	TopicCargoArrived     = "cargo.arrived"
	TopicHandlingReceived = "handling.registration-attempts"
)

// Publisher implements ApplicationEvents over Kafka. One writer per topic.
// The topic set is fixed, so all writers are created up front and the map
// is never written after construction; a single Publisher is shared by
// request handlers and jobs.
type Publisher struct {
	writers map[string]*kafka.Writer
}

// NewPublisher creates a Kafka publisher for the given broker addresses.
func NewPublisher(brokers []string) *Publisher {
	topics := []string{
		TopicCargoHandled,
		TopicCargoMisdirected,
		TopicCargoArrived,
		TopicHandlingReceived,
	}

	writers := make(map[string]*kafka.Writer, len(topics))
	for _, topic := range topics {
		writers[topic] = &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        false,
		}
	}

	return &Publisher{writers: writers}
}

// Close closes all topic writers.
func (p *Publisher) Close() error {
	var firstErr error
	for _, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (p *Publisher) getWriter(topic string) *kafka.Writer {
	return p.writers[topic]
}

func (p *Publisher) publish(ctx context.Context, topic, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.getWriter(topic).WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

// cargoHandledMessage is the wire form of a stored handling event.
type cargoHandledMessage struct {
	TrackingID     string    `json:"trackingId"`
	EventType      string    `json:"eventType"`
	UnLocode       string    `json:"unLocode"`
	VoyageNumber   string    `json:"voyageNumber,omitempty"`
	CompletionTime time.Time `json:"completionTime"`
}

// cargoStatusMessage is the wire form of a cargo level notification.
type cargoStatusMessage struct {
	TrackingID      string `json:"trackingId"`
	TransportStatus string `json:"transportStatus"`
	RoutingStatus   string `json:"routingStatus"`
	Destination     string `json:"destination"`
}

// registrationAttemptMessage is the wire form of a raw handling report.
type registrationAttemptMessage struct {
	TrackingID       string    `json:"trackingId"`
	VoyageNumber     string    `json:"voyageNumber,omitempty"`
	UnLocode         string    `json:"unLocode"`
	EventType        string    `json:"eventType"`
	CompletionTime   time.Time `json:"completionTime"`
	RegistrationTime time.Time `json:"registrationTime"`
}

// CargoWasHandled announces a stored handling event.
func (p *Publisher) CargoWasHandled(ctx context.Context, event handling.HandlingEvent) error {
	message := cargoHandledMessage{
		TrackingID:     event.TrackingID().String(),
		EventType:      event.EventType().String(),
		UnLocode:       event.Location().UnLocode().String(),
		CompletionTime: event.CompletionTime(),
	}
	if eventVoyage := event.Voyage(); eventVoyage != nil {
		message.VoyageNumber = eventVoyage.Number().String()
	}

	return p.publish(ctx, TopicCargoHandled, message.TrackingID, message)
}

// CargoWasMisdirected announces that a cargo is off its itinerary.
func (p *Publisher) CargoWasMisdirected(ctx context.Context, aggregate *cargo.Cargo) error {
	return p.publish(ctx, TopicCargoMisdirected, aggregate.TrackingID().String(), statusMessage(aggregate))
}

// CargoHasArrived announces that a cargo was claimed at its destination.
func (p *Publisher) CargoHasArrived(ctx context.Context, aggregate *cargo.Cargo) error {
	return p.publish(ctx, TopicCargoArrived, aggregate.TrackingID().String(), statusMessage(aggregate))
}

// ReceivedHandlingEventRegistrationAttempt announces a raw handling report
// before validation, for audit consumers.
func (p *Publisher) ReceivedHandlingEventRegistrationAttempt(
	ctx context.Context,
	attempt ports.HandlingEventRegistrationAttempt,
) error {
	message := registrationAttemptMessage{
		TrackingID:       attempt.TrackingID,
		VoyageNumber:     attempt.VoyageNumber,
		UnLocode:         attempt.UnLocode,
		EventType:        attempt.EventType,
		CompletionTime:   attempt.CompletionTime,
		RegistrationTime: attempt.RegistrationTime,
	}

	return p.publish(ctx, TopicHandlingReceived, message.TrackingID, message)
}

func statusMessage(aggregate *cargo.Cargo) cargoStatusMessage {
	delivery := aggregate.Delivery()
	return cargoStatusMessage{
		TrackingID:      aggregate.TrackingID().String(),
		TransportStatus: delivery.TransportStatus().String(),
		RoutingStatus:   delivery.RoutingStatus().String(),
		Destination:     aggregate.RouteSpecification().Destination().UnLocode().String(),
	}
}
