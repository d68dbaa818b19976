// Package event publishes domain events to a RabbitMQ topic exchange.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

type Type string

const (
	AttemptSubmitted   Type = "attempt.submitted"
	LeaderboardUpdated Type = "leaderboard.updated"
)

type Event struct {
	ID         string      `json:"id"`
	Type       Type        `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

type AttemptSubmittedPayload struct {
	AttemptID        uint      `json:"attempt_id"`
	TestID           uint      `json:"test_id"`
	UserID           uint      `json:"user_id"`
	Score            float64   `json:"score"`
	TimeTakenSeconds int       `json:"time_taken_seconds"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

type LeaderboardUpdatedPayload struct {
	TestID     uint     `json:"test_id"`
	AttemptID  uint     `json:"attempt_id"`
	UserID     uint     `json:"user_id"`
	Rank       int      `json:"rank"`
	Percentile float64  `json:"percentile"`
	Periods    []string `json:"periods"`
}

type Publisher interface {
	Publish(ctx context.Context, eventType Type, payload interface{}) error
	Close() error
}

func newEvent(eventType Type, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type amqpPublisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

// NewPublisher dials url and declares exchange. An empty url returns a
// publisher that only logs.
func NewPublisher(url, exchange string) (Publisher, error) {
	if url == "" {
		log.Warn().Msg("AMQP URL is empty, event publishing is disabled")
		return NoopPublisher{}, nil
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Info().Str("exchange", exchange).Msg("Event publisher initialized")
	return &amqpPublisher{conn: conn, channel: channel, exchange: exchange}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, eventType Type, payload interface{}) error {
	evt := newEvent(eventType, payload)
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(ctx,
		p.exchange,        // exchange
		string(eventType), // routing key
		false,             // mandatory
		false,             // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    evt.ID,
			Timestamp:    evt.OccurredAt,
			Body:         body,
			Headers:      amqp091.Table{"event_type": string(eventType)},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", eventType, err)
	}
	log.Debug().Str("eventID", evt.ID).Str("type", string(eventType)).Msg("Published event")
	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Close(); err != nil {
		log.Warn().Err(err).Msg("Closing AMQP channel")
	}
	return p.conn.Close()
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, eventType Type, payload interface{}) error {
	log.Debug().Str("type", string(eventType)).Msg("Event publishing disabled, skipping event")
	return nil
}

func (NoopPublisher) Close() error { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	Events []Event
}

func (r *Recorder) Publish(ctx context.Context, eventType Type, payload interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, newEvent(eventType, payload))
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Types() []Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Type, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Type
	}
	return out
}
