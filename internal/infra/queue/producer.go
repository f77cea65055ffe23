package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadCapturedPayload is the event published when a visitor converts into
// a lead. Consumed by the notification worker.
type LeadCapturedPayload struct {
	LeadID             string    `json:"lead_id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Phone              string    `json:"phone"`
	Experience         string    `json:"experience,omitempty"`
	CurrentRole        string    `json:"current_role,omitempty"`
	CareerGoals        []string  `json:"career_goals,omitempty"`
	Challenges         []string  `json:"challenges,omitempty"`
	InterestedPrograms []string  `json:"interested_programs,omitempty"`
	SessionID          string    `json:"session_id,omitempty"`
	CapturedAt         time.Time `json:"captured_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadCaptured(ctx context.Context, payload LeadCapturedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return nil
}
