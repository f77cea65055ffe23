package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// LeadNotifier is the contract for alert channels (mail, WhatsApp).
type LeadNotifier interface {
	NotifyLead(ctx context.Context, payload LeadCapturedPayload) error
}

// Worker consumes lead-captured events and fans them out to the sales
// desk. Mail is the primary channel; WhatsApp is best-effort.
type Worker struct {
	Channel  *amqp.Channel
	Mail     LeadNotifier
	WhatsApp LeadNotifier
}

func NewWorker(ch *amqp.Channel, mail, whatsapp LeadNotifier) *Worker {
	return &Worker{Channel: ch, Mail: mail, WhatsApp: whatsapp}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register RabbitMQ consumer")
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadCapturedPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Error().Err(err).Msg("worker: malformed lead event, sending to DLQ")
				// Malformed message. Reject without requeue so the queue keeps moving.
				d.Nack(false, false)
				continue
			}

			log.Info().Str("lead_id", payload.LeadID).Str("email", payload.Email).Msg("worker: processing lead alert")

			if err := w.process(context.Background(), payload); err != nil {
				log.Error().Err(err).Str("lead_id", payload.LeadID).Msg("worker: alert delivery failed")
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Info().Str("queue", queueName).Msg("lead alert worker running")
	<-forever
}

func (w *Worker) process(ctx context.Context, payload LeadCapturedPayload) error {
	if w.Mail != nil {
		if err := w.Mail.NotifyLead(ctx, payload); err != nil {
			return err
		}
	}

	// WhatsApp failure never dead-letters the event once mail went out.
	if w.WhatsApp != nil {
		if err := w.WhatsApp.NotifyLead(ctx, payload); err != nil {
			log.Warn().Err(err).Str("lead_id", payload.LeadID).Msg("worker: whatsapp alert failed")
		}
	}

	return nil
}
