package queue

import (
	"arogya-service/internal/pkg/constvars"
	"arogya-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// DiseaseEventMessage is the notification payload published after a disease
// detection is recorded against a patient.
type DiseaseEventMessage struct {
	Username   string    `json:"username"`
	Disease    string    `json:"disease"`
	DetectedAt time.Time `json:"detected_at"`
	AshaID     string    `json:"asha_id,omitempty"`
}

type Publisher interface {
	PublishDiseaseEvent(ctx context.Context, message *DiseaseEventMessage) error
}

type rabbitPublisher struct {
	ch  *amqp.Channel
	log *zap.Logger
}

// NewPublisher opens a channel and declares the durable notification queue.
func NewPublisher(conn *amqp.Connection, log *zap.Logger) (Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.DiseaseEventQueueName, // name
		true,                            // durable
		false,                           // autoDelete
		false,                           // exclusive
		false,                           // noWait
		nil,                             // args
	)
	if err != nil {
		return nil, err
	}
	log.Info("notification queue declared", zap.String("queue", constvars.DiseaseEventQueueName))

	return &rabbitPublisher{ch: ch, log: log}, nil
}

func (p *rabbitPublisher) PublishDiseaseEvent(ctx context.Context, message *DiseaseEventMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrQueuePublishMessage(err, constvars.DiseaseEventQueueName)
	}

	err = p.ch.PublishWithContext(ctx,
		"",                              // exchange
		constvars.DiseaseEventQueueName, // routing key
		false,                           // mandatory
		false,                           // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublishMessage(err, constvars.DiseaseEventQueueName)
	}
	return nil
}
