package auditqueue

import (
	"context"
	"sync"

	"arogya-service/internal/app/contracts"
	"arogya-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes submission audit records onto a durable queue. Publishing
// is fire-and-forget from the caller's point of view; a failed publish is
// logged, never surfaced to the clinician.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	mu        sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, exceptions.ErrQueueDeclare(err)
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

func (s *Service) PublishSubmission(ctx context.Context, audit contracts.SubmissionAudit) error {
	body, err := json.Marshal(audit)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	s.log.Info("submission audit published",
		zap.String("queue", s.queueName),
		zap.String("bundle_id", audit.BundleID),
		zap.Bool("submitted", audit.Submitted),
	)
	return nil
}
