package swapqueue

import (
	"context"
	"fmt"
	"preplan-service/internal/app/contracts"
	"preplan-service/internal/pkg/constvars"
	"preplan-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// SwapEvent is published whenever a swap request changes, so downstream
// consumers (mail, push) can notify the affected students.
type SwapEvent struct {
	SwapID         string `json:"swap_id"`
	EventType      string `json:"event_type"`
	AuthorEmail    string `json:"author_email"`
	ActorEmail     string `json:"actor_email,omitempty"`
	OfferSectionID int    `json:"offer_section_id"`
	Status         string `json:"status"`
}

const (
	EventSwapCreated  = "swap.created"
	EventSwapInterest = "swap.interest"
	EventSwapStatus   = "swap.status_changed"
	EventSwapDeleted  = "swap.deleted"
)

type queueService struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewQueueService declares the durable swap event queue and enables
// publisher confirms so events survive broker restarts.
func NewQueueService(conn *amqp.Connection, log *zap.Logger) (contracts.QueuePublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.QueueSwapEvents, // name
		true,                      // durable
		false,                     // autoDelete
		false,                     // exclusive
		false,                     // noWait
		nil,                       // args
	)
	if err != nil {
		return nil, exceptions.ErrQueueFailedToDeclare(err)
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &queueService{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

func (s *queueService) Publish(ctx context.Context, queueName string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("SwapQueue.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, queueName),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queueName, false, false, msg); err != nil {
		return exceptions.ErrQueueFailedToPublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueueFailedToPublish(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueueFailedToPublish(ctx.Err())
	}

	return nil
}
