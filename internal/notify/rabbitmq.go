package notify

import (
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	ExchangeName      = "billing"
	RoutingKeySuccess = "transaction.success"
	RoutingKeyFailure = "transaction.failure"
)

// RabbitNotifier publishes transaction events to a RabbitMQ exchange.
// Delivery failures are logged and dropped; subscribers get no stronger
// guarantee than "published before the operation returned".
type RabbitNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger
}

func NewRabbitNotifier(amqpURL string, logger *zap.Logger) (*RabbitNotifier, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitNotifier{conn: conn, channel: channel, logger: logger}, nil
}

func (n *RabbitNotifier) Publish(event Event) {
	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Warn("failed to marshal transaction event", zap.Error(err))
		return
	}

	routingKey := RoutingKeyFailure
	if event.Success {
		routingKey = RoutingKeySuccess
	}

	err = n.channel.Publish(
		ExchangeName,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
			Timestamp:   time.Now(),
		},
	)
	if err != nil {
		n.logger.Warn("failed to publish transaction event",
			zap.String("event_id", event.ID),
			zap.String("routing_key", routingKey),
			zap.Error(err),
		)
	}
}

// Close closes the channel and connection.
func (n *RabbitNotifier) Close() error {
	if err := n.channel.Close(); err != nil {
		return err
	}
	return n.conn.Close()
}
