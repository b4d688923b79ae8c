package rabbitmq

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes amqp messages to a topic exchange.
type RabbitMQ struct {
	channel  *amqp.Channel
	exchange string
}

// NewRabbitMQ returns new RabbitMQ. It declares durable topic exchange if it doesn't exist.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("can't declare exchange %s: %w", exchange, err)
	}

	mq := RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}

	return &mq, nil
}

// Publish publishes persistent message to routing key.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         message,
	}

	if err := mq.channel.PublishWithContext(
		ctx,
		mq.exchange,
		routingKey,
		false,
		false,
		msg,
	); err != nil {
		return fmt.Errorf("can't publish message: %w", err)
	}

	return nil
}

// Close closes RabbitMQ channel.
func (mq *RabbitMQ) Close() error {
	return mq.channel.Close()
}
