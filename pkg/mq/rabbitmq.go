package mq

import (
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var ErrConnectionClosed = errors.New("connection is closed")

type RabbitMQ struct {
	conn *amqp.Connection
}

func NewConnection(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		zap.L().Error("Failed to connect to RabbitMQ", zap.Error(err))
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	zap.L().Info("Successfully connected to RabbitMQ")
	return &RabbitMQ{conn: conn}, nil
}

func (r *RabbitMQ) OpenChannel() (*amqp.Channel, error) {
	if r.conn == nil || r.conn.IsClosed() {
		return nil, ErrConnectionClosed
	}

	ch, err := r.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return ch, nil
}

// DeclareQueues declares durable queues so publishers and consumers can
// start in any order.
func (r *RabbitMQ) DeclareQueues(queues ...string) error {
	ch, err := r.OpenChannel()
	if err != nil {
		return fmt.Errorf("failed to open channel for topology: %w", err)
	}
	defer ch.Close()

	for _, queue := range queues {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", queue, err)
		}
	}

	zap.L().Info("Queues declared successfully", zap.Strings("queues", queues))
	return nil
}

func (r *RabbitMQ) CreatePublisher() (*RabbitPublisher, error) {
	ch, err := r.OpenChannel()
	if err != nil {
		return nil, fmt.Errorf("failed to get channel for publisher: %w", err)
	}
	return NewRabbitPublisher(ch), nil
}

func (r *RabbitMQ) CreateConsumer(runner Runner) (*RabbitConsumer, error) {
	ch, err := r.OpenChannel()
	if err != nil {
		return nil, fmt.Errorf("failed to get channel for consumer: %w", err)
	}
	return NewRabbitConsumer(ch, runner), nil
}

func (r *RabbitMQ) Close() error {
	if r.conn != nil && !r.conn.IsClosed() {
		return r.conn.Close()
	}
	return nil
}
