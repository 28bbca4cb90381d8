package mq

import (
	"context"

	"github.com/GlebRadaev/translator/pkg/workerpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Handle func(ctx context.Context, body []byte) error

type Consumer interface {
	Consume(ctx context.Context, prefetch int, queue string, handler Handle) error
}

// Runner executes deliveries off the consume loop. When nil, deliveries
// are handled one at a time on the loop itself.
type Runner interface {
	AddTask(ctx context.Context, task workerpool.Task) error
}

type RabbitConsumer struct {
	ch     *amqp.Channel
	runner Runner
}

func NewRabbitConsumer(ch *amqp.Channel, runner Runner) *RabbitConsumer {
	return &RabbitConsumer{ch: ch, runner: runner}
}

func (c *RabbitConsumer) Consume(ctx context.Context, prefetch int, queue string, handler Handle) error {
	if prefetch <= 0 {
		prefetch = 1
	}

	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return err
	}

	tag := "consumer." + queue
	deliveries, err := c.ch.Consume(
		queue,
		tag,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	return dispatch(ctx, deliveries, c.runner, handler, func() {
		_ = c.ch.Cancel(tag, false)
	})
}

func dispatch(ctx context.Context, deliveries <-chan amqp.Delivery, runner Runner, handler Handle, cancel func()) error {
	for {
		select {
		case <-ctx.Done():
			cancel()
			return ctx.Err()

		case d, ok := <-deliveries:
			if !ok {
				return nil
			}

			if runner == nil {
				_ = settle(ctx, d, handler)
				continue
			}

			err := runner.AddTask(ctx, func() error {
				return settle(ctx, d, handler)
			})
			if err != nil {
				_ = d.Nack(false, true)
				cancel()
				return err
			}
		}
	}
}

// settle runs handler for one delivery and acks it, or nacks it with
// requeue when the error is temporary.
func settle(ctx context.Context, d amqp.Delivery, handler Handle) error {
	err := handler(ctx, d.Body)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			zap.L().Error("Failed to ack delivery", zap.Uint64("deliveryTag", d.DeliveryTag), zap.Error(ackErr))
		}
		return nil
	}

	requeue := shouldRequeue(err)
	if nackErr := d.Nack(false, requeue); nackErr != nil {
		zap.L().Error("Failed to nack delivery", zap.Uint64("deliveryTag", d.DeliveryTag), zap.Error(nackErr))
	}
	return err
}
