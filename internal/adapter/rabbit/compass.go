package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ilyaskrnz/ezan-uygulamasi/internal/domain/models"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger"
	wrap "github.com/ilyaskrnz/ezan-uygulamasi/pkg/logger/wrapper"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/metrics"
	"github.com/ilyaskrnz/ezan-uygulamasi/pkg/rabbit"
)

const (
	ExchangeCompassTopic = "compass_topic"

	QueueCalibrationUpdates = "calibration_updates"

	// calibration routing keys are compass.calibration.<device_id>
	BindingCalibrationAll = "compass.calibration.*"
)

// CompassBroker publishes and consumes calibration updates. The REST side
// publishes when an offset is saved over HTTP, the compass gateway consumes
// so live sockets of the same device follow.
type CompassBroker struct {
	client *rabbit.RabbitMQ
	l      logger.Logger
}

func NewCompassBroker(client *rabbit.RabbitMQ, l logger.Logger) *CompassBroker {
	return &CompassBroker{
		client: client,
		l:      l,
	}
}

// Setup declares the exchange and the calibration queue with its binding.
func (r *CompassBroker) Setup(ctx context.Context) error {
	const op = "CompassBroker.Setup"

	if err := r.client.Channel.ExchangeDeclare(
		ExchangeCompassTopic,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ctx = wrap.WithAction(ctx, "declare_exchange")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to declare exchange: %w", op, err))
	}

	q, err := r.client.Channel.QueueDeclare(
		QueueCalibrationUpdates,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ctx = wrap.WithAction(ctx, "declare_queue")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to declare queue: %w", op, err))
	}

	if err := r.client.Channel.QueueBind(
		q.Name,
		BindingCalibrationAll,
		ExchangeCompassTopic,
		false,
		nil,
	); err != nil {
		ctx = wrap.WithAction(ctx, "bind_queue")
		return wrap.Error(ctx, fmt.Errorf("%s: failed to bind queue: %w", op, err))
	}

	return nil
}

func (r *CompassBroker) publish(ctx context.Context, exchange, routingKey string, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:   "application/json",
		Body:          body,
		Timestamp:     time.Now(),
		CorrelationId: wrap.GetRequestID(ctx),
	}

	if err := retry(5, time.Second*2,
		func() error {
			return r.client.Channel.PublishWithContext(
				ctx,
				exchange,
				routingKey,
				false,
				false,
				pub,
			)
		}); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

// PublishCalibrationUpdate fans a saved calibration offset out to consumers.
func (r *CompassBroker) PublishCalibrationUpdate(ctx context.Context, msg models.CalibrationUpdateMessage) error {
	ctx = wrap.WithAction(ctx, "publish_calibration_update")
	key := fmt.Sprintf("compass.calibration.%s", msg.DeviceID)

	err := r.publish(ctx, ExchangeCompassTopic, key, msg)
	metrics.RecordRabbitMQPublish("compass", QueueCalibrationUpdates, err)
	if err != nil {
		return wrap.Error(ctx, err)
	}
	return nil
}

type CalibrationHandlerFunc func(ctx context.Context, msg models.CalibrationUpdateMessage) error

// ConsumeCalibrationUpdates listens for calibration changes and hands them to fn.
// It blocks until ctx is cancelled and survives connection loss.
func (r *CompassBroker) ConsumeCalibrationUpdates(ctx context.Context, fn CalibrationHandlerFunc) error {
	const op = "CompassBroker.ConsumeCalibrationUpdates"

	for {
		if ctx.Err() != nil {
			r.l.Debug(ctx, "calibration consumer stopped by context")
			return nil
		}

		if err := r.client.EnsureConnection(ctx); err != nil {
			r.l.Error(ctx, "ensure connection failed", err, "op", op)
			time.Sleep(2 * time.Second)
			continue
		}

		msgs, err := r.client.Channel.Consume(QueueCalibrationUpdates, "", false, false, false, false, nil)
		if err != nil {
			r.l.Error(ctx, "consume failed", err, "op", op)
			time.Sleep(2 * time.Second)
			continue
		}

		r.l.Info(ctx, "start consuming calibration updates", "queue", QueueCalibrationUpdates)

	consumeLoop:
		for {
			select {
			case <-ctx.Done():
				r.l.Info(ctx, "calibration consumer shutting down", "op", op)
				return nil

			case msg, ok := <-msgs:
				if !ok {
					r.l.Warn(ctx, "message channel closed, reconnecting...", "op", op)
					time.Sleep(2 * time.Second)
					break consumeLoop
				}

				go r.handleCalibrationUpdate(ctx, fn, msg)
			}
		}
	}
}

func (r *CompassBroker) handleCalibrationUpdate(ctx context.Context, fn CalibrationHandlerFunc, d amqp.Delivery) {
	ctx = wrap.WithAction(ctx, "handle_calibration_update")
	if d.CorrelationId != "" {
		ctx = wrap.WithRequestID(ctx, d.CorrelationId)
	}

	var message models.CalibrationUpdateMessage
	if err := json.Unmarshal(d.Body, &message); err != nil {
		r.l.Error(ctx, "failed to unmarshal calibration update", err)
		metrics.RecordRabbitMQConsume("compass", QueueCalibrationUpdates, err)
		_ = d.Nack(false, false)
		return
	}

	err := fn(ctx, message)
	metrics.RecordRabbitMQConsume("compass", QueueCalibrationUpdates, err)
	if err != nil {
		r.l.Error(ctx, "calibration handler failed", err, "device_id", message.DeviceID)
		_ = d.Nack(false, isRecoverableError(err))
		return
	}

	_ = d.Ack(false)
}
