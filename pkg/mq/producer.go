package mq

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/rabbitmq/amqp091-go"
)

// Producer publishes events to a durable topic exchange, routed by type.
type Producer struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

func NewProducer(rabbitmqURL, exchange string) (*Producer, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to open a channel")
	}

	producer := &Producer{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
	}

	// 声明交换机
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		producer.Close()
		return nil, errors.Wrapf(err, "failed to declare exchange %s", exchange)
	}

	return producer, nil
}

func (p *Producer) Publish(ctx context.Context, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal %s event", event.Type)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		event.Type,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    event.EventID,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return errors.Wrapf(err, "failed to publish %s event", event.Type)
	}

	hlog.CtxDebugf(ctx, "Published %s event %s", event.Type, event.EventID)
	return nil
}

func (p *Producer) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// Emit publishes best-effort: a failure is logged and swallowed so it never
// fails the request that produced the event.
func Emit(ctx context.Context, pub Publisher, event *Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, event); err != nil {
		hlog.CtxWarnf(ctx, "publish %s event failed: %v", event.Type, err)
	}
}
