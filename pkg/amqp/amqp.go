package amqp

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// IPublisher emits ledger events for downstream consumers (statement
// mailers, analytics). Publishing is best-effort: a failed publish never
// rolls back the store write.
type IPublisher interface {
	PublishTransactionEvent(ctx context.Context, event TransactionEvent) error
	Close() error
}

type publisher struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
	log          *logrus.Logger
}

// New dials the broker configured by AMQP_URL. When the variable is unset
// the returned publisher is a no-op, so a broker stays optional in
// development.
func New(log *logrus.Logger) (IPublisher, error) {
	url := os.Getenv("AMQP_URL")
	if url == "" {
		log.Info("AMQP_URL not set, ledger events disabled")
		return &noopPublisher{}, nil
	}

	exchangeName := os.Getenv("AMQP_EXCHANGE")
	if exchangeName == "" {
		exchangeName = "gofinance"
	}
	queueName := os.Getenv("AMQP_QUEUE")
	if queueName == "" {
		queueName = "ledger-events"
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &publisher{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
		log:          log,
	}

	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return p, nil
}

func (p *publisher) setup() error {
	err := p.channel.ExchangeDeclare(
		p.exchangeName,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		p.queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = p.channel.QueueBind(
		p.queueName,
		p.queueName, // routing key mirrors the queue name on a direct exchange
		p.exchangeName,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

func (p *publisher) PublishTransactionEvent(ctx context.Context, event TransactionEvent) error {
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName,
		p.queueName,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	p.log.WithFields(logrus.Fields{
		"action":         event.Action,
		"transaction_id": event.TransactionID,
		"exchange":       p.exchangeName,
	}).Debug("Published ledger event")

	return nil
}

func (p *publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

type noopPublisher struct{}

func (n *noopPublisher) PublishTransactionEvent(context.Context, TransactionEvent) error {
	return nil
}

func (n *noopPublisher) Close() error { return nil }
