package rmqconsumer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"zentrix-api/config"
	"zentrix-api/internal/infrastructure/mq"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

var actions = map[string]string{
	mq.ActionNotificationCreated:    "NotificationCreated",
	mq.ActionUserRegistered:         "UserRegistered",
	mq.ActionUserUpdated:            "UserUpdated",
	mq.ActionPasswordResetRequested: "PasswordResetRequested",
}

type Consumer struct {
	cfg        config.MQ
	log        *zap.Logger
	out        io.Writer
	conn       *amqp091.Connection
	chConsume  *amqp091.Channel
	chDelivery <-chan amqp091.Delivery
}

func New(cfg config.MQ, logger *zap.Logger, conn *amqp091.Connection) *Consumer {
	return &Consumer{
		cfg:  cfg,
		log:  logger,
		out:  os.Stdout,
		conn: conn,
	}
}

// Connect opens a consumer channel, reusing the publisher's connection when one was given.
func (c *Consumer) Connect(dsn string) error {
	var err error
	if c.conn == nil || c.conn.IsClosed() {
		c.conn, err = amqp091.Dial(dsn)
		if err != nil {
			c.conn = nil
			return fmt.Errorf("amqp dial: %w", err)
		}
	}
	c.chConsume, err = c.conn.Channel()
	if err != nil {
		_ = c.conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range mq.RoutingKeys {
		if err := c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	var err error
	c.chDelivery, err = c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				return
			}
			if err := c.delivery(msg); err != nil {
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			c.chConsume.Close()
			return
		}
	}
}

// delivery is where e-mail dispatch plugs in; for now each event is echoed.
func (c *Consumer) delivery(msg amqp091.Delivery) error {
	_, err := fmt.Fprintf(c.out,
		"Action=%s EventBody=%s\n",
		actions[msg.RoutingKey],
		string(msg.Body),
	)
	return err
}
