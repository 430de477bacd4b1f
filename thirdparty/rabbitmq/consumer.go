package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/muhammadheryan/esports-tournament/cmd/config"
	"github.com/muhammadheryan/esports-tournament/thirdparty/sms"
	"github.com/muhammadheryan/esports-tournament/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drains the delivery queue and hands every code to sender.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	sender  sms.Sender
	now     func() time.Time
}

func NewConsumer(cfg config.RabbitMQConfig, sender sms.Sender) (*Consumer, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Consumer{conn: conn, channel: channel, sender: sender, now: time.Now}, nil
}

// Start begins consuming in the background until ctx is done or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	// process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		otpQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var m OTPDeliveryMessage
	if err := json.Unmarshal(msg.Body, &m); err != nil {
		logger.Error("[smsworker] failed to unmarshal message", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if !c.now().Before(m.ExpiresAt) {
		logger.Warn("[smsworker] dropping expired code", zap.String("tracking_id", m.TrackingID))
		_ = msg.Ack(false)
		return
	}

	requestID, err := c.sender.Send(ctx, sms.Message{
		Phone:      m.Phone,
		Code:       m.Code,
		TrackingID: m.TrackingID,
		ExpiresAt:  m.ExpiresAt,
	})
	if err != nil {
		logger.Error("[smsworker] delivery failed",
			zap.String("tracking_id", m.TrackingID),
			zap.Bool("redelivered", msg.Redelivered),
			zap.String("error", err.Error()))
		// one retry through the queue, then drop
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[smsworker] code delivered",
		zap.String("tracking_id", m.TrackingID),
		zap.String("request_id", requestID))
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
