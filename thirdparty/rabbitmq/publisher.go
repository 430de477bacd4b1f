package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/muhammadheryan/esports-tournament/cmd/config"
	"github.com/muhammadheryan/esports-tournament/thirdparty/sms"
	"github.com/rabbitmq/amqp091-go"
)

const (
	otpExchange   = "otp_delivery_exchange"
	otpQueue      = "otp_delivery_queue"
	otpRoutingKey = "otp_delivery"
)

// Publisher hands one-time codes to the delivery queue. It is the fallback
// sms.Sender when a broker is configured.
type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	mu      sync.Mutex
	now     func() time.Time
}

type OTPDeliveryMessage struct {
	Phone      string    `json:"phone"`
	Code       string    `json:"code"`
	TrackingID string    `json:"tracking_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

var _ sms.Sender = (*Publisher)(nil)

func NewPublisher(cfg config.RabbitMQConfig) (*Publisher, error) {
	conn, channel, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel, now: time.Now}, nil
}

func dial(cfg config.RabbitMQConfig) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		otpExchange, // name
		"direct",    // type
		true,        // durable
		false,       // auto-delete
		false,       // internal
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		otpQueue, // name
		true,     // durable
		false,    // auto-delete
		false,    // exclusive
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		otpQueue,      // queue name
		otpRoutingKey, // routing key
		otpExchange,   // exchange
		false,         // no-wait
		nil,           // arguments
	)
}

// Send enqueues msg. The broker drops it once the code has expired, so a
// late worker never delivers a dead code. Delivery is asynchronous and no
// provider request id is known yet.
func (p *Publisher) Send(ctx context.Context, msg sms.Message) (string, error) {
	body, err := json.Marshal(OTPDeliveryMessage{
		Phone:      msg.Phone,
		Code:       msg.Code,
		TrackingID: msg.TrackingID,
		ExpiresAt:  msg.ExpiresAt,
	})
	if err != nil {
		return "", err
	}

	ttl := msg.ExpiresAt.Sub(p.now()).Milliseconds()
	if ttl <= 0 {
		return "", fmt.Errorf("otp for %s already expired", msg.Phone)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.channel.PublishWithContext(ctx,
		otpExchange,   // exchange
		otpRoutingKey, // routing key
		false,         // mandatory
		false,         // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    msg.TrackingID,
			Expiration:   strconv.FormatInt(ttl, 10),
			Body:         body,
		},
	)
	if err != nil {
		return "", err
	}
	return "", nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
