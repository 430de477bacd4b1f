package sms

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/esports-tournament/utils/logger"
	"go.uber.org/zap"
)

// Message is a one-time code addressed to a phone number.
type Message struct {
	Phone string
	Code  string
	// TrackingID identifies the issuance when the provider returns no request id.
	TrackingID string
	ExpiresAt  time.Time
}

// Sender delivers a Message and returns the provider request id, which may be empty.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ErrDeliveryFailed is returned when no channel accepted the message.
var ErrDeliveryFailed = errors.New("sms delivery failed")

type fallbackSender struct {
	primary  Sender
	fallback Sender
}

// NewFallbackSender tries primary first and fallback at most once after it.
// A nil fallback disables the second attempt.
func NewFallbackSender(primary, fallback Sender) Sender {
	return &fallbackSender{primary: primary, fallback: fallback}
}

func (s *fallbackSender) Send(ctx context.Context, msg Message) (string, error) {
	requestID, err := s.primary.Send(ctx, msg)
	if err == nil {
		return requestID, nil
	}
	logger.Warn("[sms] primary channel failed", zap.String("phone", msg.Phone), zap.String("error", err.Error()))

	if s.fallback == nil {
		return "", errors.Join(ErrDeliveryFailed, err)
	}

	requestID, fallbackErr := s.fallback.Send(ctx, msg)
	if fallbackErr != nil {
		logger.Error("[sms] fallback channel failed", zap.String("phone", msg.Phone), zap.String("error", fallbackErr.Error()))
		return "", errors.Join(ErrDeliveryFailed, err, fallbackErr)
	}
	return requestID, nil
}
