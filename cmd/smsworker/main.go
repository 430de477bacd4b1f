package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/esports-tournament/cmd/config"
	"github.com/muhammadheryan/esports-tournament/thirdparty/msg91"
	"github.com/muhammadheryan/esports-tournament/thirdparty/rabbitmq"
	"github.com/muhammadheryan/esports-tournament/utils/logger"
	"go.uber.org/zap"
)

// smsworker delivers queued one-time codes through the MSG91 Flow API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if !cfg.RabbitMQ.Enabled() {
		logger.Fatal("RABBITMQ_HOST is required for the sms worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sender := msg91.NewFlowChannel(cfg.MSG91, &http.Client{Timeout: cfg.MSG91.Timeout})

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ, sender)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	if err := consumer.Start(ctx); err != nil {
		_ = consumer.Close()
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("sms worker consuming", zap.String("host", cfg.RabbitMQ.Host))

	<-ctx.Done()
	logger.Info("sms worker stopping")
}
