package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"ecommerce-service/internal/config"
	amqpctrl "ecommerce-service/internal/controllers/amqp"
	"ecommerce-service/internal/infra"
	mmysql "ecommerce-service/internal/infra/mysql"
	"ecommerce-service/internal/infra/rabbitmq"
	mysqlrepo "ecommerce-service/internal/repository/mysql"
	"ecommerce-service/internal/services"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := mmysql.NewMySQL(cfg)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	notificationRepo := mysqlrepo.NewNotificationRepository(db)
	mailer := infra.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom, cfg.EmailEnabled)
	notifications := services.NewNotificationService(notificationRepo, mailer)
	listener := amqpctrl.NewOrderEventListener(notifications)

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQURL, cfg.OrderExchange)
	if err != nil {
		log.Fatalf("failed to init consumer: %v", err)
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	for queue, handler := range listener.Handlers() {
		queue, handler := queue, handler
		g.Go(func() error {
			return consumer.Consume(ctx, queue, handler)
		})
	}

	log.Info("notification worker started")
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.WithField("error", err).Error("worker stopped")
	}
}
