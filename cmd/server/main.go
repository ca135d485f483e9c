package main

import (
	"time"

	"ecommerce-service/internal/config"
	httpctrl "ecommerce-service/internal/controllers/http"
	"ecommerce-service/internal/infra"
	mmysql "ecommerce-service/internal/infra/mysql"
	"ecommerce-service/internal/infra/rabbitmq"
	mysqlrepo "ecommerce-service/internal/repository/mysql"
	"ecommerce-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
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

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	paymentRepo := mysqlrepo.NewPaymentRepository(db)
	notificationRepo := mysqlrepo.NewNotificationRepository(db)

	productClient := infra.NewProductClient(cfg.ProductServiceURL, 2*time.Second)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.OrderExchange)
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisHost + ":" + cfg.RedisPort,
		DB:           0,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	orders := services.NewOrderService(orderRepo, productClient, publisher)
	payments := services.NewPaymentService(paymentRepo)
	mailer := infra.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom, cfg.EmailEnabled)
	notifications := services.NewNotificationService(notificationRepo, mailer)

	handler := httpctrl.NewHandler(orders, payments, notifications, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	log.WithField("port", cfg.Port).Info("starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
