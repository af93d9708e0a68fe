package main

import (
	"context"
	"log"

	httpapi "bistro-boss/boss-svc/internal/api/http"
	"bistro-boss/boss-svc/internal/auth"
	"bistro-boss/boss-svc/internal/payment"
	"bistro-boss/boss-svc/internal/service"
	"bistro-boss/boss-svc/internal/storage"
	"bistro-boss/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	mongoClient := config.MustInitMongo(cfg.Mongo)
	defer mongoClient.Disconnect(context.Background())

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(cfg.Kafka)
	defer kafkaWriter.Close()

	documents := storage.NewMongoRepository(mongoClient.Database(cfg.Mongo.Database))
	if err := documents.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to ensure indexes:", err)
	}

	orders := storage.NewPostgresRepository(db)
	if err := orders.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	issuer := auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	verifier := auth.NewVerifier(cfg.Auth.Secret)
	processor := payment.NewStripeProcessor(cfg.Stripe.SecretKey)
	webhooks := payment.NewWebhookVerifier(cfg.Stripe.WebhookSecret)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	throttle := storage.NewLoginThrottle(rdb)
	qr := service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}

	accounts := service.NewAccountService(documents, issuer, throttle)
	handler := httpapi.NewHandler(httpapi.Services{
		Accounts: accounts,
		Menu:     service.NewMenuService(documents),
		Carts:    service.NewCartService(documents, documents),
		Reviews:  service.NewReviewService(documents),
		Payments: service.NewPaymentService(processor, webhooks, publisher, cfg.Stripe.Currency),
		Orders:   service.NewOrderService(orders, documents, processor, qr, cfg.Stripe.Currency),
		Stats:    service.NewStatsService(storage.NewPaymentStats(rdb)),
	}, issuer, verifier, cfg.Auth.AllowClaimMinting)

	httpapi.StartServer(":"+cfg.Port, httpapi.NewRouter(handler))
}
