package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"bistro-boss/config"
	"bistro-boss/order-agg-svc/internal/service"
	"bistro-boss/order-agg-svc/internal/storage"
)

func main() {
	cfg := config.LoadWorker()

	db := config.MustInitPostgres(cfg.Postgres)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.Redis)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb))
	consumer.Start(ctx)
	log.Println("[order-agg-svc] shut down")
}
