package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fulfilld/ordergraph/internal/bridge"
	"github.com/fulfilld/ordergraph/internal/config"
	"github.com/fulfilld/ordergraph/internal/db"
	"github.com/fulfilld/ordergraph/internal/graph"
	"github.com/fulfilld/ordergraph/internal/kafka"
	"github.com/fulfilld/ordergraph/internal/logger"
	"github.com/fulfilld/ordergraph/internal/repository/mongodb"
	"github.com/fulfilld/ordergraph/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer log.Sync()

	cfg := config.FromEnv()
	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY is not set, query generation will fail")
	}

	client, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatal("Database init error", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("Mongo disconnect failed", zap.Error(err))
		}
	}()

	orderRepo := mongodb.NewOrderRepo(db.Orders(client, cfg))

	schema, err := graph.New(orderRepo)
	if err != nil {
		log.Fatal("Schema build error", zap.Error(err))
	}

	queryBridge := bridge.New(bridge.Config{
		APIKey:    cfg.OpenAIAPIKey,
		Model:     cfg.OpenAIModel,
		BaseURL:   cfg.OpenAIBaseURL,
		Timeout:   cfg.BridgeTimeout,
		SchemaSDL: schema.SDL(),
	}, log)

	var producer kafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = kafka.NewWriterProducer(cfg.KafkaBrokers)
	} else {
		producer = kafka.NewConsoleProducer()
	}

	srv := server.New(schema, queryBridge, client, producer, cfg.AuditTopic, log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, cfg.Port)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}

	log.Info("Server gracefully stopped")
}
