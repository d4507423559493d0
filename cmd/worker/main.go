package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/gocatalog/pkg/app"
	"github.com/ghuser/gocatalog/pkg/cache"
	"github.com/ghuser/gocatalog/pkg/config"
	"github.com/ghuser/gocatalog/pkg/database"
	"github.com/ghuser/gocatalog/pkg/events"
	"github.com/ghuser/gocatalog/pkg/logger"
	"github.com/ghuser/gocatalog/pkg/telemetry"
	catalogEvents "github.com/ghuser/gocatalog/services/catalog/domain/events"
	"github.com/ghuser/gocatalog/services/catalog/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all catalog event handlers.
// Add new topics here as more events are published.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := []string{catalogEvents.TopicItemAdded, catalogEvents.TopicItemChanged}
	handler := handleItemMutation(a)

	for _, topic := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		topic := topic
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}()
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// itemEventEnvelope is the subset of the item event payloads the worker
// needs; added and changed events share these fields.
type itemEventEnvelope struct {
	ItemID int64  `json:"itemId"`
	Slug   string `json:"slug"`
}

// handleItemMutation returns a handler for item added/changed events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Reloads the projection from Postgres and warms the Redis read-model cache
// so subsequent GetByID calls are served from cache.
func handleItemMutation(a *app.Application) func(context.Context, *message.Message) error {
	itemCache := cache.NewItemCache(a.Redis)
	repo := postgres.NewItemRepository(a.Db, nil)

	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEventEnvelope
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		proj, err := repo.GetByID(ctx, evt.ItemID)
		if err != nil {
			// Item may have been deleted between publish and delivery;
			// drop the stale cache entry and ack.
			a.Logger.WarnContext(ctx, "item gone before cache warm, invalidating",
				"item_id", evt.ItemID, "error", err)
			_ = itemCache.Delete(ctx, evt.ItemID)
			return nil
		}

		if err := itemCache.Set(ctx, &cache.CachedItem{
			ID:                proj.ID,
			Name:              proj.Name,
			Slug:              proj.Slug,
			Description:       proj.Description,
			BrandID:           proj.BrandID,
			BrandLabel:        proj.BrandLabel,
			CategoryID:        proj.CategoryID,
			CategoryLabel:     proj.CategoryLabel,
			Price:             proj.Price,
			AvailableStock:    proj.AvailableStock,
			MaxStockThreshold: proj.MaxStockThreshold,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"item_id", evt.ItemID, "slug", evt.Slug)
		}

		return nil
	}
}
