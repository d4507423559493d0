package app

import (
	"github.com/ghuser/gocatalog/pkg/cache"
	"github.com/ghuser/gocatalog/pkg/database"
	"github.com/ghuser/gocatalog/pkg/events"
	"github.com/ghuser/gocatalog/pkg/logger"
)

// Application holds the shared infrastructure dependencies handed to every
// service's route registration during startup.
//
// Logging: app.Logger is backed by a trace-aware handler — prefer the
// context methods so trace_id, span_id and request_id are attached:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//
// Use the context-free methods only for startup and shutdown messages.
type Application struct {
	Db       *database.Database
	Logger   logger.Logger
	EventBus *events.EventBus
	Redis    *cache.RedisClient
}
