// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	catalogstore "github.com/impactlens/impactlens/internal/app/store/catalog"
	organizationstore "github.com/impactlens/impactlens/internal/app/store/organizations"
	surveystore "github.com/impactlens/impactlens/internal/app/store/surveys"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

// ConnectDB establishes the MongoDB and Redis connections used by the app.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appCfg.MongoURI))
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("ping MongoDB: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     appCfg.RedisAddr,
		Password: appCfg.RedisPassword,
		DB:       appCfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("ping Redis: %w", err)
	}

	logger.Info("connected to backends",
		zap.String("mongo_database", appCfg.MongoDatabase),
		zap.String("redis_addr", appCfg.RedisAddr))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
		Redis:         rdb,
	}, nil
}

// EnsureSchema creates the MongoDB indexes the stores depend on. It runs once
// at startup, after ConnectDB and before the handler is built.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db := deps.MongoDatabase
	if err := catalogstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure catalog indexes: %w", err)
	}
	if err := surveystore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure survey indexes: %w", err)
	}
	if err := organizationstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure organization indexes: %w", err)
	}

	logger.Info("schema ensured")
	return nil
}
