// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown closes backend connections after the HTTP server has drained.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if deps.Redis != nil {
		if err := deps.Redis.Close(); err != nil {
			logger.Warn("error closing Redis", zap.Error(err))
		}
	}
	if deps.MongoClient != nil {
		if err := deps.MongoClient.Disconnect(ctx); err != nil {
			logger.Warn("error disconnecting MongoDB", zap.Error(err))
			return err
		}
	}
	logger.Info("backends closed")
	return nil
}
