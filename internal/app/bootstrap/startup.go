// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	catalogstore "github.com/impactlens/impactlens/internal/app/store/catalog"
	"github.com/impactlens/impactlens/internal/app/system/auth"
	"go.uber.org/zap"
)

// Startup runs after backends are connected and the schema is ensured.
// It initializes the session store and seeds any baseline catalog data.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return err
	}

	// Log catalog size so an empty catalog is visible at boot. Domains and
	// filters are managed by admins at runtime, not seeded here.
	store := catalogstore.New(deps.MongoDatabase)
	domains, err := store.ListDomains(ctx)
	if err != nil {
		logger.Warn("could not list impact domains at startup", zap.Error(err))
		return nil
	}
	logger.Info("startup complete", zap.Int("impact_domains", len(domains)))
	return nil
}
