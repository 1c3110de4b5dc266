// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for ImpactLens. They are
// loaded via WAFFLE's config system: config files, IMPACTLENS_* environment
// variables, and command-line flags, merged in the usual precedence.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "impactlens", Desc: "MongoDB database name"},

	{Name: "redis_addr", Default: "localhost:6379", Desc: "Redis address for draft sessions"},
	{Name: "redis_password", Default: "", Desc: "Redis password (blank for none)"},
	{Name: "redis_db", Default: 0, Desc: "Redis logical database number"},

	{Name: "draft_ttl", Default: "24h", Desc: "How long an untouched draft survives (e.g., 24h, 90m)"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "impactlens-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
}

// LoadConfig loads WAFFLE core config and app-specific config. Called early
// in startup so both WAFFLE and the app see configuration before any
// backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "IMPACTLENS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		RedisAddr:     appValues.String("redis_addr"),
		RedisPassword: appValues.String("redis_password"),
		RedisDB:       appValues.Int("redis_db"),

		DraftTTL: appValues.Duration("draft_ttl", 24*time.Hour),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
	}
	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation before any
// connections are attempted.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.RedisAddr == "" {
		return fmt.Errorf("redis_addr is required for draft sessions")
	}
	if appCfg.DraftTTL <= 0 {
		return fmt.Errorf("draft_ttl must be positive, got %s", appCfg.DraftTTL)
	}
	return nil
}
