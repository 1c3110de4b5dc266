// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS, logging,
// CORS, body limits); AppConfig is everything specific to ImpactLens.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Redis configuration for draft sessions
	RedisAddr     string // host:port of the Redis server
	RedisPassword string // Redis password (blank for none)
	RedisDB       int    // Redis logical database number

	// Draft sessions
	DraftTTL time.Duration // how long an untouched draft survives

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)
}
