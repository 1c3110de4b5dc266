// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	catalogfeature "github.com/impactlens/impactlens/internal/app/features/catalog"
	healthfeature "github.com/impactlens/impactlens/internal/app/features/health"
	organizationsfeature "github.com/impactlens/impactlens/internal/app/features/organizations"
	sessionfeature "github.com/impactlens/impactlens/internal/app/features/session"
	surveysfeature "github.com/impactlens/impactlens/internal/app/features/surveys"
	wizardfeature "github.com/impactlens/impactlens/internal/app/features/wizard"
	catalogstore "github.com/impactlens/impactlens/internal/app/store/catalog"
	draftstore "github.com/impactlens/impactlens/internal/app/store/drafts"
	organizationstore "github.com/impactlens/impactlens/internal/app/store/organizations"
	surveystore "github.com/impactlens/impactlens/internal/app/store/surveys"
	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. ImpactLens mounts the health probe, the
// session exchange, the impact catalog, the survey wizard, the published
// survey listing, and the organization directory.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Stores over the shared backends.
	drafts := draftstore.New(deps.Redis, appCfg.DraftTTL)
	catalogStore := catalogstore.New(deps.MongoDatabase)
	surveyStore := surveystore.New(deps.MongoDatabase)
	orgStore := organizationstore.New(deps.MongoDatabase)

	// The catalog service cascades domain/filter removals into open drafts.
	catalogSvc := survey.NewCatalog(catalogStore, drafts)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Redis, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Session exchange: the identity proxy's verified headers become the
	// cookie every other route reads.
	r.Mount("/session", sessionfeature.Routes(sessionfeature.NewHandler(logger)))

	// Impact domain and filter catalog (admin maintenance, shared reads).
	catalogHandler := catalogfeature.NewHandler(catalogSvc, logger)
	r.Mount("/catalog", catalogfeature.Routes(catalogHandler))

	// Survey creation wizard (draft sessions live in Redis).
	wizardHandler := wizardfeature.NewHandler(drafts, catalogSvc, surveyStore, orgStore, logger)
	r.Mount("/wizard", wizardfeature.Routes(wizardHandler))

	// Published surveys.
	surveysHandler := surveysfeature.NewHandler(surveyStore, logger)
	r.Mount("/surveys", surveysfeature.Routes(surveysHandler))

	// Organization directory.
	orgsHandler := organizationsfeature.NewHandler(orgStore, logger)
	r.Mount("/organizations", organizationsfeature.Routes(orgsHandler))

	return r, nil
}
