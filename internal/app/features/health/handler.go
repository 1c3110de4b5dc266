// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/impactlens/impactlens/internal/app/system/httpjson"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// Handler answers liveness and readiness probes.
type Handler struct {
	Mongo *mongo.Client
	Redis *redis.Client
	Log   *zap.Logger
}

func NewHandler(mc *mongo.Client, rc *redis.Client, logger *zap.Logger) *Handler {
	return &Handler{Mongo: mc, Redis: rc, Log: logger}
}

type status struct {
	Status string `json:"status"`
	Mongo  string `json:"mongo"`
	Redis  string `json:"redis"`
}

// ServeHealth pings both backends and reports per-backend state. Any failed
// backend flips the overall status and the HTTP code to 503.
func (h *Handler) ServeHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	st := status{Status: "ok", Mongo: "ok", Redis: "ok"}
	code := http.StatusOK

	if err := h.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("mongo ping failed", zap.Error(err))
		st.Mongo = "unreachable"
	}
	if err := h.Redis.Ping(ctx).Err(); err != nil {
		h.Log.Warn("redis ping failed", zap.Error(err))
		st.Redis = "unreachable"
	}
	if st.Mongo != "ok" || st.Redis != "ok" {
		st.Status = "degraded"
		code = http.StatusServiceUnavailable
	}

	httpjson.Write(h.Log, w, code, st)
}
