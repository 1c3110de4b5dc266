package testutil

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	draftstore "github.com/impactlens/impactlens/internal/app/store/drafts"
	"github.com/redis/go-redis/v9"
)

// SetupTestRedis starts an in-process Redis and returns a client bound to it.
// The server is torn down during cleanup.
func SetupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mr
}

// SetupDraftStore returns a draft store backed by an in-process Redis with a
// test-friendly TTL.
func SetupDraftStore(t *testing.T) (*draftstore.Store, *miniredis.Miniredis) {
	t.Helper()

	rdb, mr := SetupTestRedis(t)
	return draftstore.New(rdb, time.Hour), mr
}
