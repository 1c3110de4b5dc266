// internal/app/store/drafts/draftstore.go
package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/impactlens/impactlens/internal/app/survey"
	"github.com/impactlens/impactlens/internal/domain/models"
	"github.com/redis/go-redis/v9"
)

// Store keeps in-progress survey drafts in Redis as JSON blobs. A draft is a
// wizard session, not a durable document: every write refreshes the TTL and
// an abandoned draft simply expires. Publish and cancel delete the key.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

const keyPrefix = "draft:"

var ErrNotFound = errors.New("draft not found")

func New(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func key(id string) string { return keyPrefix + id }

// Put writes the draft and refreshes its TTL.
func (s *Store) Put(ctx context.Context, d *models.SurveyDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft %s: %w", d.ID, err)
	}
	return s.rdb.Set(ctx, key(d.ID), raw, s.ttl).Err()
}

// Get loads a draft by id.
func (s *Store) Get(ctx context.Context, id string) (*models.SurveyDraft, error) {
	raw, err := s.rdb.Get(ctx, key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var d models.SurveyDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("unmarshal draft %s: %w", id, err)
	}
	return &d, nil
}

// Delete discards a draft. Deleting a missing draft is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, key(id)).Err()
}

// UnselectSector drops the domain id from every live draft's selections.
// Part of the catalog deletion cascade; questions tagged with the domain are
// left in place and surface as dangling references at publish.
func (s *Store) UnselectSector(ctx context.Context, domainID string) error {
	return s.forEach(ctx, func(d *models.SurveyDraft) bool {
		if !d.HasSector(domainID) {
			return false
		}
		survey.UnselectSector(d, domainID)
		return true
	})
}

// UnselectFilter drops the filter id from every live draft's selections.
func (s *Store) UnselectFilter(ctx context.Context, filterID string) error {
	return s.forEach(ctx, func(d *models.SurveyDraft) bool {
		for _, id := range d.SelectedFilters {
			if id == filterID {
				survey.UnselectFilter(d, filterID)
				return true
			}
		}
		return false
	})
}

// forEach scans all draft keys and rewrites the drafts mutate reports as
// changed. Drafts that expire mid-scan are skipped.
func (s *Store) forEach(ctx context.Context, mutate func(*models.SurveyDraft) bool) error {
	iter := s.rdb.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		raw, err := s.rdb.Get(ctx, k).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return err
		}
		var d models.SurveyDraft
		if err := json.Unmarshal(raw, &d); err != nil {
			return fmt.Errorf("unmarshal %s: %w", k, err)
		}
		if !mutate(&d) {
			continue
		}
		if err := s.Put(ctx, &d); err != nil {
			return err
		}
	}
	return iter.Err()
}
