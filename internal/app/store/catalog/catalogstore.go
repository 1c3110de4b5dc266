// internal/app/store/catalog/catalogstore.go
package catalogstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store holds the shared reference lists: impact domains and beneficiary
// classification filters. Role gating lives in the survey.Catalog service;
// this store is plain persistence.
type Store struct {
	domains *mongo.Collection
	filters *mongo.Collection
}

var ErrDuplicateName = errors.New("a catalog entry with this name already exists")

func New(db *mongo.Database) *Store {
	return &Store{
		domains: db.Collection("domains"),
		filters: db.Collection("filters"),
	}
}

// InsertDomain inserts a new Domain, setting NameCI and timestamps.
func (s *Store) InsertDomain(ctx context.Context, d models.Domain) (models.Domain, error) {
	now := time.Now().UTC()
	d.ID = primitive.NewObjectID()
	d.NameCI = text.Fold(d.Name)
	d.CreatedAt = now
	d.UpdatedAt = now

	if _, err := s.domains.InsertOne(ctx, d); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Domain{}, ErrDuplicateName
		}
		return models.Domain{}, err
	}
	return d, nil
}

// DeleteDomain removes a domain by its hex id. Returns the number deleted
// (0 or 1).
func (s *Store) DeleteDomain(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fault.Validationf("id", "%q is not a valid domain id", id)
	}
	res, err := s.domains.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListDomains returns all domains ordered by folded name.
func (s *Store) ListDomains(ctx context.Context) ([]models.Domain, error) {
	cur, err := s.domains.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Domain
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DomainActive reports whether the domain exists and is active. A malformed
// id is simply not active.
func (s *Store) DomainActive(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := s.domains.CountDocuments(ctx, bson.M{"_id": oid, "is_active": true})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// InsertFilter inserts a new Filter, setting NameCI and timestamps.
func (s *Store) InsertFilter(ctx context.Context, f models.Filter) (models.Filter, error) {
	now := time.Now().UTC()
	f.ID = primitive.NewObjectID()
	f.NameCI = text.Fold(f.Name)
	f.CreatedAt = now
	f.UpdatedAt = now

	if _, err := s.filters.InsertOne(ctx, f); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Filter{}, ErrDuplicateName
		}
		return models.Filter{}, err
	}
	return f, nil
}

// DeleteFilter removes a filter by its hex id.
func (s *Store) DeleteFilter(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fault.Validationf("id", "%q is not a valid filter id", id)
	}
	res, err := s.filters.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListFilters returns all filters ordered by folded name.
func (s *Store) ListFilters(ctx context.Context) ([]models.Filter, error) {
	cur, err := s.filters.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Filter
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterActive reports whether the filter exists and is active.
func (s *Store) FilterActive(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	n, err := s.filters.CountDocuments(ctx, bson.M{"_id": oid, "is_active": true})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// EnsureIndexes creates the unique name indexes for both collections.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	nameIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "name_ci", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := s.domains.Indexes().CreateOne(ctx, nameIdx); err != nil {
		return err
	}
	_, err := s.filters.Indexes().CreateOne(ctx, nameIdx)
	return err
}
