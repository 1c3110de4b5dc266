package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/impactlens/impactlens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateDomain creates an active impact domain with the given name.
func (f *Fixtures) CreateDomain(ctx context.Context, name string) models.Domain {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Domain{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("domains").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test domain: %v", err)
	}
	return d
}

// CreateInactiveDomain creates a domain flagged inactive.
func (f *Fixtures) CreateInactiveDomain(ctx context.Context, name string) models.Domain {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Domain{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		IsActive:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("domains").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create inactive test domain: %v", err)
	}
	return d
}

// CreateFilter creates an active beneficiary filter with the given name,
// kind, and options.
func (f *Fixtures) CreateFilter(ctx context.Context, name, kind string, options []string) models.Filter {
	f.t.Helper()

	now := time.Now().UTC()
	flt := models.Filter{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Type:      kind,
		Options:   options,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("filters").InsertOne(ctx, flt); err != nil {
		f.t.Fatalf("failed to create test filter: %v", err)
	}
	return flt
}

// CreateOrganization creates an active organization with the given name.
func (f *Fixtures) CreateOrganization(ctx context.Context, name string) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Email:     "contact@example.org",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("organizations").InsertOne(ctx, org); err != nil {
		f.t.Fatalf("failed to create test organization: %v", err)
	}
	return org
}
