package organizationstore_test

import (
	"testing"

	organizationstore "github.com/impactlens/impactlens/internal/app/store/organizations"
	"github.com/impactlens/impactlens/internal/domain/fault"
	"github.com/impactlens/impactlens/internal/domain/models"
	"github.com/impactlens/impactlens/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org, err := store.Create(ctx, models.Organization{
		Name:    "Hope Works",
		Email:   "hello@hopeworks.org",
		Website: "https://hopeworks.org",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if org.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if org.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if org.Status != "active" {
		t.Errorf("expected default status 'active', got %q", org.Status)
	}
}

func TestStore_Create_MissingName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Organization{Name: "   "})
	if !fault.Is(err, fault.Validation) {
		t.Fatalf("expected validation fault, got %v", err)
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}
	if _, err := store.Create(ctx, models.Organization{Name: "Hope Works"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := store.Create(ctx, models.Organization{Name: "HOPE WORKS"})
	if err != organizationstore.ErrDuplicateOrganization {
		t.Fatalf("expected ErrDuplicateOrganization, got %v", err)
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org, err := store.Create(ctx, models.Organization{Name: "Hope Works"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Hope Works" {
		t.Errorf("name: got %q", got.Name)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != organizationstore.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"Zeta Aid", "acorn Trust", "Bridge House"} {
		if _, err := store.Create(ctx, models.Organization{Name: name}); err != nil {
			t.Fatalf("Create(%s) failed: %v", name, err)
		}
	}

	out, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"acorn Trust", "Bridge House", "Zeta Aid"}
	if len(out) != len(want) {
		t.Fatalf("got %d organizations, want %d", len(out), len(want))
	}
	for i, org := range out {
		if org.Name != want[i] {
			t.Errorf("position %d: got %q, want %q", i, org.Name, want[i])
		}
	}
}
