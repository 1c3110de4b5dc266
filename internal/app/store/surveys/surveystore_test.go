package surveystore_test

import (
	"testing"
	"time"

	surveystore "github.com/impactlens/impactlens/internal/app/store/surveys"
	"github.com/impactlens/impactlens/internal/domain/models"
	"github.com/impactlens/impactlens/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func definition(title, createdBy string, createdAt time.Time) models.SurveyDefinition {
	return models.SurveyDefinition{
		Title:           title,
		Description:     "desc",
		Organization:    models.OrganizationIdentity{Name: "Hope Works"},
		SelectedSectors: []string{"d1"},
		PreQuestions:    []models.Question{{ID: "q1", Text: "Q", Type: models.QuestionShortText}},
		PostQuestions:   []models.Question{{ID: "q2", Text: "Q", Type: models.QuestionShortText}},
		Beneficiaries:   []models.Beneficiary{{ID: "b1", Name: "Ada", Email: "ada@example.org"}},
		StartDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		Status:          models.SurveyStatusActive,
		CreatedByID:     createdBy,
		CreatedAt:       createdAt,
	}
}

func TestStore_Save(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := surveystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	saved, err := store.Save(ctx, definition("Job Readiness", "owner-1", time.Now().UTC()))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if saved.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if saved.TitleCI == "" {
		t.Error("expected TitleCI to be set")
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := surveystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	saved, err := store.Save(ctx, definition("Job Readiness", "owner-1", time.Now().UTC()))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.GetByID(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Title != "Job Readiness" {
		t.Errorf("title: got %q", got.Title)
	}
	if len(got.Beneficiaries) != 1 || got.Beneficiaries[0].Email != "ada@example.org" {
		t.Errorf("roster did not round trip: %+v", got.Beneficiaries)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != surveystore.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := surveystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, spec := range []struct {
		title string
		owner string
	}{
		{"Oldest", "owner-1"},
		{"Middle", "owner-2"},
		{"Newest", "owner-1"},
	} {
		if _, err := store.Save(ctx, definition(spec.title, spec.owner, base.Add(time.Duration(i)*time.Minute))); err != nil {
			t.Fatalf("Save(%s) failed: %v", spec.title, err)
		}
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d surveys, want 3", len(all))
	}
	if all[0].Title != "Newest" || all[2].Title != "Oldest" {
		t.Errorf("expected newest-first order, got %q..%q", all[0].Title, all[2].Title)
	}

	mine, err := store.List(ctx, "owner-1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d surveys for owner-1, want 2", len(mine))
	}
	for _, def := range mine {
		if def.CreatedByID != "owner-1" {
			t.Errorf("leaked survey by %q into owner-1's list", def.CreatedByID)
		}
	}
}

func TestStore_Count(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := surveystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Save(ctx, definition("One", "owner-1", time.Now().UTC())); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	n, err := store.Count(ctx, bson.M{"status": models.SurveyStatusActive})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("count: got %d, want 1", n)
	}
}
