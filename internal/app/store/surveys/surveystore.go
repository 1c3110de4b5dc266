// internal/app/store/surveys/surveystore.go
package surveystore

import (
	"context"
	"errors"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/impactlens/impactlens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store persists published survey definitions. This is the handoff point of
// the authoring flow: definitions arriving here are self-consistent (the
// publisher validated them) and are never mutated by this service again.
type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("survey not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("surveys")}
}

// Save inserts the published definition, assigning its id and TitleCI.
func (s *Store) Save(ctx context.Context, def models.SurveyDefinition) (models.SurveyDefinition, error) {
	def.ID = primitive.NewObjectID()
	def.TitleCI = text.Fold(def.Title)
	if _, err := s.c.InsertOne(ctx, def); err != nil {
		return models.SurveyDefinition{}, err
	}
	return def, nil
}

// GetByID returns a published survey.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.SurveyDefinition, error) {
	var def models.SurveyDefinition
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&def)
	if err == mongo.ErrNoDocuments {
		return models.SurveyDefinition{}, ErrNotFound
	}
	if err != nil {
		return models.SurveyDefinition{}, err
	}
	return def, nil
}

// List returns published surveys, newest first. When createdByID is
// non-empty the list is restricted to that author.
func (s *Store) List(ctx context.Context, createdByID string) ([]models.SurveyDefinition, error) {
	filter := bson.M{}
	if createdByID != "" {
		filter["created_by_id"] = createdByID
	}
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.SurveyDefinition
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of surveys matching the filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// EnsureIndexes creates the author/recency index used by List.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_by_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}
