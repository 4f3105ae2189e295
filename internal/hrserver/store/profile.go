package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kart-io/hr-center/internal/model"
)

type profiles struct {
	c *mongo.Collection
}

// Create inserts a new profile.
func (s *profiles) Create(ctx context.Context, profile *model.UserProfile) error {
	_, err := s.c.InsertOne(ctx, profile)
	return wrapErr(err)
}

// Get retrieves a profile by document id.
func (s *profiles) Get(ctx context.Context, id string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&profile); err != nil {
		return nil, wrapErr(err)
	}
	return &profile, nil
}

// GetByUID retrieves a profile by the authenticated uid.
func (s *profiles) GetByUID(ctx context.Context, uid string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := s.c.FindOne(ctx, bson.M{"uid": uid}).Decode(&profile); err != nil {
		return nil, wrapErr(err)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email address.
func (s *profiles) GetByEmail(ctx context.Context, email string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&profile); err != nil {
		return nil, wrapErr(err)
	}
	return &profile, nil
}

// List returns all profiles.
func (s *profiles) List(ctx context.Context) ([]*model.UserProfile, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var out []*model.UserProfile
	if err := cursor.All(ctx, &out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

// Update replaces a profile document.
func (s *profiles) Update(ctx context.Context, profile *model.UserProfile) error {
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": profile.ID}, profile)
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes a profile by document id.
func (s *profiles) Delete(ctx context.Context, id string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return wrapErr(err)
}
