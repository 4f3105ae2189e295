package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mongoopts "go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kart-io/hr-center/internal/model"
)

type departments struct {
	c *mongo.Collection
}

func (s *departments) Create(ctx context.Context, department *model.Department) error {
	_, err := s.c.InsertOne(ctx, department)
	return wrapErr(err)
}

func (s *departments) Get(ctx context.Context, id string) (*model.Department, error) {
	var department model.Department
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&department); err != nil {
		return nil, wrapErr(err)
	}
	return &department, nil
}

func (s *departments) List(ctx context.Context) ([]*model.Department, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var out []*model.Department
	if err := cursor.All(ctx, &out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

func (s *departments) Update(ctx context.Context, department *model.Department) error {
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": department.ID}, department)
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *departments) Delete(ctx context.Context, id string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return wrapErr(err)
}

type positions struct {
	c *mongo.Collection
}

func (s *positions) Create(ctx context.Context, position *model.Position) error {
	_, err := s.c.InsertOne(ctx, position)
	return wrapErr(err)
}

func (s *positions) Get(ctx context.Context, id string) (*model.Position, error) {
	var position model.Position
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&position); err != nil {
		return nil, wrapErr(err)
	}
	return &position, nil
}

func (s *positions) List(ctx context.Context) ([]*model.Position, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var out []*model.Position
	if err := cursor.All(ctx, &out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

func (s *positions) Update(ctx context.Context, position *model.Position) error {
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": position.ID}, position)
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *positions) Delete(ctx context.Context, id string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return wrapErr(err)
}

func (s *positions) DeleteByDepartment(ctx context.Context, departmentID string) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"departmentId": departmentID})
	return wrapErr(err)
}

type locations struct {
	c *mongo.Collection
}

// Upsert replaces the location document, inserting it when absent.
func (s *locations) Upsert(ctx context.Context, location *model.Location) error {
	opts := mongoopts.Replace().SetUpsert(true)
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": location.ID}, location, opts)
	return wrapErr(err)
}

func (s *locations) Get(ctx context.Context, id string) (*model.Location, error) {
	var location model.Location
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&location); err != nil {
		return nil, wrapErr(err)
	}
	return &location, nil
}

func (s *locations) List(ctx context.Context) ([]*model.Location, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var out []*model.Location
	if err := cursor.All(ctx, &out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}
