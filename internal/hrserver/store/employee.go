package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kart-io/hr-center/internal/model"
)

type employees struct {
	c *mongo.Collection
}

func (s *employees) Create(ctx context.Context, employee *model.Employee) error {
	_, err := s.c.InsertOne(ctx, employee)
	return wrapErr(err)
}

func (s *employees) Get(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&employee); err != nil {
		return nil, wrapErr(err)
	}
	return &employee, nil
}

func (s *employees) List(ctx context.Context) ([]*model.Employee, error) {
	cursor, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, wrapErr(err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var out []*model.Employee
	if err := cursor.All(ctx, &out); err != nil {
		return nil, wrapErr(err)
	}
	return out, nil
}

func (s *employees) Update(ctx context.Context, employee *model.Employee) error {
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": employee.ID}, employee)
	if err != nil {
		return wrapErr(err)
	}
	if res.MatchedCount == 0 {
		return wrapErr(mongo.ErrNoDocuments)
	}
	return nil
}

func (s *employees) Delete(ctx context.Context, id string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return wrapErr(err)
}
