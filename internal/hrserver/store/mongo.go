package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kart-io/hr-center/internal/model"
	"github.com/kart-io/hr-center/pkg/component/mongodb"
	"github.com/kart-io/hr-center/pkg/errors"
)

// datastore implements Factory on a MongoDB database.
type datastore struct {
	client *mongodb.Client
}

// NewMongoFactory creates a store factory backed by the given client.
func NewMongoFactory(client *mongodb.Client) Factory {
	return &datastore{client: client}
}

func (ds *datastore) Profiles() ProfileStore {
	return &profiles{c: ds.client.Collection(model.CollectionUserProfiles)}
}

func (ds *datastore) Employees() EmployeeStore {
	return &employees{c: ds.client.Collection(model.CollectionEmployees)}
}

func (ds *datastore) Departments() DepartmentStore {
	return &departments{c: ds.client.Collection(model.CollectionDepartments)}
}

func (ds *datastore) Positions() PositionStore {
	return &positions{c: ds.client.Collection(model.CollectionPositions)}
}

func (ds *datastore) Locations() LocationStore {
	return &locations{c: ds.client.Collection(model.CollectionLocations)}
}

func (ds *datastore) Ping(ctx context.Context) error {
	return ds.client.Ping(ctx)
}

func (ds *datastore) Close() error {
	return ds.client.Close()
}

// wrapErr maps driver errors to the error code system. A missing
// document becomes record-not-found; everything else is a database
// fault.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if err == mongo.ErrNoDocuments {
		return errors.ErrRecordNotFound.WithCause(err)
	}
	if mongo.IsDuplicateKeyError(err) {
		return errors.ErrAlreadyExists.WithCause(err)
	}
	return errors.ErrDatabase.WithCause(err)
}
