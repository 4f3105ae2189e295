package model

import "time"

// Department groups positions under a manager.
type Department struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	ManagerID string    `json:"managerId" bson:"managerId"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Position is a role opening within a department.
type Position struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	DepartmentID string    `json:"departmentId" bson:"departmentId"`
	ManagerID    string    `json:"managerId" bson:"managerId"`
	Description  string    `json:"description" bson:"description"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Location is an office site employees are assigned to.
type Location struct {
	ID        string    `json:"id" bson:"_id"`
	City      string    `json:"city" bson:"city"`
	Country   string    `json:"country" bson:"country"`
	Latitude  float64   `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude float64   `json:"longitude,omitempty" bson:"longitude,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Collection names.
const (
	CollectionDepartments = "departments"
	CollectionPositions   = "positions"
	CollectionLocations   = "locations"
)
