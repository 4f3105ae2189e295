package model

import "time"

// Employee is an employment record. It links to the person's profile
// through UserProfileID; ownership checks resolve that link to a uid.
type Employee struct {
	ID            string    `json:"id" bson:"_id"`
	UserProfileID string    `json:"userProfileId" bson:"userProfileId"`
	PositionID    string    `json:"positionId" bson:"positionId"`
	LocationID    string    `json:"locationId" bson:"locationId"`
	HireDate      time.Time `json:"hireDate" bson:"hireDate"`
	Salary        float64   `json:"salary" bson:"salary"`
	IsActive      bool      `json:"isActive" bson:"isActive"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CollectionEmployees is the backing collection name.
const CollectionEmployees = "employees"
