// Package model provides the document models for the HR center.
package model

import (
	"time"

	"github.com/kart-io/hr-center/pkg/security/authz/rbac"
)

// UserProfile is the identity document linked to an authenticated uid.
// The role stored here is authoritative for authorization decisions.
type UserProfile struct {
	ID        string    `json:"id" bson:"_id"`
	UID       string    `json:"uid" bson:"uid"`
	FirstName string    `json:"firstName" bson:"firstName"`
	LastName  string    `json:"lastName" bson:"lastName"`
	Email     string    `json:"email" bson:"email"`
	Role      rbac.Role `json:"role" bson:"role"`
	Avatar    string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// CollectionUserProfiles is the backing collection name.
const CollectionUserProfiles = "userProfiles"
