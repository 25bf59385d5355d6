package model

import "time"

// Role gates authorized operations.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCandidate Role = "candidate"
)

// UserRecord is the account document stored in the users collection.
// Its _id is the identity-provider uid, so one record exists per identity.
type UserRecord struct {
	ID        string    `bson:"_id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Role      Role      `bson:"role" json:"role"`
	ProfileID *string   `bson:"profileId" json:"profileId"` // nil until the profile is created, set exactly once
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
