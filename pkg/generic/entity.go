package generic

import "go.mongodb.org/mongo-driver/bson/primitive"

// Entity is the interface every ObjectID-keyed model must implement.
type Entity interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}
