package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CandidateDocument references an uploaded file via its download URL.
// Documents point at their candidate through the candidateId field; there is
// no stored foreign-key object, just the matching uid.
type CandidateDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CandidateID string             `bson:"candidateId" json:"candidateId"`
	Name        string             `bson:"name" json:"name"`
	StorageURL  string             `bson:"storageUrl,omitempty" json:"storageUrl,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (d *CandidateDocument) GetID() primitive.ObjectID   { return d.ID }
func (d *CandidateDocument) SetID(id primitive.ObjectID) { d.ID = id }

// Application is a candidate's application to a position, weakly referenced
// by candidateId like CandidateDocument.
type Application struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CandidateID string             `bson:"candidateId" json:"candidateId"`
	Position    string             `bson:"position" json:"position"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (a *Application) GetID() primitive.ObjectID   { return a.ID }
func (a *Application) SetID(id primitive.ObjectID) { a.ID = id }
