package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminProfile holds admin-specific attributes, owned 1:1 by a UserRecord.
type AdminProfile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	FirstName   string             `bson:"firstName" json:"firstName"`
	LastName    string             `bson:"lastName" json:"lastName"`
	AccessLevel string             `bson:"accessLevel" json:"accessLevel"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func (p *AdminProfile) GetID() primitive.ObjectID   { return p.ID }
func (p *AdminProfile) SetID(id primitive.ObjectID) { p.ID = id }

// CandidateProfile holds candidate-specific attributes, owned 1:1 by a UserRecord.
type CandidateProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Phone     string             `bson:"phone" json:"phone"`
	Address   string             `bson:"address" json:"address"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

func (p *CandidateProfile) GetID() primitive.ObjectID   { return p.ID }
func (p *CandidateProfile) SetID(id primitive.ObjectID) { p.ID = id }
