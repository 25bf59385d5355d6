package repository

import (
	"context"

	"hiredesk/internal/model"
	"hiredesk/pkg/generic"

	"go.mongodb.org/mongo-driver/mongo"
)

// IAdminProfileRepository defines admin-profile persistence
type IAdminProfileRepository interface {
	Create(ctx context.Context, profile *model.AdminProfile) error
	Delete(ctx context.Context, id string) error
}

// AdminProfileRepository implements admin-profile persistence
type AdminProfileRepository struct {
	*generic.MongoBaseRepository[*model.AdminProfile]
}

func NewAdminProfileRepository(db *mongo.Database) IAdminProfileRepository {
	return &AdminProfileRepository{generic.NewBaseRepository[*model.AdminProfile](db.Collection("adminProfiles"))}
}

// ICandidateProfileRepository defines candidate-profile persistence
type ICandidateProfileRepository interface {
	Create(ctx context.Context, profile *model.CandidateProfile) error
	Delete(ctx context.Context, id string) error
}

// CandidateProfileRepository implements candidate-profile persistence
type CandidateProfileRepository struct {
	*generic.MongoBaseRepository[*model.CandidateProfile]
}

func NewCandidateProfileRepository(db *mongo.Database) ICandidateProfileRepository {
	return &CandidateProfileRepository{generic.NewBaseRepository[*model.CandidateProfile](db.Collection("candidateProfiles"))}
}
