package repository

import (
	"context"

	"hiredesk/internal/model"
	"hiredesk/pkg/generic"

	"go.mongodb.org/mongo-driver/mongo"
)

// ICandidateDocumentRepository defines candidate-document persistence
type ICandidateDocumentRepository interface {
	FindByCandidateID(ctx context.Context, candidateID string) ([]*model.CandidateDocument, error)
	Delete(ctx context.Context, id string) error
}

// CandidateDocumentRepository implements candidate-document persistence
type CandidateDocumentRepository struct {
	*generic.MongoBaseRepository[*model.CandidateDocument]
}

func NewCandidateDocumentRepository(db *mongo.Database) ICandidateDocumentRepository {
	return &CandidateDocumentRepository{generic.NewBaseRepository[*model.CandidateDocument](db.Collection("candidateDocuments"))}
}

func (r *CandidateDocumentRepository) FindByCandidateID(ctx context.Context, candidateID string) ([]*model.CandidateDocument, error) {
	return r.FindAllBy(ctx, "candidateId", candidateID)
}

// IApplicationRepository defines application persistence
type IApplicationRepository interface {
	FindByCandidateID(ctx context.Context, candidateID string) ([]*model.Application, error)
	Delete(ctx context.Context, id string) error
}

// ApplicationRepository implements application persistence
type ApplicationRepository struct {
	*generic.MongoBaseRepository[*model.Application]
}

func NewApplicationRepository(db *mongo.Database) IApplicationRepository {
	return &ApplicationRepository{generic.NewBaseRepository[*model.Application](db.Collection("applications"))}
}

func (r *ApplicationRepository) FindByCandidateID(ctx context.Context, candidateID string) ([]*model.Application, error) {
	return r.FindAllBy(ctx, "candidateId", candidateID)
}
