package repository

import (
	"context"
	"time"

	"hiredesk/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IUserRepository defines account-record persistence
type IUserRepository interface {
	FindByID(ctx context.Context, id string) (*model.UserRecord, error)
	Create(ctx context.Context, user *model.UserRecord) error
	SetProfileID(ctx context.Context, id, profileID string) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role model.Role) (int64, error)
}

// UserRepository implements account-record persistence over the users
// collection. The document _id is the identity-provider uid.
type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{collection: db.Collection("users")}
}

// FindByID returns nil without error when no record exists.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.UserRecord, error) {
	var user *model.UserRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.UserRecord) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// SetProfileID links the role profile back to the account record. The field
// starts out null and is written exactly once, right after profile creation.
func (r *UserRepository) SetProfileID(ctx context.Context, id, profileID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"profileId": profileID}},
	)
	return err
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *UserRepository) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"role": role})
}
