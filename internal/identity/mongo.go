package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// BCryptCost is the cost factor for password hashing
const BCryptCost = 12

// Credential is the stored identity document.
type Credential struct {
	UID           string    `bson:"_id"`
	Email         string    `bson:"email"`
	PasswordHash  string    `bson:"passwordHash"`
	EmailVerified bool      `bson:"emailVerified"`
	CreatedAt     time.Time `bson:"createdAt"`
}

// MongoProvider stores credentials in an identityCredentials collection.
type MongoProvider struct {
	collection *mongo.Collection
}

func NewMongoProvider(db *mongo.Database) *MongoProvider {
	return &MongoProvider{collection: db.Collection("identityCredentials")}
}

// CreateUser hashes the password and inserts a credential under a freshly
// generated uid, which it returns.
func (p *MongoProvider) CreateUser(ctx context.Context, email, password string, emailVerified bool) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BCryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	cred := Credential{
		UID:           uuid.NewString(),
		Email:         email,
		PasswordHash:  string(hash),
		EmailVerified: emailVerified,
		CreatedAt:     time.Now(),
	}
	if _, err := p.collection.InsertOne(ctx, cred); err != nil {
		return "", fmt.Errorf("failed to create identity: %w", err)
	}
	return cred.UID, nil
}

// DeleteUser removes the credential for uid. An unknown uid is an error.
func (p *MongoProvider) DeleteUser(ctx context.Context, uid string) error {
	res, err := p.collection.DeleteOne(ctx, bson.M{"_id": uid})
	if err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("identity %s not found", uid)
	}
	return nil
}

// VerifyPassword checks a password against the stored credential hash.
func (p *MongoProvider) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	var cred Credential
	if err := p.collection.FindOne(ctx, bson.M{"email": email}).Decode(&cred); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", fmt.Errorf("unknown identity %s", email)
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}
	return cred.UID, nil
}
