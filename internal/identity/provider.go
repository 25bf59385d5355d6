// Package identity holds the authentication-credential collaborator: the
// store of email/password identities keyed by a stable uid.
package identity

import "context"

// Provider creates and deletes authentication credentials. Account records
// reference the returned uid as their document id.
type Provider interface {
	CreateUser(ctx context.Context, email, password string, emailVerified bool) (string, error)
	DeleteUser(ctx context.Context, uid string) error
}

// Verifier checks a password against a stored credential and returns the
// owning uid.
type Verifier interface {
	VerifyPassword(ctx context.Context, email, password string) (string, error)
}
