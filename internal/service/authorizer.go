package service

import (
	"context"
	"log/slog"

	"hiredesk/internal/model"
	"hiredesk/internal/repository"
)

// Authorizer resolves a caller's stored role and enforces the role an
// operation requires. Every state-changing operation calls it first,
// before touching any external collaborator.
type Authorizer interface {
	RequireRole(ctx context.Context, callerID string, required model.Role) error
}

type authorizer struct {
	users repository.IUserRepository
}

func NewAuthorizer(users repository.IUserRepository) Authorizer {
	return &authorizer{users: users}
}

func (a *authorizer) RequireRole(ctx context.Context, callerID string, required model.Role) error {
	if callerID == "" {
		return model.Unauthenticated("User must be authenticated to perform this action")
	}

	caller, err := a.users.FindByID(ctx, callerID)
	if err != nil {
		slog.Error("failed to resolve caller role", "caller_id", callerID, "error", err)
		return model.Internal("Failed to resolve caller role", err)
	}
	if caller == nil {
		return model.PermissionDenied("user document not found")
	}
	if caller.Role != required {
		return model.PermissionDenied("role mismatch")
	}
	return nil
}
