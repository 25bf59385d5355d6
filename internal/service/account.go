package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"hiredesk/internal/identity"
	"hiredesk/internal/model"
	"hiredesk/internal/repository"
)

// AccountService provisions admin and candidate accounts. Each provisioning
// call performs, in strict order: identity credential, account record, role
// profile, then the profileId back-link. There is no rollback; a failure
// after the identity step leaves partial records behind and surfaces as an
// internal error.
type AccountService interface {
	CreateAdmin(ctx context.Context, callerID string, req *model.CreateAdminRequest) (*model.CreatedAdmin, error)
	CreateCandidate(ctx context.Context, callerID string, req *model.CreateCandidateRequest) (*model.CreatedCandidate, error)
}

type accountService struct {
	authorizer        Authorizer
	idp               identity.Provider
	users             repository.IUserRepository
	adminProfiles     repository.IAdminProfileRepository
	candidateProfiles repository.ICandidateProfileRepository
}

func NewAccountService(
	authorizer Authorizer,
	idp identity.Provider,
	users repository.IUserRepository,
	adminProfiles repository.IAdminProfileRepository,
	candidateProfiles repository.ICandidateProfileRepository,
) AccountService {
	return &accountService{
		authorizer:        authorizer,
		idp:               idp,
		users:             users,
		adminProfiles:     adminProfiles,
		candidateProfiles: candidateProfiles,
	}
}

func (s *accountService) CreateAdmin(ctx context.Context, callerID string, req *model.CreateAdminRequest) (*model.CreatedAdmin, error) {
	if err := s.authorizer.RequireRole(ctx, callerID, model.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Email == "" || req.Password == "" || req.Name == "" || req.AccessLevel == "" {
		return nil, model.InvalidArgument("Missing required fields: email, password, name, accessLevel")
	}

	firstName, lastName := splitName(req.Name)

	userID, err := s.idp.CreateUser(ctx, req.Email, req.Password, false)
	if err != nil {
		slog.Error("failed to create admin identity", "email", req.Email, "error", err)
		return nil, model.Internal("Failed to create admin user", err)
	}

	user := &model.UserRecord{
		ID:        userID,
		Email:     req.Email,
		Role:      model.RoleAdmin,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		slog.Error("failed to create admin user record", "user_id", userID, "error", err)
		return nil, model.Internal("Failed to create admin user", err)
	}

	profile := &model.AdminProfile{
		UserID:      userID,
		FirstName:   firstName,
		LastName:    lastName,
		AccessLevel: req.AccessLevel,
		CreatedAt:   time.Now(),
	}
	if err := s.adminProfiles.Create(ctx, profile); err != nil {
		slog.Error("failed to create admin profile", "user_id", userID, "error", err)
		return nil, model.Internal("Failed to create admin user", err)
	}

	profileID := profile.ID.Hex()
	if err := s.users.SetProfileID(ctx, userID, profileID); err != nil {
		slog.Error("failed to link admin profile", "user_id", userID, "profile_id", profileID, "error", err)
		return nil, model.Internal("Failed to create admin user", err)
	}

	return &model.CreatedAdmin{
		ProfileID:   profileID,
		UserID:      userID,
		Name:        req.Name,
		AccessLevel: req.AccessLevel,
		Email:       req.Email,
	}, nil
}

func (s *accountService) CreateCandidate(ctx context.Context, callerID string, req *model.CreateCandidateRequest) (*model.CreatedCandidate, error) {
	if err := s.authorizer.RequireRole(ctx, callerID, model.RoleAdmin); err != nil {
		return nil, err
	}
	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return nil, model.InvalidArgument("Missing required fields: email, password, firstName, lastName")
	}

	userID, err := s.idp.CreateUser(ctx, req.Email, req.Password, false)
	if err != nil {
		slog.Error("failed to create candidate identity", "email", req.Email, "error", err)
		return nil, model.Internal("Failed to create candidate user", err)
	}

	user := &model.UserRecord{
		ID:        userID,
		Email:     req.Email,
		Role:      model.RoleCandidate,
		CreatedAt: time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		slog.Error("failed to create candidate user record", "user_id", userID, "error", err)
		return nil, model.Internal("Failed to create candidate user", err)
	}

	profile := &model.CandidateProfile{
		UserID:    userID,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		CreatedAt: time.Now(),
	}
	if err := s.candidateProfiles.Create(ctx, profile); err != nil {
		slog.Error("failed to create candidate profile", "user_id", userID, "error", err)
		return nil, model.Internal("Failed to create candidate user", err)
	}

	profileID := profile.ID.Hex()
	if err := s.users.SetProfileID(ctx, userID, profileID); err != nil {
		slog.Error("failed to link candidate profile", "user_id", userID, "profile_id", profileID, "error", err)
		return nil, model.Internal("Failed to create candidate user", err)
	}

	return &model.CreatedCandidate{
		ProfileID: profileID,
		UserID:    userID,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     req.Email,
	}, nil
}

// splitName splits a display name on the first whitespace run: the first
// token becomes the first name, the remainder the last name. A single-token
// name yields an empty last name.
func splitName(name string) (firstName, lastName string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
