package service

import (
	"context"
	"log/slog"

	"hiredesk/internal/identity"
	"hiredesk/internal/model"
	"hiredesk/internal/repository"
	"hiredesk/pkg/storage"
	"hiredesk/pkg/timer"
	"hiredesk/pkg/util"
)

// TeardownService deletes accounts and their dependent records. Both
// variants run one ordered pipeline of steps with no compensation: a step
// failure aborts the cascade as an internal error, and effects already
// applied stay applied. Record and profile deletes tolerate documents that
// are already gone, so a partially applied teardown can be retried.
type TeardownService interface {
	DeleteUser(ctx context.Context, callerID string, req *model.DeleteAccountRequest) error
	DeleteCandidate(ctx context.Context, callerID string, req *model.DeleteAccountRequest) error
}

type teardownService struct {
	authorizer        Authorizer
	idp               identity.Provider
	users             repository.IUserRepository
	adminProfiles     repository.IAdminProfileRepository
	candidateProfiles repository.ICandidateProfileRepository
	documents         repository.ICandidateDocumentRepository
	applications      repository.IApplicationRepository
	blobs             storage.BlobStore
}

func NewTeardownService(
	authorizer Authorizer,
	idp identity.Provider,
	users repository.IUserRepository,
	adminProfiles repository.IAdminProfileRepository,
	candidateProfiles repository.ICandidateProfileRepository,
	documents repository.ICandidateDocumentRepository,
	applications repository.IApplicationRepository,
	blobs storage.BlobStore,
) TeardownService {
	return &teardownService{
		authorizer:        authorizer,
		idp:               idp,
		users:             users,
		adminProfiles:     adminProfiles,
		candidateProfiles: candidateProfiles,
		documents:         documents,
		applications:      applications,
		blobs:             blobs,
	}
}

// teardownStep is one named stage of an account-deletion cascade.
type teardownStep struct {
	name string
	run  func(ctx context.Context) error
}

// runPipeline executes the steps in order. The first failure aborts the
// cascade; prior steps are not rolled back.
func runPipeline(ctx context.Context, operation string, steps []teardownStep) error {
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			slog.Error("account teardown aborted",
				"operation", operation,
				"step", step.name,
				"error", err,
			)
			return model.Internal("Failed to "+operation, err)
		}
	}
	return nil
}

// DeleteUser tears down a generic (admin) account: profile, account record,
// identity credential. Self-deletion is forbidden.
func (s *teardownService) DeleteUser(ctx context.Context, callerID string, req *model.DeleteAccountRequest) error {
	if err := s.authorizer.RequireRole(ctx, callerID, model.RoleAdmin); err != nil {
		return err
	}
	if callerID == req.UserID {
		return model.PermissionDenied("you cannot delete your own account")
	}
	if req.UserID == "" || req.ProfileID == "" {
		return model.InvalidArgument("Missing required fields: userId, profileId")
	}

	defer timer.Track("DeleteUser")()

	return runPipeline(ctx, "delete user", []teardownStep{
		{"delete admin profile", func(ctx context.Context) error {
			return s.adminProfiles.Delete(ctx, req.ProfileID)
		}},
		{"delete user record", func(ctx context.Context) error {
			return s.users.Delete(ctx, req.UserID)
		}},
		{"delete identity credential", func(ctx context.Context) error {
			return s.idp.DeleteUser(ctx, req.UserID)
		}},
	})
}

// DeleteCandidate tears down a candidate account and everything that hangs
// off it, in order: stored blobs and document records, applications, profile,
// account record, identity credential.
func (s *teardownService) DeleteCandidate(ctx context.Context, callerID string, req *model.DeleteAccountRequest) error {
	if err := s.authorizer.RequireRole(ctx, callerID, model.RoleAdmin); err != nil {
		return err
	}
	if req.UserID == "" || req.ProfileID == "" {
		return model.InvalidArgument("Missing required fields: userId, profileId")
	}

	defer timer.Track("DeleteCandidate")()

	return runPipeline(ctx, "delete candidate", []teardownStep{
		{"purge candidate documents", func(ctx context.Context) error {
			return s.purgeDocuments(ctx, req.UserID)
		}},
		{"purge applications", func(ctx context.Context) error {
			return s.purgeApplications(ctx, req.UserID)
		}},
		{"delete candidate profile", func(ctx context.Context) error {
			return s.candidateProfiles.Delete(ctx, req.ProfileID)
		}},
		{"delete user record", func(ctx context.Context) error {
			return s.users.Delete(ctx, req.UserID)
		}},
		{"delete identity credential", func(ctx context.Context) error {
			return s.idp.DeleteUser(ctx, req.UserID)
		}},
	})
}

// purgeDocuments removes each candidate document and its stored blob. A blob
// that cannot be deleted is logged and skipped; the document record is
// removed regardless, so the cascade never stalls on storage trouble.
func (s *teardownService) purgeDocuments(ctx context.Context, candidateID string) error {
	docs, err := s.documents.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		if doc.StorageURL != "" {
			s.deleteBlob(ctx, doc.ID.Hex(), doc.StorageURL)
		}
		if err := s.documents.Delete(ctx, doc.ID.Hex()); err != nil {
			return err
		}
	}
	return nil
}

// deleteBlob is best-effort: parse and delete failures are logged, never
// propagated.
func (s *teardownService) deleteBlob(ctx context.Context, documentID, storageURL string) {
	path, err := util.StoragePathFromURL(storageURL)
	if err != nil {
		slog.Warn("failed to resolve storage path for document",
			"document_id", documentID,
			"error", err,
		)
		return
	}
	if err := s.blobs.Delete(ctx, path); err != nil {
		slog.Warn("failed to delete storage blob",
			"document_id", documentID,
			"path", path,
			"error", err,
		)
	}
}

func (s *teardownService) purgeApplications(ctx context.Context, candidateID string) error {
	apps, err := s.applications.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return err
	}
	for _, app := range apps {
		if err := s.applications.Delete(ctx, app.ID.Hex()); err != nil {
			return err
		}
	}
	return nil
}
