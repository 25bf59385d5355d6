package service_test

import (
	"context"

	"hiredesk/internal/config"
	"hiredesk/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory IUserRepository recording every mutation.
type fakeUserRepo struct {
	users     map[string]*model.UserRecord
	created   []*model.UserRecord
	linked    map[string]string
	deleted   []string
	findErr   error
	createErr error
	linkErr   error
	deleteErr error
}

func newFakeUserRepo(seed ...*model.UserRecord) *fakeUserRepo {
	r := &fakeUserRepo{
		users:  make(map[string]*model.UserRecord),
		linked: make(map[string]string),
	}
	for _, u := range seed {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.UserRecord, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.UserRecord) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.users[user.ID] = user
	r.created = append(r.created, user)
	return nil
}

func (r *fakeUserRepo) SetProfileID(ctx context.Context, id, profileID string) error {
	if r.linkErr != nil {
		return r.linkErr
	}
	r.linked[id] = profileID
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.users, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeUserRepo) CountByRole(ctx context.Context, role model.Role) (int64, error) {
	var n int64
	for _, u := range r.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

// fakeIdentity is an identity.Provider plus Verifier that records calls.
type fakeIdentity struct {
	nextUID   string
	created   []string
	deleted   []string
	verifyUID string
	createErr error
	deleteErr error
	verifyErr error
}

func (p *fakeIdentity) CreateUser(ctx context.Context, email, password string, emailVerified bool) (string, error) {
	if p.createErr != nil {
		return "", p.createErr
	}
	p.created = append(p.created, email)
	if p.nextUID != "" {
		return p.nextUID, nil
	}
	return "uid-" + email, nil
}

func (p *fakeIdentity) DeleteUser(ctx context.Context, uid string) error {
	if p.deleteErr != nil {
		return p.deleteErr
	}
	p.deleted = append(p.deleted, uid)
	return nil
}

func (p *fakeIdentity) VerifyPassword(ctx context.Context, email, password string) (string, error) {
	if p.verifyErr != nil {
		return "", p.verifyErr
	}
	return p.verifyUID, nil
}

type fakeAdminProfiles struct {
	created   []*model.AdminProfile
	deleted   []string
	createErr error
	deleteErr error
}

func (r *fakeAdminProfiles) Create(ctx context.Context, profile *model.AdminProfile) error {
	if r.createErr != nil {
		return r.createErr
	}
	profile.SetID(primitive.NewObjectID())
	r.created = append(r.created, profile)
	return nil
}

func (r *fakeAdminProfiles) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeCandidateProfiles struct {
	created   []*model.CandidateProfile
	deleted   []string
	createErr error
	deleteErr error
}

func (r *fakeCandidateProfiles) Create(ctx context.Context, profile *model.CandidateProfile) error {
	if r.createErr != nil {
		return r.createErr
	}
	profile.SetID(primitive.NewObjectID())
	r.created = append(r.created, profile)
	return nil
}

func (r *fakeCandidateProfiles) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeDocuments struct {
	docs      []*model.CandidateDocument
	deleted   []string
	findErr   error
	deleteErr error
}

func (r *fakeDocuments) FindByCandidateID(ctx context.Context, candidateID string) ([]*model.CandidateDocument, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*model.CandidateDocument
	for _, d := range r.docs {
		if d.CandidateID == candidateID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDocuments) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeApplications struct {
	apps      []*model.Application
	deleted   []string
	findErr   error
	deleteErr error
}

func (r *fakeApplications) FindByCandidateID(ctx context.Context, candidateID string) ([]*model.Application, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []*model.Application
	for _, a := range r.apps {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeApplications) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeBlobStore struct {
	deleted []string
	err     error
}

func (s *fakeBlobStore) Delete(ctx context.Context, path string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, path)
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, cfg *config.SMTPConfig, to, subject, body string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return "<test-id@example.com>", nil
}

// adminUser seeds a fakeUserRepo caller that passes the admin guard.
func adminUser(id string) *model.UserRecord {
	return &model.UserRecord{ID: id, Email: id + "@example.com", Role: model.RoleAdmin}
}

func candidateUser(id string) *model.UserRecord {
	return &model.UserRecord{ID: id, Email: id + "@example.com", Role: model.RoleCandidate}
}
