package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hiredesk/internal/handler"
	"hiredesk/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccounts struct {
	admin     *model.CreatedAdmin
	candidate *model.CreatedCandidate
	err       error
	lastReq   any
}

func (s *stubAccounts) CreateAdmin(ctx context.Context, callerID string, req *model.CreateAdminRequest) (*model.CreatedAdmin, error) {
	s.lastReq = req
	return s.admin, s.err
}

func (s *stubAccounts) CreateCandidate(ctx context.Context, callerID string, req *model.CreateCandidateRequest) (*model.CreatedCandidate, error) {
	s.lastReq = req
	return s.candidate, s.err
}

type stubTeardown struct {
	err     error
	lastReq *model.DeleteAccountRequest
}

func (s *stubTeardown) DeleteUser(ctx context.Context, callerID string, req *model.DeleteAccountRequest) error {
	s.lastReq = req
	return s.err
}

func (s *stubTeardown) DeleteCandidate(ctx context.Context, callerID string, req *model.DeleteAccountRequest) error {
	s.lastReq = req
	return s.err
}

func newAccountRouter(accounts *stubAccounts, teardown *stubTeardown) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewAccountHandler(accounts, teardown)
	r := gin.New()
	r.POST("/createAdmin", h.CreateAdmin)
	r.POST("/createCandidate", h.CreateCandidate)
	r.POST("/deleteUser", h.DeleteUser)
	r.POST("/deleteCandidate", h.DeleteCandidate)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) model.Response {
	t.Helper()
	var resp model.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateAdminHandler(t *testing.T) {
	accounts := &stubAccounts{admin: &model.CreatedAdmin{
		ProfileID: "p1", UserID: "u1", Name: "Jane Q Public", AccessLevel: "standard", Email: "jane@example.com",
	}}
	r := newAccountRouter(accounts, &stubTeardown{})

	w := postJSON(r, "/createAdmin",
		`{"email":"jane@example.com","password":"x","name":"Jane Q Public","accessLevel":"standard"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Admin created", resp.Message)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "u1", data["userId"])
	assert.Equal(t, "p1", data["profileId"])

	req, ok := accounts.lastReq.(*model.CreateAdminRequest)
	require.True(t, ok)
	assert.Equal(t, "Jane Q Public", req.Name)
}

func TestCreateAdminHandlerMalformedBody(t *testing.T) {
	r := newAccountRouter(&stubAccounts{}, &stubTeardown{})

	w := postJSON(r, "/createAdmin", `{"email":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, string(model.KindInvalidArgument), resp.Code)
}

func TestAccountHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"unauthenticated", model.Unauthenticated("no caller"), http.StatusUnauthorized, "unauthenticated"},
		{"permission denied", model.PermissionDenied("role mismatch"), http.StatusForbidden, "permission-denied"},
		{"invalid argument", model.InvalidArgument("missing fields"), http.StatusBadRequest, "invalid-argument"},
		{"internal", model.Internal("boom", assert.AnError), http.StatusInternalServerError, "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAccountRouter(&stubAccounts{err: tt.err}, &stubTeardown{})

			w := postJSON(r, "/createAdmin", `{"email":"a@b.c"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestCreateCandidateHandler(t *testing.T) {
	accounts := &stubAccounts{candidate: &model.CreatedCandidate{
		ProfileID: "p2", UserID: "u2", FirstName: "Bob", LastName: "Jones", Email: "bob@example.com",
	}}
	r := newAccountRouter(accounts, &stubTeardown{})

	w := postJSON(r, "/createCandidate",
		`{"email":"bob@example.com","password":"x","firstName":"Bob","lastName":"Jones"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Candidate created", resp.Message)
}

func TestDeleteUserHandler(t *testing.T) {
	teardown := &stubTeardown{}
	r := newAccountRouter(&stubAccounts{}, teardown)

	w := postJSON(r, "/deleteUser", `{"userId":"u1","profileId":"p1"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "User deleted", resp.Message)

	require.NotNil(t, teardown.lastReq)
	assert.Equal(t, "u1", teardown.lastReq.UserID)
	assert.Equal(t, "p1", teardown.lastReq.ProfileID)
}

func TestDeleteCandidateHandler(t *testing.T) {
	teardown := &stubTeardown{}
	r := newAccountRouter(&stubAccounts{}, teardown)

	w := postJSON(r, "/deleteCandidate", `{"userId":"u2","profileId":"p2"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Candidate deleted", decodeResponse(t, w).Message)
}

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/healthz", handler.Health)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}
