package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"food-picker/apperrors"
	"food-picker/config"
	"food-picker/models"
	"food-picker/server/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCommentBox struct {
	comments []models.Comment
	created  []models.Comment
	createEr error
	deleted  []int64
	deleteBy string
}

func (s *stubCommentBox) Create(ctx context.Context, name, message string) (*models.Comment, error) {
	if s.createEr != nil {
		return nil, s.createEr
	}
	c := models.Comment{ID: int64(len(s.created) + 1), Name: name, Message: message}
	s.created = append(s.created, c)
	return &c, nil
}

func (s *stubCommentBox) List(ctx context.Context) ([]models.Comment, error) {
	return s.comments, nil
}

func (s *stubCommentBox) Delete(ctx context.Context, admin string, id int64) error {
	if admin == "" {
		return apperrors.ErrUnauthorized
	}
	for _, c := range s.comments {
		if c.ID == id {
			s.deleted = append(s.deleted, id)
			s.deleteBy = admin
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type stubAuthenticator struct {
	loggedOut []string
}

func (s *stubAuthenticator) Login(ctx context.Context, username, password string) (string, error) {
	if username == "admin" && password == "pw" {
		return "token-123", nil
	}
	return "", apperrors.ErrInvalidCredentials
}

func (s *stubAuthenticator) Logout(ctx context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

type recordingCookies struct {
	set     []string
	cleared int
}

func (c *recordingCookies) SetCookie(w http.ResponseWriter, token string) {
	c.set = append(c.set, token)
	http.SetCookie(w, &http.Cookie{Name: config.SESSION_COOKIE_NAME, Value: token})
}

func (c *recordingCookies) ClearCookie(w http.ResponseWriter) {
	c.cleared++
}

func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func newAdminHandler(box *stubCommentBox) (*AdminHandler, *stubAuthenticator, *recordingCookies) {
	authenticator := &stubAuthenticator{}
	cookies := &recordingCookies{}
	return NewAdminHandler(authenticator, cookies, box, zap.NewNop()), authenticator, cookies
}

func TestAdminHandler_LoginPage(t *testing.T) {
	h, _, _ := newAdminHandler(&stubCommentBox{})
	rr := httptest.NewRecorder()
	h.LoginPage(rr, httptest.NewRequest(http.MethodGet, "/admin/login", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), `name="password"`)
}

func TestAdminHandler_Login(t *testing.T) {
	h, _, cookies := newAdminHandler(&stubCommentBox{})

	rr := httptest.NewRecorder()
	h.Login(rr, formRequest(http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"pw"}}))

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/admin/dashboard", rr.Header().Get("Location"))
	assert.Equal(t, []string{"token-123"}, cookies.set)
}

func TestAdminHandler_LoginRejected(t *testing.T) {
	h, _, cookies := newAdminHandler(&stubCommentBox{})

	rr := httptest.NewRecorder()
	h.Login(rr, formRequest(http.MethodPost, "/admin/login", url.Values{"username": {"admin"}, "password": {"wrong"}}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error":"invalid credentials"}`, rr.Body.String())
	assert.Empty(t, cookies.set)
}

func TestAdminHandler_Logout(t *testing.T) {
	h, authenticator, cookies := newAdminHandler(&stubCommentBox{})

	req := httptest.NewRequest(http.MethodGet, "/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: config.SESSION_COOKIE_NAME, Value: "token-123"})
	rr := httptest.NewRecorder()
	h.Logout(rr, req)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/admin/login", rr.Header().Get("Location"))
	assert.Equal(t, []string{"token-123"}, authenticator.loggedOut)
	assert.Equal(t, 1, cookies.cleared)
}

func TestAdminHandler_Dashboard(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	box := &stubCommentBox{comments: []models.Comment{{ID: 1, Name: "Ana", Message: "yum", CreatedAt: created}}}
	h, _, _ := newAdminHandler(box)

	rr := httptest.NewRecorder()
	h.Dashboard(rr, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"comments":[{"id":1,"name":"Ana","message":"yum","created_at":"2025-03-01T12:00:00Z"}],"count":1}`, rr.Body.String())
}

func TestAdminHandler_Activity(t *testing.T) {
	box := &stubCommentBox{comments: []models.Comment{{ID: 1, CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}}}
	h, _, _ := newAdminHandler(box)

	rr := httptest.NewRecorder()
	h.Activity(rr, httptest.NewRequest(http.MethodGet, "/admin/dashboard/activity", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "2025-03-01")
}

func TestAdminHandler_DeleteComment(t *testing.T) {
	box := &stubCommentBox{comments: []models.Comment{{ID: 7}}}
	h, _, _ := newAdminHandler(box)

	router := mux.NewRouter()
	router.HandleFunc("/admin/comments/{id}", h.DeleteComment).Methods(http.MethodDelete)

	tests := []struct {
		name   string
		path   string
		admin  string
		status int
	}{
		{"deletes existing", "/admin/comments/7", "admin", http.StatusOK},
		{"unknown id", "/admin/comments/99", "admin", http.StatusNotFound},
		{"bad id", "/admin/comments/abc", "admin", http.StatusBadRequest},
		{"zero id", "/admin/comments/0", "admin", http.StatusBadRequest},
		{"no session", "/admin/comments/7", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			if tt.admin != "" {
				req = req.WithContext(middleware.WithAdmin(req.Context(), tt.admin))
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
	assert.Equal(t, []int64{7}, box.deleted)
	assert.Equal(t, "admin", box.deleteBy)
}
