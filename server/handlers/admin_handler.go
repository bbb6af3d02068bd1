package handlers

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"food-picker/apperrors"
	"food-picker/auth"
	"food-picker/logger"
	"food-picker/models"
	"food-picker/server/middleware"
	"food-picker/server/respond"
	"food-picker/util"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const loginPageHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>food-picker admin</title></head>
<body>
<h1>Admin login</h1>
<form method="post" action="/admin/login">
  <label>Username <input name="username" autocomplete="username" required></label>
  <label>Password <input name="password" type="password" autocomplete="current-password" required></label>
  <button type="submit">Log in</button>
</form>
</body>
</html>
`

// Authenticator logs admins in and out.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context, token string) error
}

// SessionCookies writes and clears the session cookie.
type SessionCookies interface {
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

type DashboardResponse struct {
	Comments []models.Comment `json:"comments"`
	Count    int              `json:"count"`
}

type AdminHandler struct {
	auth     Authenticator
	cookies  SessionCookies
	comments CommentBox
	log      *zap.Logger
}

func NewAdminHandler(authenticator Authenticator, cookies SessionCookies, comments CommentBox, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		auth:     authenticator,
		cookies:  cookies,
		comments: comments,
		log:      logger.Component(log, "admin_handler"),
	}
}

// LoginPage handles GET /admin/login
func (h *AdminHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(loginPageHTML))
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Error(w, h.log, apperrors.NewValidationError("", "malformed form body"))
		return
	}
	token, err := h.auth.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	h.cookies.SetCookie(w, token)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// Logout handles GET /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), auth.TokenFromRequest(r)); err != nil {
		h.log.Warn("failed to end session", zap.Error(err))
	}
	h.cookies.ClearCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// Dashboard handles GET /admin/dashboard
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.List(r.Context())
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, DashboardResponse{Comments: comments, Count: len(comments)})
}

// Activity handles GET /admin/dashboard/activity
func (h *AdminHandler) Activity(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.List(r.Context())
	if err != nil {
		respond.Error(w, h.log, err)
		return
	}
	var buf bytes.Buffer
	if err := util.RenderCommentActivity(&buf, comments); err != nil {
		respond.Error(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// DeleteComment handles DELETE /admin/comments/{id}
func (h *AdminHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		respond.Error(w, h.log, apperrors.NewValidationError("id", "must be a positive integer"))
		return
	}
	if err := h.comments.Delete(r.Context(), middleware.AdminFromContext(r.Context()), id); err != nil {
		respond.Error(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, OKResponse{OK: true})
}
