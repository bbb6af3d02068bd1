package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"food-picker/apperrors"
	"food-picker/config"
	"food-picker/metrics"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// MockHandlers answers every route with a fixed body naming the route.
type MockHandlers struct{}

func reply(body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}
}

func (MockHandlers) GetNearby(w http.ResponseWriter, r *http.Request)     { reply("nearby")(w, r) }
func (MockHandlers) GetRandomFood(w http.ResponseWriter, r *http.Request) { reply("random")(w, r) }
func (MockHandlers) PostComment(w http.ResponseWriter, r *http.Request)   { reply("comment")(w, r) }
func (MockHandlers) LoginPage(w http.ResponseWriter, r *http.Request)     { reply("login page")(w, r) }
func (MockHandlers) Login(w http.ResponseWriter, r *http.Request)         { reply("login")(w, r) }
func (MockHandlers) Logout(w http.ResponseWriter, r *http.Request)        { reply("logout")(w, r) }
func (MockHandlers) Dashboard(w http.ResponseWriter, r *http.Request)     { reply("dashboard")(w, r) }
func (MockHandlers) Activity(w http.ResponseWriter, r *http.Request)      { reply("activity")(w, r) }
func (MockHandlers) DeleteComment(w http.ResponseWriter, r *http.Request) { reply("delete")(w, r) }
func (MockHandlers) Ping(w http.ResponseWriter, r *http.Request)          { reply("pong")(w, r) }

type tokenResolver string

func (t tokenResolver) Resolve(ctx context.Context, token string) (string, error) {
	if token == string(t) {
		return "admin", nil
	}
	return "", apperrors.ErrUnauthorized
}

func newTestRouter(limits config.LimitsConfig) *mux.Router {
	h := MockHandlers{}
	router := mux.NewRouter()
	appRouter := NewRouter(h, h, h, h, tokenResolver("valid"), limits, metrics.New(), zap.NewNop(), router)
	appRouter.RegisterRoutes()
	return router
}

func TestRouter_RegisterRoutes(t *testing.T) {
	router := newTestRouter(config.LimitsConfig{NearbyPerMinute: 100, CommentPerMinute: 100, LoginPerMinute: 100})

	tests := []struct {
		name       string
		method     string
		path       string
		session    string
		statusCode int
		response   string
	}{
		{"Nearby", "GET", "/api/nearby?lat=1&lng=2", "", http.StatusOK, "nearby"},
		{"Random Food", "GET", "/api/random", "", http.StatusOK, "random"},
		{"Post Comment", "POST", "/api/comments", "", http.StatusOK, "comment"},
		{"Login Page", "GET", "/admin/login", "", http.StatusOK, "login page"},
		{"Login", "POST", "/admin/login", "", http.StatusOK, "login"},
		{"Logout", "GET", "/admin/logout", "", http.StatusOK, "logout"},
		{"Dashboard", "GET", "/admin/dashboard", "valid", http.StatusOK, "dashboard"},
		{"Activity", "GET", "/admin/dashboard/activity", "valid", http.StatusOK, "activity"},
		{"Delete Comment", "DELETE", "/admin/comments/3", "valid", http.StatusOK, "delete"},
		{"Dashboard Without Session", "GET", "/admin/dashboard", "", http.StatusUnauthorized, ""},
		{"Delete With Bad Session", "DELETE", "/admin/comments/3", "forged", http.StatusUnauthorized, ""},
		{"Ping Route", "GET", "/ping", "", http.StatusOK, "pong"},
		{"Wrong Method", "GET", "/api/comments", "", http.StatusMethodNotAllowed, ""},
		{"Invalid Route", "GET", "/invalid", "", http.StatusNotFound, ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			if test.session != "" {
				req.AddCookie(&http.Cookie{Name: config.SESSION_COOKIE_NAME, Value: test.session})
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, test.statusCode, rr.Code)
			if test.response != "" {
				assert.Equal(t, test.response, rr.Body.String())
			}
		})
	}
}

func TestRouter_RateLimitsPerRoute(t *testing.T) {
	router := newTestRouter(config.LimitsConfig{NearbyPerMinute: 2, CommentPerMinute: 1, LoginPerMinute: 1})

	serve := func(method, path string) int {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, serve("GET", "/api/nearby"))
	assert.Equal(t, http.StatusOK, serve("GET", "/api/nearby"))
	assert.Equal(t, http.StatusTooManyRequests, serve("GET", "/api/nearby"))

	assert.Equal(t, http.StatusOK, serve("POST", "/api/comments"))
	assert.Equal(t, http.StatusTooManyRequests, serve("POST", "/api/comments"))

	assert.Equal(t, http.StatusOK, serve("POST", "/admin/login"))
	assert.Equal(t, http.StatusTooManyRequests, serve("POST", "/admin/login"))

	// unlimited routes are unaffected
	assert.Equal(t, http.StatusOK, serve("GET", "/admin/login"))
	assert.Equal(t, http.StatusOK, serve("GET", "/api/random"))
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(config.LimitsConfig{NearbyPerMinute: 1, CommentPerMinute: 1, LoginPerMinute: 1})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/ping", nil))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `food_picker_http_request_duration_seconds_count{method="GET",route="/ping",status="200"} 1`)
}
