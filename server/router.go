package server

import (
	"net/http"

	"food-picker/config"
	"food-picker/metrics"
	"food-picker/server/middleware"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type RestaurantRoutes interface {
	GetNearby(w http.ResponseWriter, r *http.Request)
	GetRandomFood(w http.ResponseWriter, r *http.Request)
}

type CommentRoutes interface {
	PostComment(w http.ResponseWriter, r *http.Request)
}

type AdminRoutes interface {
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	Activity(w http.ResponseWriter, r *http.Request)
	DeleteComment(w http.ResponseWriter, r *http.Request)
}

type HealthRoutes interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	restaurantHandler RestaurantRoutes
	commentHandler    CommentRoutes
	adminHandler      AdminRoutes
	healthHandler     HealthRoutes
	sessions          middleware.SessionResolver
	limits            config.LimitsConfig
	metrics           *metrics.Metrics
	log               *zap.Logger
	router            *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	restaurantHandler RestaurantRoutes,
	commentHandler CommentRoutes,
	adminHandler AdminRoutes,
	healthHandler HealthRoutes,
	sessions middleware.SessionResolver,
	limits config.LimitsConfig,
	m *metrics.Metrics,
	log *zap.Logger,
	router *mux.Router) *Router {
	return &Router{
		restaurantHandler: restaurantHandler,
		commentHandler:    commentHandler,
		adminHandler:      adminHandler,
		healthHandler:     healthHandler,
		sessions:          sessions,
		limits:            limits,
		metrics:           m,
		log:               log,
		router:            router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(middleware.Recoverer(r.log), middleware.RequestLogger(r.log, r.metrics))

	// expects ?lat={latitude(float)}&lng={longitude(float)}[&radius={meters(int)}&exclude={name}&types={csv}]
	r.router.Handle("/api/nearby", r.limited("/api/nearby", r.limits.NearbyPerMinute, r.restaurantHandler.GetNearby)).Methods(http.MethodGet)
	r.router.HandleFunc("/api/random", r.restaurantHandler.GetRandomFood).Methods(http.MethodGet)
	r.router.Handle("/api/comments", r.limited("/api/comments", r.limits.CommentPerMinute, r.commentHandler.PostComment)).Methods(http.MethodPost)

	r.router.HandleFunc("/admin/login", r.adminHandler.LoginPage).Methods(http.MethodGet)
	r.router.Handle("/admin/login", r.limited("/admin/login", r.limits.LoginPerMinute, r.adminHandler.Login)).Methods(http.MethodPost)
	r.router.HandleFunc("/admin/logout", r.adminHandler.Logout).Methods(http.MethodGet)

	admin := r.router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin(r.sessions, r.log))
	admin.HandleFunc("/dashboard", r.adminHandler.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/dashboard/activity", r.adminHandler.Activity).Methods(http.MethodGet)
	admin.HandleFunc("/comments/{id}", r.adminHandler.DeleteComment).Methods(http.MethodDelete)

	r.router.HandleFunc("/ping", r.healthHandler.Ping).Methods(http.MethodGet)
	r.router.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)
}

func (r *Router) limited(route string, perMinute int, h http.HandlerFunc) http.Handler {
	return middleware.RateLimit(route, perMinute, r.metrics)(h)
}
