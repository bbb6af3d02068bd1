package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"food-picker/apperrors"
	"food-picker/config"
	"food-picker/logger"
	"food-picker/metrics"
	"food-picker/models"

	"go.uber.org/zap"
)

// CommentStore persists comments. dao/postgres.CommentDAO implements it.
type CommentStore interface {
	Create(ctx context.Context, name, message string) (*models.Comment, error)
	List(ctx context.Context) ([]models.Comment, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CommentService handles the feedback box. A nil store means no database is
// configured: listing yields nothing and writes fail with ErrNotConfigured.
type CommentService struct {
	store   CommentStore
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewCommentService(store CommentStore, m *metrics.Metrics, log *zap.Logger) *CommentService {
	return &CommentService{
		store:   store,
		metrics: m,
		log:     logger.Component(log, "comment_service"),
	}
}

func (s *CommentService) Create(ctx context.Context, name, message string) (*models.Comment, error) {
	if err := checkText("name", name); err != nil {
		return nil, err
	}
	if err := checkText("message", message); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" {
		name = config.COMMENT_DEFAULT_NAME
	}
	name = truncate(name, config.COMMENT_NAME_MAX_LEN)
	message = truncate(message, config.COMMENT_MESSAGE_MAX_LEN)
	if message == "" {
		return nil, apperrors.NewValidationError("message", "must not be empty")
	}

	if s.store == nil {
		return nil, apperrors.ErrNotConfigured
	}
	comment, err := s.store.Create(ctx, name, message)
	if err != nil {
		return nil, err
	}
	s.metrics.CommentsCreated.Inc()
	s.log.Info("comment stored", zap.Int64("id", comment.ID))
	return comment, nil
}

// List returns comments newest first.
func (s *CommentService) List(ctx context.Context) ([]models.Comment, error) {
	if s.store == nil {
		return []models.Comment{}, nil
	}
	return s.store.List(ctx)
}

// Delete removes comment id on behalf of admin. An empty admin name means the
// caller holds no session.
func (s *CommentService) Delete(ctx context.Context, admin string, id int64) error {
	if admin == "" {
		return apperrors.ErrUnauthorized
	}
	if s.store == nil {
		return apperrors.ErrNotConfigured
	}
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrNotFound
	}
	s.metrics.CommentsDeleted.Inc()
	s.log.Info("comment deleted", zap.Int64("id", id), zap.String("admin", admin))
	return nil
}

// checkText rejects input Postgres cannot store in a UTF-8 text column.
func checkText(field, s string) error {
	if !utf8.ValidString(s) {
		return apperrors.NewValidationError(field, "must be valid UTF-8")
	}
	if strings.ContainsRune(s, 0) {
		return apperrors.NewValidationError(field, "must not contain NUL characters")
	}
	return nil
}

// truncate cuts s to at most max runes.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
