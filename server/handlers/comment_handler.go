package handlers

import (
	"context"
	"net/http"

	"food-picker/apperrors"
	"food-picker/logger"
	"food-picker/models"
	"food-picker/server/respond"

	"go.uber.org/zap"
)

// CommentBox stores and moderates feedback comments.
type CommentBox interface {
	Create(ctx context.Context, name, message string) (*models.Comment, error)
	List(ctx context.Context) ([]models.Comment, error)
	Delete(ctx context.Context, admin string, id int64) error
}

type OKResponse struct {
	OK bool `json:"ok"`
}

type CommentHandler struct {
	comments CommentBox
	log      *zap.Logger
}

func NewCommentHandler(comments CommentBox, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		log:      logger.Component(log, "comment_handler"),
	}
}

// PostComment handles POST /api/comments with form fields name and message.
func (h *CommentHandler) PostComment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respond.Error(w, h.log, apperrors.NewValidationError("", "malformed form body"))
		return
	}
	if _, err := h.comments.Create(r.Context(), r.PostFormValue("name"), r.PostFormValue("message")); err != nil {
		respond.Error(w, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, OKResponse{OK: true})
}
