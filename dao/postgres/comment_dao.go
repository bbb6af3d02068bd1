package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"food-picker/models"
)

const (
	insertCommentSQL = `INSERT INTO comments (name, message) VALUES ($1, $2) RETURNING id, created_at`
	listCommentsSQL  = `SELECT id, name, message, created_at FROM comments ORDER BY created_at DESC, id DESC`
	deleteCommentSQL = `DELETE FROM comments WHERE id = $1`
)

// CommentDAO persists feedback comments in Postgres.
type CommentDAO struct {
	db *sql.DB
}

func NewCommentDAO(db *sql.DB) *CommentDAO {
	return &CommentDAO{db: db}
}

// Create inserts a comment and returns it with the generated id and timestamp.
func (dao *CommentDAO) Create(ctx context.Context, name, message string) (*models.Comment, error) {
	comment := &models.Comment{Name: name, Message: message}
	err := dao.db.QueryRowContext(ctx, insertCommentSQL, name, message).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	comment.CreatedAt = comment.CreatedAt.UTC()
	return comment, nil
}

// List returns every comment, newest first.
func (dao *CommentDAO) List(ctx context.Context) ([]models.Comment, error) {
	rows, err := dao.db.QueryContext(ctx, listCommentsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Name, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment and reports whether a row existed.
func (dao *CommentDAO) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := dao.db.ExecContext(ctx, deleteCommentSQL, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}
