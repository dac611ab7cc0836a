package queries

import (
	"context"
	"time"

	"library/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBookReviewsQueryHandler lists reviews for a book from the database.
type GetBookReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetBookReviewsQueryHandler creates a handler for review listings.
func NewGetBookReviewsQueryHandler(db *gorm.DB) GetBookReviewsQueryHandler {
	return GetBookReviewsQueryHandler{db: db}
}

// Handle executes the query and returns the book's reviews, newest first.
func (h GetBookReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetBookReviewsQuery,
) ([]GetBookReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.author_id,
			u.first_name || ' ' || u.last_name,
			r.text,
			r.grade,
			r.created_time
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.book_id = ?
		ORDER BY r.created_time DESC
	`, query.BookID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]GetBookReviewsQueryResponse, 0)
	for rows.Next() {
		var (
			id, authorID     uuid.UUID
			authorName, text string
			grade            int
			createdTime      time.Time
		)

		if err = rows.Scan(&id, &authorID, &authorName, &text, &grade, &createdTime); err != nil {
			return nil, err
		}

		resp := GetBookReviewsQueryResponse{
			AuthorName:  authorName,
			Text:        text,
			Grade:       grade,
			CreatedTime: createdTime,
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.AuthorID, err = kernel.UUIDFromBytes(authorID[:]); err != nil {
			return nil, err
		}

		reviews = append(reviews, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
