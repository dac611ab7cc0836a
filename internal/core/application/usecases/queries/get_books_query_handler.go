package queries

import (
	"context"
	"time"

	"library/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBooksQueryHandler lists catalog books from the database.
type GetBooksQueryHandler struct {
	db *gorm.DB
}

// NewGetBooksQueryHandler creates a handler for book listings.
// Requires a GORM database connection for query execution.
func NewGetBooksQueryHandler(db *gorm.DB) GetBooksQueryHandler {
	return GetBooksQueryHandler{db: db}
}

// Handle executes the query and returns matching books ordered by title.
func (h GetBooksQueryHandler) Handle(
	ctx context.Context,
	query GetBooksQuery,
) ([]GetBooksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			b.id,
			b.title,
			b.author,
			b.description,
			c.title,
			b.language,
			b.edition_year,
			b.quantity,
			b.is_possible_to_order,
			b.orders_quantity,
			b.rating,
			b.reviews_quantity,
			b.created_time
		FROM books b
		JOIN categories c ON c.id = b.category_id
		WHERE 1=1
	`
	args := make([]any, 0, 5)

	filter := query.Filter()
	if filter.Title != nil {
		sql += ` AND b.title ILIKE ?`
		args = append(args, "%"+*filter.Title+"%")
	}
	if filter.Author != nil {
		sql += ` AND b.author ILIKE ?`
		args = append(args, "%"+*filter.Author+"%")
	}
	if filter.CategoryTitle != nil {
		sql += ` AND c.title = ?`
		args = append(args, *filter.CategoryTitle)
	}
	if filter.OrdersMoreThan != nil {
		sql += ` AND b.orders_quantity > ?`
		args = append(args, *filter.OrdersMoreThan)
	}
	if filter.OrdersLessThan != nil {
		sql += ` AND b.orders_quantity < ?`
		args = append(args, *filter.OrdersLessThan)
	}
	sql += ` ORDER BY b.title`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]GetBooksQueryResponse, 0)
	for rows.Next() {
		var (
			id                         uuid.UUID
			title, author, description string
			categoryTitle              string
			language, editionYear      string
			quantity, ordersQuantity   int
			isPossibleToOrder          bool
			rating                     float64
			reviewsQuantity            int
			createdTime                time.Time
		)

		if err = rows.Scan(
			&id, &title, &author, &description, &categoryTitle,
			&language, &editionYear, &quantity, &isPossibleToOrder,
			&ordersQuantity, &rating, &reviewsQuantity, &createdTime,
		); err != nil {
			return nil, err
		}

		bookID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		books = append(books, GetBooksQueryResponse{
			ID:                bookID,
			Title:             title,
			Author:            author,
			Description:       description,
			CategoryTitle:     categoryTitle,
			Language:          language,
			EditionYear:       editionYear,
			Quantity:          quantity,
			IsPossibleToOrder: isPossibleToOrder,
			OrdersQuantity:    ordersQuantity,
			Rating:            rating,
			ReviewsQuantity:   reviewsQuantity,
			CreatedTime:       createdTime,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}
