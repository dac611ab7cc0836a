package queries

import (
	"context"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database.
// The access policy decides the visibility scope: staff roles get the whole
// table, students get rows filtered by owner.
type GetOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the query and returns orders visible to the actor,
// newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			o.id,
			o.owner_id,
			o.book_id,
			b.title,
			o.status,
			o.comment,
			o.created_time,
			o.due_time
		FROM orders o
		JOIN books b ON b.id = o.book_id
	`
	args := make([]any, 0, 1)
	if !h.policy.CanViewAll(query.ActorRole()) {
		sql += ` WHERE o.owner_id = ?`
		args = append(args, query.ActorID().String())
	}
	sql += ` ORDER BY o.created_time DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id, ownerID, bookID uuid.UUID
			title               string
			status              string
			comment             string
			createdTime         time.Time
			dueTime             time.Time
		)

		if err = rows.Scan(&id, &ownerID, &bookID, &title, &status, &comment, &createdTime, &dueTime); err != nil {
			return nil, err
		}

		resp := GetOrdersQueryResponse{
			BookTitle:   title,
			Status:      status,
			Comment:     comment,
			CreatedTime: createdTime,
			DueTime:     dueTime,
		}
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OwnerID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		if resp.BookID, err = kernel.UUIDFromBytes(bookID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
