// Package redis provides a caching decorator for the book repository.
// Book reads dominate the workload (every catalog view hits the get path),
// so cache hits spare the database. Writes and locked reads always go to the
// primary repository; any write invalidates the cached entry.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/kernel"
	"library/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// CachedBookRepository decorates a BookRepository with a Redis read cache.
type CachedBookRepository struct {
	primary ports.BookRepository
	client  *redis.Client
	ttl     time.Duration
}

var _ ports.BookRepository = (*CachedBookRepository)(nil)

// NewCachedBookRepository creates a caching decorator over primary.
func NewCachedBookRepository(
	primary ports.BookRepository,
	client *redis.Client,
	cacheTTL time.Duration,
) *CachedBookRepository {
	return &CachedBookRepository{
		primary: primary,
		client:  client,
		ttl:     cacheTTL,
	}
}

// cachedBook is the JSON shape of a book cache entry.
type cachedBook struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Author            string    `json:"author"`
	Description       string    `json:"description"`
	CategoryID        string    `json:"category_id"`
	SubcategoryID     *string   `json:"subcategory_id,omitempty"`
	Language          string    `json:"language"`
	EditionYear       string    `json:"edition_year"`
	InventoryNumber   string    `json:"inventory_number"`
	Quantity          int       `json:"quantity"`
	IsPossibleToOrder bool      `json:"is_possible_to_order"`
	OrdersQuantity    int       `json:"orders_quantity"`
	ReviewsQuantity   int       `json:"reviews_quantity"`
	TotalRating       int       `json:"total_rating"`
	Rating            float64   `json:"rating"`
	CreatedTime       time.Time `json:"created_time"`
}

func cacheKey(id kernel.UUID) string {
	return "book:" + id.String()
}

// Get retrieves a book, serving from cache when possible.
func (r *CachedBookRepository) Get(ctx context.Context, id kernel.UUID) (*book.Book, error) {
	payload, err := r.client.Get(ctx, cacheKey(id)).Bytes()
	if err == nil {
		if cached, unmarshalErr := fromCache(payload); unmarshalErr == nil {
			return cached, nil
		}
	}

	theBook, err := r.primary.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err = toCache(theBook); err == nil {
		r.client.Set(ctx, cacheKey(id), payload, r.ttl)
	}

	return theBook, nil
}

// GetForUpdate bypasses the cache: a locked read must see the current row.
func (r *CachedBookRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*book.Book, error) {
	return r.primary.GetForUpdate(ctx, id)
}

// Add persists a new book through the primary repository.
func (r *CachedBookRepository) Add(ctx context.Context, aggregate *book.Book) error {
	return r.primary.Add(ctx, aggregate)
}

// Update persists the book and invalidates its cache entry.
func (r *CachedBookRepository) Update(ctx context.Context, aggregate *book.Book) error {
	defer r.client.Del(ctx, cacheKey(aggregate.ID()))
	return r.primary.Update(ctx, aggregate)
}

// Delete removes the book and invalidates its cache entry.
func (r *CachedBookRepository) Delete(ctx context.Context, id kernel.UUID) error {
	defer r.client.Del(ctx, cacheKey(id))
	return r.primary.Delete(ctx, id)
}

func toCache(aggregate *book.Book) ([]byte, error) {
	entry := cachedBook{
		ID:                aggregate.ID().String(),
		Title:             aggregate.Title(),
		Author:            aggregate.Author(),
		Description:       aggregate.Description(),
		CategoryID:        aggregate.CategoryID().String(),
		Language:          aggregate.Language(),
		EditionYear:       aggregate.EditionYear(),
		InventoryNumber:   aggregate.InventoryNumber(),
		Quantity:          aggregate.Quantity(),
		IsPossibleToOrder: aggregate.IsPossibleToOrder(),
		OrdersQuantity:    aggregate.OrdersQuantity(),
		ReviewsQuantity:   aggregate.ReviewsQuantity(),
		TotalRating:       aggregate.TotalRating(),
		Rating:            aggregate.Rating(),
		CreatedTime:       aggregate.CreatedTime(),
	}
	if id := aggregate.SubcategoryID(); id != nil {
		raw := id.String()
		entry.SubcategoryID = &raw
	}

	return json.Marshal(entry)
}

func fromCache(payload []byte) (*book.Book, error) {
	var entry cachedBook
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, err
	}

	id, err := kernel.UUIDFromString(entry.ID)
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromString(entry.CategoryID)
	if err != nil {
		return nil, err
	}

	var subcategoryID *kernel.UUID
	if entry.SubcategoryID != nil {
		subID, subErr := kernel.UUIDFromString(*entry.SubcategoryID)
		if subErr != nil {
			return nil, subErr
		}
		subcategoryID = &subID
	}

	return book.RestoreBook(
		id,
		entry.Title, entry.Author, entry.Description,
		categoryID,
		subcategoryID,
		entry.Language, entry.EditionYear, entry.InventoryNumber,
		entry.Quantity,
		entry.IsPossibleToOrder,
		entry.OrdersQuantity,
		entry.ReviewsQuantity,
		entry.TotalRating,
		entry.Rating,
		entry.CreatedTime,
	)
}
