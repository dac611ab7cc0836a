package bookrepo

import (
	"context"
	"errors"

	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBookRepository implements BookRepository using GORM.
type GormBookRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookRepository creates a new GORM book repository.
func NewGormBookRepository(db *gorm.DB, tracker aggregateTracker) *GormBookRepository {
	return &GormBookRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new book to the database.
func (r *GormBookRepository) Add(ctx context.Context, aggregate *book.Book) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing book to the database.
// Select("*") forces zero values through: a quantity that dropped to 0 must
// not be skipped the way GORM skips zero fields by default.
func (r *GormBookRepository) Update(ctx context.Context, aggregate *book.Book) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a book by ID.
func (r *GormBookRepository) Get(ctx context.Context, id kernel.UUID) (*book.Book, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate retrieves a book by ID and locks its row until the current
// transaction ends. Inventory mutations must load the book this way so two
// fulfillments of the last copy cannot both succeed.
func (r *GormBookRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*book.Book, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormBookRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*book.Book, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("book", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a book from the database.
func (r *GormBookRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BookDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("book", id.String())
	}

	return nil
}
