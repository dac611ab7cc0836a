// Package book contains the Book aggregate. Besides catalogue attributes the
// aggregate owns the inventory ledger for its physical copies: available
// quantity, cumulative fulfilled-order count, and the orderability flag.
package book

import (
	"errors"
	"fmt"
	"math"
	"time"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

// Review grades are integers on a five-point scale.
const (
	MinGrade = 1
	MaxGrade = 5
)

var (
	// ErrBookIsNotConstructed is returned when a Book instance was not created
	// through the NewBook or RestoreBook factory functions.
	ErrBookIsNotConstructed = errors.New("Book must be created via NewBook or RestoreBook constructor")

	// ErrOutOfStock is returned by ReserveOnFulfillment when no copies are left.
	// The caller is expected to have checked availability before the transition;
	// hitting this error means the check and the reservation raced.
	ErrOutOfStock = errors.New("no copies of the book are left in stock")

	// ErrInventoryUnavailable is returned when an order is created against a
	// book that has no copies left or is flagged as not orderable.
	ErrInventoryUnavailable = errors.New("book is not available for ordering")
)

// Book is the aggregate root for a catalogue entry and its copy inventory.
//
// Inventory invariants:
//   - quantity never goes negative
//   - quantity is decremented only when an order is fulfilled and incremented
//     only when a fulfilled order is reversed
//   - ordersQuantity is monotonically non-decreasing
type Book struct {
	id              kernel.UUID
	title           string
	author          string
	description     string
	categoryID      kernel.UUID
	subcategoryID   *kernel.UUID
	language        string
	editionYear     string
	inventoryNumber string

	quantity          int
	isPossibleToOrder bool
	ordersQuantity    int

	rating          float64
	reviewsQuantity int
	totalRating     int

	createdTime time.Time

	guard guard.ConstructorGuard
}

// NewBook creates a catalogue entry with the given number of copies.
// The book starts orderable, with no fulfilled orders and no reviews.
func NewBook(id kernel.UUID, title, author string, categoryID kernel.UUID, quantity int) (*Book, error) {
	b := &Book{
		isPossibleToOrder: true,
		createdTime:       time.Now().UTC(),
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setTitle(title),
		b.setAuthor(author),
		b.setCategoryID(categoryID),
		b.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBook reconstructs a Book aggregate from persistence.
func RestoreBook(
	id kernel.UUID,
	title, author, description string,
	categoryID kernel.UUID,
	subcategoryID *kernel.UUID,
	language, editionYear, inventoryNumber string,
	quantity int,
	isPossibleToOrder bool,
	ordersQuantity int,
	reviewsQuantity int,
	totalRating int,
	rating float64,
	createdTime time.Time,
) (*Book, error) {
	b := &Book{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setTitle(title),
		b.setAuthor(author),
		b.setCategoryID(categoryID),
		b.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	if ordersQuantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"orders quantity",
			fmt.Errorf("%d is negative", ordersQuantity),
		)
	}

	b.description = description
	b.subcategoryID = subcategoryID
	b.language = language
	b.editionYear = editionYear
	b.inventoryNumber = inventoryNumber
	b.isPossibleToOrder = isPossibleToOrder
	b.ordersQuantity = ordersQuantity
	b.reviewsQuantity = reviewsQuantity
	b.totalRating = totalRating
	b.rating = rating
	b.createdTime = createdTime
	return b, nil
}

// Validate ensures the Book instance was properly constructed.
func (b *Book) Validate() error {
	if b == nil {
		return ErrBookIsNotConstructed
	}
	return b.guard.Validate(ErrBookIsNotConstructed)
}

// IsEqual compares two books by their unique identifiers.
func (b *Book) IsEqual(other *Book) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// IsAvailableForOrder reports whether a new order may be created against this
// book: at least one copy must be in stock and the book must be orderable.
func (b *Book) IsAvailableForOrder() bool {
	return b.quantity > 0 && b.isPossibleToOrder
}

// ReserveOnFulfillment consumes one copy when an order is fulfilled:
// quantity is decremented and the cumulative fulfilled-order count is
// incremented. Fails with ErrOutOfStock if no copies are left at call time.
//
// The order transition logic is the sole caller and must invoke this exactly
// once per fulfillment edge.
func (b *Book) ReserveOnFulfillment() error {
	if b.quantity <= 0 {
		return ErrOutOfStock
	}

	b.quantity--
	b.ordersQuantity++
	return nil
}

// ReleaseOnReversal returns one copy to stock when a fulfilled order is
// reversed. It is the exact inverse of ReserveOnFulfillment with respect to
// quantity; the cumulative fulfilled-order count is not rolled back.
func (b *Book) ReleaseOnReversal() {
	b.quantity++
}

// ApplyReviewGrade folds a newly persisted review grade into the book's
// aggregate rating. This is an explicit step the review use case calls after
// storing the review, rather than a hidden persistence hook.
func (b *Book) ApplyReviewGrade(grade int) error {
	if grade < MinGrade || grade > MaxGrade {
		return errs.NewValueIsOutOfRangeError("grade", grade, MinGrade, MaxGrade)
	}

	b.totalRating += grade
	b.reviewsQuantity++
	b.rating = math.Round(float64(b.totalRating)/float64(b.reviewsQuantity)*100) / 100
	return nil
}

// UpdateCatalogInfo replaces the descriptive attributes of the book.
func (b *Book) UpdateCatalogInfo(title, author, description, language, editionYear string) error {
	if err := errors.Join(
		b.setTitle(title),
		b.setAuthor(author),
	); err != nil {
		return err
	}

	b.description = description
	b.language = language
	b.editionYear = editionYear
	return nil
}

// SetSubcategory assigns or clears the book's subcategory.
func (b *Book) SetSubcategory(subcategoryID *kernel.UUID) error {
	if subcategoryID != nil {
		if err := subcategoryID.Validate(); err != nil {
			return err
		}
	}
	b.subcategoryID = subcategoryID
	return nil
}

// SetInventoryNumber assigns the physical inventory number.
func (b *Book) SetInventoryNumber(inventoryNumber string) {
	b.inventoryNumber = inventoryNumber
}

// SetOrderable toggles whether new orders may be created against this book.
func (b *Book) SetOrderable(orderable bool) {
	b.isPossibleToOrder = orderable
}

// SetQuantity replaces the copy count, e.g. after a stocktake.
func (b *Book) SetQuantity(quantity int) error {
	return b.setQuantity(quantity)
}

// ID returns the book's unique identifier.
func (b *Book) ID() kernel.UUID {
	return b.id
}

// Title returns the book's title.
func (b *Book) Title() string {
	return b.title
}

// Author returns the book's author.
func (b *Book) Author() string {
	return b.author
}

// Description returns the book's description.
func (b *Book) Description() string {
	return b.description
}

// CategoryID returns the identifier of the book's category.
func (b *Book) CategoryID() kernel.UUID {
	return b.categoryID
}

// SubcategoryID returns the identifier of the book's subcategory, or nil.
func (b *Book) SubcategoryID() *kernel.UUID {
	return b.subcategoryID
}

// Language returns the book's language.
func (b *Book) Language() string {
	return b.language
}

// EditionYear returns the book's edition year.
func (b *Book) EditionYear() string {
	return b.editionYear
}

// InventoryNumber returns the book's physical inventory number.
func (b *Book) InventoryNumber() string {
	return b.inventoryNumber
}

// Quantity returns the number of copies currently in stock.
func (b *Book) Quantity() int {
	return b.quantity
}

// IsPossibleToOrder reports whether the book is flagged as orderable.
func (b *Book) IsPossibleToOrder() bool {
	return b.isPossibleToOrder
}

// OrdersQuantity returns the cumulative number of fulfilled orders.
func (b *Book) OrdersQuantity() int {
	return b.ordersQuantity
}

// Rating returns the book's average review grade, rounded to two decimals.
func (b *Book) Rating() float64 {
	return b.rating
}

// ReviewsQuantity returns the number of reviews folded into the rating.
func (b *Book) ReviewsQuantity() int {
	return b.reviewsQuantity
}

// TotalRating returns the running sum of review grades.
func (b *Book) TotalRating() int {
	return b.totalRating
}

// CreatedTime returns when the catalogue entry was created.
func (b *Book) CreatedTime() time.Time {
	return b.createdTime
}

func (b *Book) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Book) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	b.title = title
	return nil
}

func (b *Book) setAuthor(author string) error {
	if author == "" {
		return errs.NewValueIsRequiredError("author")
	}
	b.author = author
	return nil
}

func (b *Book) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	b.categoryID = categoryID
	return nil
}

func (b *Book) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}
	b.quantity = quantity
	return nil
}
