// Package review contains the Review entity. A review carries a grade on the
// five-point scale; folding grades into a book's aggregate rating is an
// explicit application-layer step, not a persistence side effect.
package review

import (
	"errors"
	"time"

	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/errs"
	"library/internal/pkg/guard"
)

// ErrReviewIsNotConstructed is returned when a Review instance was not
// created through the NewReview or RestoreReview factory functions.
var ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview or RestoreReview constructor")

// Review is a user's graded opinion on a book.
type Review struct {
	id          kernel.UUID
	authorID    kernel.UUID
	bookID      kernel.UUID
	text        string
	grade       int
	createdTime time.Time

	guard guard.ConstructorGuard
}

// NewReview creates a review with a grade on the five-point scale.
func NewReview(id, authorID, bookID kernel.UUID, text string, grade int) (*Review, error) {
	r := &Review{
		text:        text,
		createdTime: time.Now().UTC(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setAuthorID(authorID),
		r.setBookID(bookID),
		r.setGrade(grade),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a Review from persistence.
func RestoreReview(id, authorID, bookID kernel.UUID, text string, grade int, createdTime time.Time) (*Review, error) {
	r, err := NewReview(id, authorID, bookID, text, grade)
	if err != nil {
		return nil, err
	}

	r.createdTime = createdTime
	return r, nil
}

// Validate ensures the Review instance was properly constructed.
func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// AuthorID returns the identifier of the user who wrote the review.
func (r *Review) AuthorID() kernel.UUID {
	return r.authorID
}

// BookID returns the identifier of the reviewed book.
func (r *Review) BookID() kernel.UUID {
	return r.bookID
}

// Text returns the review's free text.
func (r *Review) Text() string {
	return r.text
}

// Grade returns the review's grade on the five-point scale.
func (r *Review) Grade() int {
	return r.grade
}

// CreatedTime returns when the review was written.
func (r *Review) CreatedTime() time.Time {
	return r.createdTime
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}
	r.authorID = authorID
	return nil
}

func (r *Review) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}
	r.bookID = bookID
	return nil
}

func (r *Review) setGrade(grade int) error {
	if grade < book.MinGrade || grade > book.MaxGrade {
		return errs.NewValueIsOutOfRangeError("grade", grade, book.MinGrade, book.MaxGrade)
	}
	r.grade = grade
	return nil
}
