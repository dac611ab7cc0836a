package commands

import (
	"errors"

	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/guard"
)

var ErrAddReviewCommandIsNotConstructed = errors.New(
	"AddReviewCommand must be created via NewAddReviewCommand constructor",
)

// AddReviewCommand represents a request to leave a review on a book.
// Any authenticated user may review; the grade range is enforced by the
// review aggregate.
type AddReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	authorID kernel.UUID
	bookID   kernel.UUID
	text     string
	grade    int

	guard guard.ConstructorGuard
}

// NewAddReviewCommand creates a command to add a review.
func NewAddReviewCommand(
	reviewID, authorID, bookID kernel.UUID,
	text string,
	grade int,
) (AddReviewCommand, error) {
	reviewCommand := AddReviewCommand{
		text:  text,
		grade: grade,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setReviewID(reviewID),
		reviewCommand.setAuthorID(authorID),
		reviewCommand.setBookID(bookID),
	); err != nil {
		return AddReviewCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddReviewCommandIsNotConstructed if validation fails.
func (c AddReviewCommand) Validate() error {
	return c.guard.Validate(ErrAddReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier for the new review.
func (c AddReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// AuthorID returns the identifier of the reviewing user.
func (c AddReviewCommand) AuthorID() kernel.UUID {
	return c.authorID
}

// BookID returns the identifier of the reviewed book.
func (c AddReviewCommand) BookID() kernel.UUID {
	return c.bookID
}

// Text returns the review text.
func (c AddReviewCommand) Text() string {
	return c.text
}

// Grade returns the review grade.
func (c AddReviewCommand) Grade() int {
	return c.grade
}

func (c *AddReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *AddReviewCommand) setAuthorID(authorID kernel.UUID) error {
	if err := authorID.Validate(); err != nil {
		return err
	}

	c.authorID = authorID
	return nil
}

func (c *AddReviewCommand) setBookID(bookID kernel.UUID) error {
	if err := bookID.Validate(); err != nil {
		return err
	}

	c.bookID = bookID
	return nil
}
