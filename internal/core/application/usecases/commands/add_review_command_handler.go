package commands

import (
	"context"
	"errors"

	"library/internal/core/domain/model/review"
)

var ErrReviewAlreadyExists = errors.New("user has already reviewed this book")

// AddReviewCommandHandler handles leaving reviews.
// Persisting the review and folding its grade into the book rating happen in
// the same transaction, so the rating counters never drift from the stored
// reviews.
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewAddReviewCommandHandler creates a handler for review additions.
func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add review command.
// Returns ErrReviewAlreadyExists when the user already reviewed the book.
func (h AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newReview, err := review.NewReview(cmd.ReviewID(), cmd.AuthorID(), cmd.BookID(), cmd.Text(), cmd.Grade())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()
	bookRepo := uow.BookRepository()

	exists, err := reviewRepo.ExistsForUserAndBook(ctx, cmd.AuthorID(), cmd.BookID())
	if err != nil {
		return err
	}
	if exists {
		return ErrReviewAlreadyExists
	}

	reviewedBook, err := bookRepo.GetForUpdate(ctx, cmd.BookID())
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, newReview); err != nil {
		return err
	}

	if err = reviewedBook.ApplyReviewGrade(newReview.Grade()); err != nil {
		return err
	}

	if err = bookRepo.Update(ctx, reviewedBook); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
