// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"library/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BookRepoFactory provides access to book repository within a transaction.
	BookRepoFactory interface {
		BookRepository() ports.BookRepository
	}

	// ReviewRepoFactory provides access to review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// CategoryRepoFactory provides access to category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BookUoW manages transactions for catalog operations on books.
	BookUoW interface {
		TxManager
		BookRepoFactory
	}

	// BookUoWFactory creates new book unit of work instances.
	BookUoWFactory interface {
		Create() BookUoW
	}

	// CategoryUoW manages transactions for category operations.
	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
	}

	// CategoryUoWFactory creates new category unit of work instances.
	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// ReviewUoW manages transactions spanning review and book aggregates.
	// Saving a review and recomputing the book rating happen in one transaction.
	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		BookRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}

	// UoW manages transactions across order and book aggregates.
	// Used for commands that read or move inventory while changing an order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   bookRepo := uow.BookRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		BookRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
