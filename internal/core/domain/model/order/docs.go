// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is a student's request to borrow one book. Its status moves from
// Pending through Processing to Fulfilled, or to the terminal Rejected and
// Cancelled statuses. Transitions that consume or release a book copy report
// an InventoryEffect which the application layer applies to the Book
// aggregate inside the same transaction, keeping copy counts consistent with
// live order state.
package order
