package jobs

import (
	"context"
	"log/slog"

	"library/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderExpiryJob manages the scheduled rejection of overdue pending orders.
// Runs every minute so an order whose due time has passed does not keep a
// copy of the book reservable for long.
type OrderExpiryJob struct {
	handler commands.ExpireOverdueOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderExpiryJob creates a new job for expiring overdue orders.
// Uses ExpireOverdueOrdersCommandHandler to reject stale pending orders.
func NewOrderExpiryJob(handler commands.ExpireOverdueOrdersCommandHandler, logger *slog.Logger) *OrderExpiryJob {
	return &OrderExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_expiry_job"),
	}
}

// Start begins the order expiry job to run every minute.
func (j *OrderExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewExpireOverdueOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order expiry job started (running every minute)")
	return nil
}

// Stop stops the order expiry job.
func (j *OrderExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order expiry job stopped")
}
