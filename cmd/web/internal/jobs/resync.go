package jobs

import (
	"context"
	"log/slog"
	"time"

	"shopping.xdoubleu.com/cmd/web/internal/services"
)

const ResyncJobID = "lists"

// ResyncJob periodically replaces every cached collection with the server's
// state so open tabs don't drift from what other devices changed.
type ResyncJob struct {
	listService *services.ListService
	interval    time.Duration
}

func NewResyncJob(
	listService *services.ListService,
	interval time.Duration,
) ResyncJob {
	return ResyncJob{
		listService: listService,
		interval:    interval,
	}
}

func (j ResyncJob) ID() string {
	return ResyncJobID
}

func (j ResyncJob) RunEvery() time.Duration {
	return j.interval
}

func (j ResyncJob) Run(ctx context.Context, logger *slog.Logger) error {
	logger.Debug("resyncing shopping lists")
	return j.listService.RefreshAll(ctx)
}
