package jobs

import (
	"fmt"
	"log/slog"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	handlingReportUploadJob *HandlingReportUploadJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	registerHandlingEventHandler commands.RegisterHandlingEventCommandHandler,
	appEvents ports.ApplicationEvents,
	uploadDir string,
	failureDir string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		handlingReportUploadJob: NewHandlingReportUploadJob(
			registerHandlingEventHandler, appEvents, uploadDir, failureDir, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.handlingReportUploadJob.Start(); err != nil {
		return fmt.Errorf("failed to start handling report upload job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.handlingReportUploadJob.Stop()
}
