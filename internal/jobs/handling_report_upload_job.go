package jobs

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/ports"
)

// rejectSuffix marks files holding lines that could not be processed.
// Reject files are never scanned again.
const rejectSuffix = ".reject"

// HandlingReportUploadJob periodically scans a directory for uploaded
// handling report files. Ports without API access drop report files there
// in bulk. Every parsed line becomes a registration attempt. Lines that
// fail parsing or registration are written to a reject file in the parse
// failure directory, files that cannot be read at all are moved there
// wholesale, and fully processed files are removed.
type HandlingReportUploadJob struct {
	handler    commands.RegisterHandlingEventCommandHandler
	appEvents  ports.ApplicationEvents
	uploadDir  string
	failureDir string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewHandlingReportUploadJob creates a job scanning uploadDir every five
// seconds, routing rejects and unreadable files to failureDir.
func NewHandlingReportUploadJob(
	handler commands.RegisterHandlingEventCommandHandler,
	appEvents ports.ApplicationEvents,
	uploadDir string,
	failureDir string,
	logger *slog.Logger,
) *HandlingReportUploadJob {
	return &HandlingReportUploadJob{
		handler:    handler,
		appEvents:  appEvents,
		uploadDir:  uploadDir,
		failureDir: failureDir,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "handling_report_upload_job"),
	}
}

// Start begins the upload directory scan on a five second schedule.
// The upload and parse failure directories must differ, otherwise the
// scanner would pick its own reject files back up.
func (j *HandlingReportUploadJob) Start() error {
	if filepath.Clean(j.uploadDir) == filepath.Clean(j.failureDir) {
		return fmt.Errorf("upload and parse failure directories must not be the same directory: %s", j.uploadDir)
	}

	for _, dir := range []string{j.uploadDir, j.failureDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	_, err := j.cron.AddFunc("*/5 * * * * *", func() {
		j.Scan(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Handling report upload job started",
		"directory", j.uploadDir, "failure_directory", j.failureDir)
	return nil
}

// Stop stops the upload directory scan.
func (j *HandlingReportUploadJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Handling report upload job stopped")
}

// Scan processes every report file currently in the upload directory.
// Exported so the scan can also be triggered outside the schedule.
func (j *HandlingReportUploadJob) Scan(ctx context.Context) {
	entries, err := os.ReadDir(j.uploadDir)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to read upload directory",
			"directory", j.uploadDir, "error", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || strings.HasSuffix(entry.Name(), rejectSuffix) {
			continue
		}
		j.processFile(ctx, filepath.Join(j.uploadDir, entry.Name()))
	}
}

func (j *HandlingReportUploadJob) processFile(ctx context.Context, path string) {
	file, err := os.Open(path)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to open report file", "file", path, "error", err)
		j.moveToFailureDir(ctx, path)
		return
	}

	var rejected []string
	accepted := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err = j.processLine(ctx, line); err != nil {
			j.logger.WarnContext(ctx, "Rejected handling report line",
				"file", path, "error", err)
			rejected = append(rejected, line)
			continue
		}
		accepted++
	}
	scanErr := scanner.Err()
	_ = file.Close()

	if scanErr != nil {
		j.logger.ErrorContext(ctx, "Failed to read report file", "file", path, "error", scanErr)
		j.moveToFailureDir(ctx, path)
		return
	}

	if len(rejected) > 0 {
		j.writeRejectFile(ctx, path, rejected)
	}

	if err = os.Remove(path); err != nil {
		j.logger.ErrorContext(ctx, "Failed to remove processed report file",
			"file", path, "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Processed handling report file",
		"file", path, "accepted", accepted, "rejected", len(rejected))
}

func (j *HandlingReportUploadJob) processLine(ctx context.Context, line string) error {
	report, err := ParseHandlingReportLine(line)
	if err != nil {
		return err
	}

	registrationTime := time.Now()
	_ = j.appEvents.ReceivedHandlingEventRegistrationAttempt(ctx, ports.HandlingEventRegistrationAttempt{
		RegistrationTime: registrationTime,
		CompletionTime:   report.CompletionTime,
		TrackingID:       report.TrackingID,
		VoyageNumber:     report.VoyageNumber,
		UnLocode:         report.UnLocode,
		EventType:        report.EventType,
	})

	cmd, err := report.ToCommand(registrationTime)
	if err != nil {
		return err
	}

	return j.handler.Handle(ctx, cmd)
}

func (j *HandlingReportUploadJob) writeRejectFile(ctx context.Context, path string, lines []string) {
	rejectPath := filepath.Join(j.failureDir, filepath.Base(path)+rejectSuffix)
	content := strings.Join(lines, "\n") + "\n"

	if err := os.WriteFile(rejectPath, []byte(content), 0o644); err != nil {
		j.logger.ErrorContext(ctx, "Failed to write reject file",
			"file", rejectPath, "error", err)
	}
}

func (j *HandlingReportUploadJob) moveToFailureDir(ctx context.Context, path string) {
	destination := filepath.Join(j.failureDir, filepath.Base(path))

	if err := os.Rename(path, destination); err != nil {
		j.logger.ErrorContext(ctx, "Failed to move report file to failure directory",
			"file", path, "destination", destination, "error", err)
	}
}
