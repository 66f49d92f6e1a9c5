// Package jobs provides scheduled background tasks for the cargo tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for handling report intake.
//
// # Available Jobs
//
// 1. HandlingReportUploadJob - Scans an upload directory every five seconds for
// handling report files dropped there by ports and carriers without API
// access, registers every parsed line as a handling event and routes bad
// lines to a reject file in a separate parse failure directory.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(registerHandler, appEvents, uploadDir, failureDir, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Report File Format
//
// Report files are plain text, one report per line, four or five
// whitespace separated columns:
//
//	<completion time RFC3339> <tracking id> [<voyage number>] <un locode> <event type>
//
// Lines that fail parsing or registration are collected in a file with a
// .reject suffix in the parse failure directory, files that cannot be
// read at all are moved there wholesale, and the original is removed
// after the scan so every file is processed exactly once. The two
// directories must differ; StartAll fails otherwise.
package jobs
