package jobs

import (
	"fmt"
	"strings"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// HandlingReport is one parsed line of an uploaded handling report file.
// VoyageNumber is empty for events that happen ashore.
type HandlingReport struct {
	CompletionTime time.Time
	TrackingID     string
	VoyageNumber   string
	UnLocode       string
	EventType      string
}

// ParseHandlingReportLine parses one whitespace separated report line.
//
// A line has four or five columns:
//
//	<completion time> <tracking id> [<voyage number>] <un locode> <event type>
//
// The voyage column is present for LOAD and UNLOAD reports and absent for
// the others. Completion time is RFC 3339. Blank lines and lines starting
// with '#' are skipped by the caller.
func ParseHandlingReportLine(line string) (HandlingReport, error) {
	columns := strings.Fields(line)
	if len(columns) != 4 && len(columns) != 5 {
		return HandlingReport{}, fmt.Errorf("expected 4 or 5 columns, got %d", len(columns))
	}

	completionTime, err := time.Parse(time.RFC3339, columns[0])
	if err != nil {
		return HandlingReport{}, fmt.Errorf("invalid completion time %q: %w", columns[0], err)
	}

	report := HandlingReport{
		CompletionTime: completionTime,
		TrackingID:     columns[1],
	}

	if len(columns) == 5 {
		report.VoyageNumber = columns[2]
		report.UnLocode = columns[3]
		report.EventType = columns[4]
	} else {
		report.UnLocode = columns[2]
		report.EventType = columns[3]
	}

	return report, nil
}

// ToCommand converts the report into a registration command. The report's
// textual fields are validated here; a report that passes still has to
// survive the reference data checks in the command handler.
func (r HandlingReport) ToCommand(registrationTime time.Time) (commands.RegisterHandlingEventCommand, error) {
	trackingID, err := kernel.TrackingIDFromString(r.TrackingID)
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, err
	}

	unLocode, err := kernel.NewUnLocode(r.UnLocode)
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, err
	}

	eventType, err := handling.TypeFromString(r.EventType)
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, err
	}

	var voyageNumber *voyage.Number
	if r.VoyageNumber != "" {
		number := voyage.Number(r.VoyageNumber)
		voyageNumber = &number
	}

	return commands.NewRegisterHandlingEventCommand(
		registrationTime,
		r.CompletionTime,
		trackingID,
		voyageNumber,
		unLocode,
		eventType,
	)
}
