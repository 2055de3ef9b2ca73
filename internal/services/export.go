package services

import (
	"fmt"
	"strings"
	"time"

	"eventboard/internal/domain"
)

// ExportFilename is the download name of the CSV export.
const ExportFilename = "veranstaltungen.csv"

// FormatDate renders t as DD.MM.YYYY, zero-padded with a four-digit year.
// This rendering is also what the free-text search matches dates against.
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%02d.%02d.%04d", t.Day(), int(t.Month()), t.Year())
}

// EventsCSV renders one "DD.MM.YYYY,place,status,participantCount" line per
// event, newline-joined, without a header row.
func EventsCSV(events []domain.Event) string {
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = fmt.Sprintf("%s,%s,%s,%d", FormatDate(e.Date), e.Place, e.Status, len(e.Participants))
	}
	return strings.Join(lines, "\n")
}
