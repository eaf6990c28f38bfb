package services

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/smm/internal/models"
)

// Journal stores submission attempts.
type Journal interface {
	Create(s *models.Submission) error
}

// RecordingReporter journals every attempt made through the wrapped [Reporter].
type RecordingReporter struct {
	next    Reporter
	journal Journal
	logger  *log.Logger
}

var _ Reporter = (*RecordingReporter)(nil)

// NewRecordingReporter wraps next so each submission, successful or not, is written to journal.
func NewRecordingReporter(next Reporter, journal Journal, logger *log.Logger) *RecordingReporter {
	return &RecordingReporter{next: next, journal: journal, logger: logger}
}

// SubmitMonitoringTarget forwards req and records the outcome. Journal failures are logged and do not change the result.
func (r *RecordingReporter) SubmitMonitoringTarget(ctx context.Context, req models.MonitoringRequest) error {
	err := r.next.SubmitMonitoringTarget(ctx, req)

	record := models.NewSubmission(req, err)
	if jerr := r.journal.Create(record); jerr != nil {
		if r.logger != nil {
			r.logger.Warn("failed to journal submission", "error", jerr, "url", req.URL)
		}
	} else if r.logger != nil {
		r.logger.Debug("journaled submission", "id", record.ID(), "status", record.Status())
	}

	return err
}
