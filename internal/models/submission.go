package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/smm/internal/shared"
)

// SubmissionStatus is the outcome of a journaled submission attempt.
type SubmissionStatus string

const (
	StatusSubmitted SubmissionStatus = "submitted"
	StatusFailed    SubmissionStatus = "failed"
)

// ParseSubmissionStatus converts a filter value into a [SubmissionStatus].
func ParseSubmissionStatus(s string) (SubmissionStatus, error) {
	switch st := SubmissionStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusSubmitted, StatusFailed:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", shared.ErrInvalidArgument, s)
}

func (s SubmissionStatus) String() string { return string(s) }

// Submission records one attempt to post a [MonitoringRequest].
type Submission struct {
	id        string
	sequence  int
	request   MonitoringRequest
	status    SubmissionStatus
	errMsg    string
	createdAt time.Time
}

var _ Model = (*Submission)(nil)

// NewSubmission builds a record for req. A nil err marks the attempt as submitted.
func NewSubmission(req MonitoringRequest, err error) *Submission {
	s := &Submission{
		request:   req,
		status:    StatusSubmitted,
		createdAt: time.Now().UTC(),
	}
	if err != nil {
		s.status = StatusFailed
		s.errMsg = err.Error()
	}
	return s
}

// RestoreSubmission rebuilds a persisted record.
func RestoreSubmission(id string, sequence int, req MonitoringRequest, status SubmissionStatus, errMsg string, createdAt time.Time) *Submission {
	return &Submission{
		id:        id,
		sequence:  sequence,
		request:   req,
		status:    status,
		errMsg:    errMsg,
		createdAt: createdAt,
	}
}

func (s *Submission) ID() string                 { return s.id }
func (s *Submission) SetID(id string)            { s.id = id }
func (s *Submission) Sequence() int              { return s.sequence }
func (s *Submission) SetSequence(n int)          { s.sequence = n }
func (s *Submission) Request() MonitoringRequest { return s.request }
func (s *Submission) Platform() Platform         { return s.request.Platform }
func (s *Submission) Type() EntityType           { return s.request.Type }
func (s *Submission) URL() string                { return s.request.URL }
func (s *Submission) Status() SubmissionStatus   { return s.status }
func (s *Submission) Error() string              { return s.errMsg }
func (s *Submission) CreatedAt() time.Time       { return s.createdAt }

// Validate checks the identifier and status. The request itself may be incomplete
// because failed attempts are journaled as they were sent.
func (s *Submission) Validate() error {
	if s.id == "" {
		return fmt.Errorf("%w: submission id is required", shared.ErrValidation)
	}
	if s.status != StatusSubmitted && s.status != StatusFailed {
		return fmt.Errorf("%w: unknown status %q", shared.ErrValidation, s.status)
	}
	if s.status == StatusFailed && s.errMsg == "" {
		return fmt.Errorf("%w: failed submission needs an error message", shared.ErrValidation)
	}
	return nil
}

// SubmissionView is the JSON shape used by the history commands.
type SubmissionView struct {
	ID        string    `json:"id"`
	Sequence  int       `json:"sequence"`
	Platform  string    `json:"platform"`
	Type      string    `json:"type"`
	URL       string    `json:"url"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// View flattens the record for serialization.
func (s *Submission) View() SubmissionView {
	return SubmissionView{
		ID:        s.id,
		Sequence:  s.sequence,
		Platform:  string(s.request.Platform),
		Type:      string(s.request.Type),
		URL:       s.request.URL,
		Status:    string(s.status),
		Error:     s.errMsg,
		CreatedAt: s.createdAt,
	}
}
