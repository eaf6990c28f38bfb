package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/desertthunder/smm/internal/models"
	"github.com/desertthunder/smm/internal/services"
	"github.com/desertthunder/smm/internal/shared"
)

// State is the dashboard's position in the draft lifecycle.
type State int

const (
	Idle State = iota
	PlatformChosen
	FormOpen
	Submitting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PlatformChosen:
		return "platform_chosen"
	case FormOpen:
		return "form_open"
	case Submitting:
		return "submitting"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Submission guard errors. All wrap [shared.ErrValidation].
var (
	ErrSubmitInFlight      = fmt.Errorf("%w: a submission is already in flight", shared.ErrValidation)
	ErrTypeNotSelected     = fmt.Errorf("%w: entity type not selected", shared.ErrValidation)
	ErrPlatformNotSelected = fmt.Errorf("%w: platform not selected", shared.ErrValidation)
	ErrURLRequired         = fmt.Errorf("%w: url is empty", shared.ErrValidation)
)

// Draft is the set of selections being composed before submission.
type Draft struct {
	Platform    models.Platform
	EntityType  models.EntityType
	URLText     string
	FormVisible bool
}

// Options tunes draft behaviour.
type Options struct {
	// ClearURLOnPlatformSwitch drops the URL text when a different platform is selected.
	ClearURLOnPlatformSwitch bool
}

// Dashboard holds one draft and applies transitions to it. Safe for concurrent use.
type Dashboard struct {
	mu       sync.Mutex
	opts     Options
	draft    Draft
	inFlight bool
}

// New returns a dashboard in the Idle state.
func New(opts Options) *Dashboard {
	return &Dashboard{opts: opts}
}

// SelectPlatform records p and hides the URL form. Legal from any state.
func (d *Dashboard) SelectPlatform(p models.Platform) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.opts.ClearURLOnPlatformSwitch && p != d.draft.Platform {
		d.draft.URLText = ""
	}
	d.draft.Platform = p
	d.draft.FormVisible = false
}

// SelectEntityType records t and reveals the URL form.
func (d *Dashboard) SelectEntityType(t models.EntityType) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.draft.EntityType = t
	d.draft.FormVisible = t != ""
}

// UpdateURLText replaces the URL text while the form is visible and reports whether it did.
func (d *Dashboard) UpdateURLText(s string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.draft.FormVisible {
		return false
	}
	d.draft.URLText = s
	return true
}

// BeginSubmit runs the submission guards and, when they pass, marks a submission in flight and returns
// the request to send. Every call that returns a nil error must be followed by [Dashboard.CompleteSubmit].
func (d *Dashboard) BeginSubmit() (models.MonitoringRequest, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case d.inFlight:
		return models.MonitoringRequest{}, ErrSubmitInFlight
	case d.draft.EntityType == "":
		return models.MonitoringRequest{}, ErrTypeNotSelected
	case d.draft.Platform == "":
		return models.MonitoringRequest{}, ErrPlatformNotSelected
	case strings.TrimSpace(d.draft.URLText) == "":
		return models.MonitoringRequest{}, ErrURLRequired
	}

	req := models.MonitoringRequest{
		Platform: d.draft.Platform,
		URL:      d.draft.URLText,
		Type:     d.draft.EntityType,
	}
	if err := req.Validate(); err != nil {
		return models.MonitoringRequest{}, err
	}

	d.inFlight = true
	return req, nil
}

// CompleteSubmit applies the outcome of sending req. On success the URL text is cleared and the form
// hidden; on failure the draft is left as it was so the user can retry.
func (d *Dashboard) CompleteSubmit(req models.MonitoringRequest, err error) Notice {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.inFlight = false
	if err != nil {
		return errorNotice(err)
	}

	d.draft.URLText = ""
	d.draft.FormVisible = false
	return successNotice(req)
}

// Submit sends the draft through r. The returned error is the guard or reporter error, if any;
// the [Notice] is what the user should see in either case.
func (d *Dashboard) Submit(ctx context.Context, r services.Reporter) (Notice, error) {
	req, err := d.BeginSubmit()
	if err != nil {
		return RejectionNotice(err), err
	}

	err = r.SubmitMonitoringTarget(ctx, req)
	return d.CompleteSubmit(req, err), err
}

// RejectionNotice converts a [Dashboard.BeginSubmit] error into the alert shown to the user.
func RejectionNotice(err error) Notice {
	switch {
	case errors.Is(err, ErrSubmitInFlight):
		return validationNotice(msgInFlight)
	case errors.Is(err, ErrTypeNotSelected):
		return validationNotice(msgSelectType)
	case errors.Is(err, ErrPlatformNotSelected):
		return validationNotice("Please select a platform.")
	case errors.Is(err, ErrURLRequired):
		return validationNotice("Please enter a URL.")
	}
	return validationNotice(err.Error())
}

// State derives the current lifecycle state from the draft.
func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state()
}

func (d *Dashboard) state() State {
	switch {
	case d.inFlight:
		return Submitting
	case d.draft.FormVisible:
		return FormOpen
	case d.draft.Platform != "":
		return PlatformChosen
	}
	return Idle
}

// Snapshot is a consistent copy of the draft with the view data derived from it.
type Snapshot struct {
	Draft
	State           State
	ShowTypeButtons bool
	ShowForm        bool
	FormHeading     string // "Enter User URL"
	FieldLabel      string // "User URL"
	Placeholder     string // "Enter user URL"
}

// Snapshot returns the current draft and derived view data.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := Snapshot{
		Draft:           d.draft,
		State:           d.state(),
		ShowTypeButtons: d.draft.Platform != "",
		ShowForm:        d.draft.FormVisible,
	}
	if t := d.draft.EntityType; t != "" {
		s.FormHeading = fmt.Sprintf("Enter %s URL", t.Label())
		s.FieldLabel = fmt.Sprintf("%s URL", t.Label())
		s.Placeholder = fmt.Sprintf("Enter %s URL", t)
	}
	return s
}
