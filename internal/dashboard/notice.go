package dashboard

import (
	"fmt"

	"github.com/desertthunder/smm/internal/models"
)

// NoticeKind classifies a [Notice].
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSuccess
	NoticeValidation
	NoticeError
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeValidation:
		return "validation"
	case NoticeError:
		return "error"
	}
	return "none"
}

// Notice is the alert shown to the user after a transition.
type Notice struct {
	Kind NoticeKind
	Text string
}

// Empty reports whether there is nothing to show.
func (n Notice) Empty() bool { return n.Kind == NoticeNone }

const (
	msgSelectType = "Please select a user or page type."
	msgInFlight   = "A submission is already in progress."
)

func validationNotice(text string) Notice {
	return Notice{Kind: NoticeValidation, Text: text}
}

func successNotice(req models.MonitoringRequest) Notice {
	return Notice{
		Kind: NoticeSuccess,
		Text: fmt.Sprintf("Submitted %s URL: %s for %s", req.Type, req.URL, req.Platform),
	}
}

func errorNotice(err error) Notice {
	return Notice{Kind: NoticeError, Text: "Error submitting URL: " + err.Error()}
}
