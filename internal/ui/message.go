package ui

import (
	"github.com/desertthunder/smm/internal/models"
)

// submitCompleteMsg carries the outcome of the reporter call started by Model.submit.
type submitCompleteMsg struct {
	req models.MonitoringRequest
	err error
}
