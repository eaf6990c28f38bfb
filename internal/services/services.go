// package services defines interface Reporter for handing monitoring targets to the reporting API
package services

import (
	"context"

	"github.com/desertthunder/smm/internal/models"
)

// Reporter accepts monitoring targets. A nil error means the API answered with a 2xx status.
type Reporter interface {
	SubmitMonitoringTarget(ctx context.Context, req models.MonitoringRequest) error
}

// ReporterFunc adapts a function to [Reporter].
type ReporterFunc func(ctx context.Context, req models.MonitoringRequest) error

func (f ReporterFunc) SubmitMonitoringTarget(ctx context.Context, req models.MonitoringRequest) error {
	return f(ctx, req)
}
