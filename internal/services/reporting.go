package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/smm/internal/models"
	"github.com/desertthunder/smm/internal/shared"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the path monitoring targets are posted to.
const DefaultEndpoint = "/api/urls"

// ReportingService posts [models.MonitoringRequest] values to the reporting API.
type ReportingService struct {
	api      *APIService
	endpoint string
	limiter  *rate.Limiter
	logger   *log.Logger
}

// ReportingOpts configures a [ReportingService].
type ReportingOpts struct {
	Endpoint          string      // Defaults to [DefaultEndpoint]
	RequestsPerSecond float64     // Zero disables throttling
	Logger            *log.Logger // Defaults to a stderr logger
}

var _ Reporter = (*ReportingService)(nil)

// NewReportingService wraps api for monitoring submissions.
func NewReportingService(api *APIService, opts ReportingOpts) *ReportingService {
	if api == nil {
		api = NewAPIService("", nil)
	}
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	s := &ReportingService{
		api:      api,
		endpoint: opts.Endpoint,
		logger:   opts.Logger,
	}
	if opts.RequestsPerSecond > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	return s
}

// NewReportingServiceFromConfig builds the client described by the [api] config section.
func NewReportingServiceFromConfig(cfg shared.APIConfig, logger *log.Logger) *ReportingService {
	client := &http.Client{Timeout: cfg.Timeout()}
	return NewReportingService(NewAPIService(cfg.BaseURL, client), ReportingOpts{
		Endpoint:          cfg.Endpoint,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger,
	})
}

// Endpoint returns the absolute URL submissions are posted to.
func (s *ReportingService) Endpoint() string {
	return s.api.BaseURL() + s.endpoint
}

// SubmitMonitoringTarget validates req and posts it. Any 2xx status is success; the response body is ignored.
func (s *ReportingService) SubmitMonitoringTarget(ctx context.Context, req models.MonitoringRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}
	}

	s.logger.Debug("submitting monitoring target", "platform", req.Platform, "type", req.Type, "url", req.URL)

	resp, err := s.api.PostJSON(ctx, s.endpoint, req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() {
		s.logger.Warn("reporting API rejected submission", "status", resp.StatusCode, "body", string(resp.Body))
		return fmt.Errorf("%w: request failed with status code %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	s.logger.Debug("monitoring target accepted", "status", resp.StatusCode)
	return nil
}
