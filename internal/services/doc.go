// Package services defines the [Reporter] interface for the reporting API and implements it over HTTP.
//
// # Raw API access
//
// [APIService] is a thin wrapper over [http.Client] joining request paths onto a base URL and returning
// the status, headers, body and decoded JSON (when the body is JSON) as an [APIResponse].
//
// # Reporting
//
// [ReportingService] validates a [models.MonitoringRequest] and posts it as
// {"platform": ..., "url": ..., "type": ...} to /api/urls. Any 2xx status counts as success and the
// response body is not inspected. An optional [rate.Limiter] throttles outbound submissions.
//
// # Journal
//
// [RecordingReporter] decorates another [Reporter] and writes one [models.Submission] per attempt.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrValidation] : the request failed its presence checks, nothing was sent
//   - [shared.ErrAPIRequest] : transport failure or non-2xx status
package services
