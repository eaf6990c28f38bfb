// Package models defines domain entities and persistence interfaces for the smm monitoring dashboard.
//
// The package contains two categories of types:
//
// 1. Wire and draft values: what the dashboard composes and sends
//   - [Platform] : Supported social networks (instagram, twitter, facebook)
//   - [EntityType] : Whether the target is a user profile or a page
//   - [MonitoringRequest] : The fixed three-field body posted to the reporting API
//
// 2. Persistent Entities: Database-backed records
//   - [Submission] : One journaled submission attempt and its outcome
//
// Persistent entities implement the [Model] interface providing ID, timestamps and validation.
// The [Repository] interface defines the storage operations used by the history commands.
package models
