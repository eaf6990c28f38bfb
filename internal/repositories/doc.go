// Package repositories implements SQLite persistence for the submission journal.
//
// Key Implementations:
//   - [SubmissionRepository] : append-only history of monitoring submissions
//
// Sequence numbers provide stable, human-readable ordering (e.g., submission #42) independent of UUIDs and
// creation timestamps. The [NextSequence] function atomically increments per-table sequence counters in
// dedicated sequence tables.
package repositories
