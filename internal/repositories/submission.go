package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/smm/internal/models"
	"github.com/desertthunder/smm/internal/shared"
)

const submissionColumns = "id, sequence, platform, type, url, status, error, created_at"

// SubmissionRepository implements models.Repository[*models.Submission] for the submission journal.
//
// Records are append-only; [SubmissionRepository.Delete] and [SubmissionRepository.Purge] remove rows outright.
type SubmissionRepository struct {
	db *sql.DB
}

var _ models.Repository[*models.Submission] = (*SubmissionRepository)(nil)

// NewSubmissionRepository creates a new SubmissionRepository with the given database connection
func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a submission with a generated ID and sequence
func (r *SubmissionRepository) Create(s *models.Submission) error {
	s.SetID(shared.GenerateID())
	if err := s.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "submissions")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}
	s.SetSequence(sequence)

	query := `INSERT INTO submissions (` + submissionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.Exec(query,
		s.ID(),
		sequence,
		string(s.Platform()),
		string(s.Type()),
		s.URL(),
		string(s.Status()),
		s.Error(),
		s.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// Get retrieves a submission by ID
func (r *SubmissionRepository) Get(id string) (*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = ?`

	s, err := scanSubmission(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: submission %s", shared.ErrNotFound, id)
	}
	return s, err
}

// Delete removes a submission by ID
func (r *SubmissionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM submissions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: submission %s", shared.ErrNotFound, id)
	}
	return nil
}

// List retrieves submissions newest first.
//
// Recognised criteria: "platform", "type" and "status" (exact match) and "limit" (int, > 0).
// Other keys are ignored.
func (r *SubmissionRepository) List(criteria map[string]any) ([]*models.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE 1 = 1`
	args := []any{}

	for _, col := range []string{"platform", "type", "status"} {
		if v, ok := stringCriterion(criteria, col); ok {
			query += " AND " + col + " = ?"
			args = append(args, v)
		}
	}

	query += " ORDER BY sequence DESC"

	if limit, ok := intCriterion(criteria, "limit"); ok {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*models.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return submissions, nil
}

// Purge deletes every submission and returns how many were removed. Sequence numbers are not reused.
func (r *SubmissionRepository) Purge() (int64, error) {
	result, err := r.db.Exec(`DELETE FROM submissions`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge submissions: %w", err)
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

// scanSubmission reads one row. [sql.ErrNoRows] is returned unwrapped.
func scanSubmission(row scanner) (*models.Submission, error) {
	var (
		id         string
		sequence   int
		platform   string
		entityType string
		url        string
		status     string
		errMsg     string
		createdAt  time.Time
	)

	err := row.Scan(&id, &sequence, &platform, &entityType, &url, &status, &errMsg, &createdAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan submission: %w", err)
	}

	req := models.MonitoringRequest{
		Platform: models.Platform(platform),
		URL:      url,
		Type:     models.EntityType(entityType),
	}
	return models.RestoreSubmission(id, sequence, req, models.SubmissionStatus(status), errMsg, createdAt), nil
}
