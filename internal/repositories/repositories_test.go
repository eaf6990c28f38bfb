package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/desertthunder/smm/internal/models"
	"github.com/desertthunder/smm/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func newSubmission(p models.Platform, et models.EntityType, url string, err error) *models.Submission {
	return models.NewSubmission(models.MonitoringRequest{Platform: p, URL: url, Type: et}, err)
}

func TestNextSequence(t *testing.T) {
	t.Run("Increments", func(t *testing.T) {
		db := setupTestDB(t)

		for want := 1; want <= 3; want++ {
			got, err := NextSequence(db, "submissions")
			if err != nil {
				t.Fatalf("failed to get sequence: %v", err)
			}
			if got != want {
				t.Errorf("expected sequence %d, got %d", want, got)
			}
		}
	})

	t.Run("Missing Table", func(t *testing.T) {
		db := setupTestDB(t)

		if _, err := NextSequence(db, "nonexistent"); err == nil {
			t.Error("expected error for missing sequence table")
		}
	})
}

func TestSubmissionRepository(t *testing.T) {
	t.Run("Create", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubmissionRepository(db)
		s := newSubmission(models.PlatformTwitter, models.EntityUser, "http://x.com/a", nil)

		if err := repo.Create(s); err != nil {
			t.Fatalf("failed to create submission: %v", err)
		}
		if s.ID() == "" {
			t.Error("submission ID should be set after creation")
		}
		if s.Sequence() != 1 {
			t.Errorf("expected sequence 1, got %d", s.Sequence())
		}
	})

	t.Run("Get", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubmissionRepository(db)
		s := newSubmission(models.PlatformFacebook, models.EntityPage, "https://fb.com/p", errors.New("Network Error"))

		if err := repo.Create(s); err != nil {
			t.Fatalf("failed to create submission: %v", err)
		}

		got, err := repo.Get(s.ID())
		if err != nil {
			t.Fatalf("failed to get submission: %v", err)
		}
		if got.Request() != s.Request() {
			t.Errorf("expected request %+v, got %+v", s.Request(), got.Request())
		}
		if got.Status() != models.StatusFailed || got.Error() != "Network Error" {
			t.Errorf("expected failed record with message, got %s %q", got.Status(), got.Error())
		}
		if !got.CreatedAt().Equal(s.CreatedAt()) {
			t.Errorf("expected created_at %v, got %v", s.CreatedAt(), got.CreatedAt())
		}
	})

	t.Run("Get NotFound", func(t *testing.T) {
		repo := NewSubmissionRepository(setupTestDB(t))

		if _, err := repo.Get("nonexistent-id"); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubmissionRepository(db)
		s := newSubmission(models.PlatformTwitter, models.EntityUser, "http://x.com/a", nil)

		if err := repo.Create(s); err != nil {
			t.Fatalf("failed to create submission: %v", err)
		}
		if err := repo.Delete(s.ID()); err != nil {
			t.Fatalf("failed to delete submission: %v", err)
		}
		if _, err := repo.Get(s.ID()); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected deleted submission to be gone, got %v", err)
		}
		if err := repo.Delete(s.ID()); !errors.Is(err, shared.ErrNotFound) {
			t.Errorf("expected second delete to fail with ErrNotFound, got %v", err)
		}
	})

	t.Run("List", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubmissionRepository(db)

		fixtures := []*models.Submission{
			newSubmission(models.PlatformTwitter, models.EntityUser, "http://x.com/a", nil),
			newSubmission(models.PlatformTwitter, models.EntityPage, "http://x.com/p", errors.New("boom")),
			newSubmission(models.PlatformInstagram, models.EntityUser, "https://instagram.com/a", nil),
		}
		for _, s := range fixtures {
			if err := repo.Create(s); err != nil {
				t.Fatalf("failed to create submission: %v", err)
			}
		}

		t.Run("Newest First", func(t *testing.T) {
			all, err := repo.List(nil)
			if err != nil {
				t.Fatalf("failed to list: %v", err)
			}
			if len(all) != 3 {
				t.Fatalf("expected 3 submissions, got %d", len(all))
			}
			if all[0].ID() != fixtures[2].ID() || all[2].ID() != fixtures[0].ID() {
				t.Error("expected descending sequence order")
			}
		})

		t.Run("By Platform", func(t *testing.T) {
			got, err := repo.List(map[string]any{"platform": models.PlatformTwitter})
			if err != nil {
				t.Fatalf("failed to list: %v", err)
			}
			if len(got) != 2 {
				t.Errorf("expected 2 twitter submissions, got %d", len(got))
			}
		})

		t.Run("By Type And Status", func(t *testing.T) {
			got, err := repo.List(map[string]any{"type": "user", "status": models.StatusSubmitted})
			if err != nil {
				t.Fatalf("failed to list: %v", err)
			}
			if len(got) != 2 {
				t.Errorf("expected 2 submitted user records, got %d", len(got))
			}
		})

		t.Run("Limit", func(t *testing.T) {
			got, err := repo.List(map[string]any{"limit": 1})
			if err != nil {
				t.Fatalf("failed to list: %v", err)
			}
			if len(got) != 1 || got[0].ID() != fixtures[2].ID() {
				t.Errorf("expected only the newest record, got %d records", len(got))
			}
		})

		t.Run("Unknown Keys Ignored", func(t *testing.T) {
			got, err := repo.List(map[string]any{"url; DROP TABLE submissions": "x", "limit": -4})
			if err != nil {
				t.Fatalf("failed to list: %v", err)
			}
			if len(got) != 3 {
				t.Errorf("expected all records, got %d", len(got))
			}
		})
	})

	t.Run("Purge", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubmissionRepository(db)

		for range 2 {
			if err := repo.Create(newSubmission(models.PlatformTwitter, models.EntityUser, "http://x.com/a", nil)); err != nil {
				t.Fatalf("failed to create submission: %v", err)
			}
		}

		n, err := repo.Purge()
		if err != nil {
			t.Fatalf("failed to purge: %v", err)
		}
		if n != 2 {
			t.Errorf("expected 2 purged rows, got %d", n)
		}

		s := newSubmission(models.PlatformTwitter, models.EntityUser, "http://x.com/b", nil)
		if err := repo.Create(s); err != nil {
			t.Fatalf("failed to create submission: %v", err)
		}
		if s.Sequence() != 3 {
			t.Errorf("expected sequence numbers to continue after purge, got %d", s.Sequence())
		}
	})

	t.Run("Closed Database", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSubmissionRepository(db)
		db.Close()

		if err := repo.Create(newSubmission(models.PlatformTwitter, models.EntityUser, "http://x.com/a", nil)); err == nil {
			t.Error("expected create to fail on closed database")
		}
		if _, err := repo.List(nil); err == nil {
			t.Error("expected list to fail on closed database")
		}
		if _, err := repo.Purge(); err == nil {
			t.Error("expected purge to fail on closed database")
		}
	})
}
