package formatter

import (
	"encoding/csv"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/smm/internal/models"
	"github.com/desertthunder/smm/internal/shared"
	th "github.com/desertthunder/smm/internal/testing"
)

func fixtures() []*models.Submission {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return []*models.Submission{
		models.RestoreSubmission("id-2", 2,
			models.MonitoringRequest{Platform: models.PlatformFacebook, URL: "https://fb.com/brand", Type: models.EntityPage},
			models.StatusFailed, "request failed with status code 500", at.Add(time.Minute)),
		models.RestoreSubmission("id-1", 1,
			models.MonitoringRequest{Platform: models.PlatformTwitter, URL: "https://x.com/someone", Type: models.EntityUser},
			models.StatusSubmitted, "", at),
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(fixtures())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d", len(records))
		}
		if strings.Join(records[0], ",") != "ID,Sequence,Platform,Type,URL,Status,Error,Created At" {
			t.Errorf("CSV missing headers, got: %v", records[0])
		}

		row := records[1]
		if row[0] != "id-2" || row[1] != "2" || row[2] != "facebook" || row[3] != "page" {
			t.Errorf("unexpected row: %v", row)
		}
		if row[5] != "failed" || row[6] != "request failed with status code 500" {
			t.Errorf("expected failure columns, got %v", row)
		}
		if row[7] != "2025-03-14T09:31:00Z" {
			t.Errorf("expected RFC3339 timestamp, got %s", row[7])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(fixtures())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		output := string(data)

		for _, want := range []string{
			"# Submission History",
			"**Submissions**: 2",
			"**Submitted**: 1",
			"**Failed**: 1",
			"| 1 | Twitter | User | https://x.com/someone | submitted | 2025-03-14T09:30:00Z |",
			"| 2 | Facebook | Page | https://fb.com/brand | failed (request failed with status code 500) |",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("ExportToMarkdown Empty", func(t *testing.T) {
		data, err := ExportToMarkdown(nil)
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		if strings.Contains(string(data), "| # |") {
			t.Error("expected no table for empty history")
		}
	})

	t.Run("ExportToMarkdown Escapes Cells", func(t *testing.T) {
		s := models.RestoreSubmission("id", 1,
			models.MonitoringRequest{Platform: models.PlatformTwitter, URL: "https://x.com/a|b", Type: models.EntityUser},
			models.StatusFailed, "line one\nline two", time.Now())

		data, err := ExportToMarkdown([]*models.Submission{s})
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}
		if !strings.Contains(string(data), `https://x.com/a\|b`) {
			t.Error("expected pipe to be escaped")
		}
		if !strings.Contains(string(data), "failed (line one line two)") {
			t.Error("expected newline to be flattened")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(fixtures())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}
		output := string(data)

		if !strings.HasPrefix(output, "Submissions: 2\n\n") {
			t.Errorf("Text missing count header, got:\n%s", output)
		}
		if !strings.Contains(output, "#1 [submitted] twitter user https://x.com/someone\n") {
			t.Errorf("Text missing submitted line")
		}
		if !strings.Contains(output, "#2 [failed] facebook page https://fb.com/brand - request failed with status code 500\n") {
			t.Errorf("Text missing failed line")
		}
	})
}

func TestParseFormat(t *testing.T) {
	tc := []struct {
		input string
		want  Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"txt", FormatText},
		{"text", FormatText},
	}
	for _, tt := range tc {
		got, err := ParseFormat(tt.input)
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q): expected %s, got %s (%v)", tt.input, tt.want, got, err)
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, shared.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if _, err := Export(Format("xml"), nil); !errors.Is(err, shared.ErrInvalidArgument) {
		t.Errorf("expected Export to reject unknown format, got %v", err)
	}
}

func TestWriteExport(t *testing.T) {
	t.Run("WithDefaultPath", func(t *testing.T) {
		th.InTempDir(t)

		for _, f := range Formats() {
			path, err := WriteExport(f, fixtures(), "")
			if err != nil {
				t.Fatalf("WriteExport(%s) failed: %v", f, err)
			}
			if want := "smm_history." + f.Extension(); path != want {
				t.Errorf("expected %s, got %s", want, path)
			}
			th.AssertFileExists(t, path)
		}
	})

	t.Run("WithCustomPath", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "reports", "history.md")

		path, err := WriteExport(FormatMarkdown, fixtures(), target)
		if err != nil {
			t.Fatalf("WriteExport failed: %v", err)
		}
		if path != target {
			t.Errorf("expected %s, got %s", target, path)
		}

		content := th.MustReadFile(t, path)
		if !strings.Contains(content, "# Submission History") {
			t.Errorf("unexpected file content:\n%s", content)
		}
	})

	t.Run("Unwritable Path", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "file")
		if _, err := WriteExport(FormatText, nil, file); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		if _, err := WriteExport(FormatText, nil, filepath.Join(file, "nested.txt")); err == nil {
			t.Error("expected error when parent is a file")
		}
	})
}
