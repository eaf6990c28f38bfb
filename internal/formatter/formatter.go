// package formatter exports submission history to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/smm/internal/models"
	"github.com/desertthunder/smm/internal/shared"
)

// Format names a history export format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "txt"
)

// Formats returns the supported export formats.
func Formats() []Format {
	return []Format{FormatCSV, FormatMarkdown, FormatText}
}

// ParseFormat accepts a format name; "md" and "text" are aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "txt", "text":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, s)
}

// Extension returns the file extension, without the dot, used for f.
func (f Format) Extension() string {
	if f == FormatMarkdown {
		return "md"
	}
	return string(f)
}

const timeLayout = time.RFC3339

// ExportToCSV converts submissions to CSV with columns: ID, Sequence, Platform, Type, URL, Status, Error, Created At
func ExportToCSV(submissions []*models.Submission) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Sequence", "Platform", "Type", "URL", "Status", "Error", "Created At"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, s := range submissions {
		record := []string{
			s.ID(),
			strconv.Itoa(s.Sequence()),
			string(s.Platform()),
			string(s.Type()),
			s.URL(),
			string(s.Status()),
			s.Error(),
			s.CreatedAt().UTC().Format(timeLayout),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders submissions as a Markdown table with a per-status summary
func ExportToMarkdown(submissions []*models.Submission) ([]byte, error) {
	var buf bytes.Buffer

	submitted, failed := countByStatus(submissions)

	buf.WriteString("# Submission History\n\n")
	buf.WriteString(fmt.Sprintf("**Submissions**: %d\n", len(submissions)))
	buf.WriteString(fmt.Sprintf("**Submitted**: %d\n", submitted))
	buf.WriteString(fmt.Sprintf("**Failed**: %d\n\n", failed))

	if len(submissions) == 0 {
		return buf.Bytes(), nil
	}

	buf.WriteString("| # | Platform | Type | URL | Status | Created |\n")
	buf.WriteString("|---|---|---|---|---|---|\n")
	for _, s := range submissions {
		status := string(s.Status())
		if s.Error() != "" {
			status = fmt.Sprintf("%s (%s)", status, escapeCell(s.Error()))
		}
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %s | %s |\n",
			s.Sequence(),
			s.Platform().Label(),
			s.Type().Label(),
			escapeCell(s.URL()),
			status,
			s.CreatedAt().UTC().Format(timeLayout),
		))
	}

	return buf.Bytes(), nil
}

// ExportToText converts submissions to plain text, one line per attempt
func ExportToText(submissions []*models.Submission) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Submissions: %d\n\n", len(submissions)))

	for _, s := range submissions {
		buf.WriteString(fmt.Sprintf("#%d [%s] %s %s %s", s.Sequence(), s.Status(), s.Platform(), s.Type(), s.URL()))
		if s.Error() != "" {
			buf.WriteString(" - " + s.Error())
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// Export renders submissions in format f.
func Export(f Format, submissions []*models.Submission) ([]byte, error) {
	switch f {
	case FormatCSV:
		return ExportToCSV(submissions)
	case FormatMarkdown:
		return ExportToMarkdown(submissions)
	case FormatText:
		return ExportToText(submissions)
	}
	return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, f)
}

// WriteExport renders submissions in format f and writes them to path.
//
// Defaults to smm_history.{ext} in the working directory. Parent directories are created.
func WriteExport(f Format, submissions []*models.Submission, path string) (string, error) {
	if path == "" {
		path = "smm_history." + f.Extension()
	}

	data, err := Export(f, submissions)
	if err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", f, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s file: %w", f, err)
	}

	return path, nil
}

func countByStatus(submissions []*models.Submission) (submitted, failed int) {
	for _, s := range submissions {
		switch s.Status() {
		case models.StatusSubmitted:
			submitted++
		case models.StatusFailed:
			failed++
		}
	}
	return submitted, failed
}

// escapeCell keeps pipes and newlines from breaking a table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.NewReplacer("\r\n", " ", "\n", " ").Replace(s)
}
