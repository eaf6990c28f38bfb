// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/smm/internal/models"
)

// MockReporter is a test double for [services.Reporter] that records every request it receives.
type MockReporter struct {
	mu       sync.Mutex
	err      error
	requests []models.MonitoringRequest
	block    chan struct{}
}

// NewMockReporter returns a reporter that answers every call with err.
func NewMockReporter(err error) *MockReporter {
	return &MockReporter{err: err}
}

// Block makes calls wait until the returned release function runs.
func (m *MockReporter) Block() (release func()) {
	m.mu.Lock()
	m.block = make(chan struct{})
	ch := m.block
	m.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(ch) }) }
}

// SetError changes the result of subsequent calls.
func (m *MockReporter) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockReporter) SubmitMonitoringTarget(ctx context.Context, req models.MonitoringRequest) error {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	block, err := m.block, m.err
	m.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// Requests returns a copy of the requests received so far.
func (m *MockReporter) Requests() []models.MonitoringRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.MonitoringRequest(nil), m.requests...)
}

// Calls returns the number of requests received so far.
func (m *MockReporter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// MockJournal is an in-memory [services.Journal].
type MockJournal struct {
	mu      sync.Mutex
	err     error
	Records []*models.Submission
}

func NewMockJournal(err error) *MockJournal {
	return &MockJournal{err: err}
}

func (j *MockJournal) Create(s *models.Submission) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.err != nil {
		return j.err
	}
	j.Records = append(j.Records, s)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites int, target io.Writer) *LimitedWriter {
	return &LimitedWriter{maxWrites: maxWrites, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

// InTempDir changes into a fresh temporary directory for the rest of the test and returns its path.
func InTempDir(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
		return
	}
	if err == nil && info.IsDir() {
		t.Errorf("Path is a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
