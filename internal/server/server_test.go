package server

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/smm/internal/shared"
)

func okHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

type pathsHandler struct{}

func (pathsHandler) Routes() []string { return []string{"GET /a", "GET /b"} }
func (pathsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("multi " + r.URL.Path))
}

func TestBasicRouter(t *testing.T) {
	t.Run("Handle Matches Method", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handle(http.MethodPost, "/submit", okHandler("posted"))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/submit", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "posted" {
			t.Errorf("expected 200 posted, got %d %q", rec.Code, rec.Body.String())
		}

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/submit", nil))
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("expected 405, got %d", rec.Code)
		}
	})

	t.Run("Root Only", func(t *testing.T) {
		r := NewBasicRouter()
		r.HandleFunc(http.MethodGet, "/{$}", okHandler("home"))

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Body.String() != "home" {
			t.Errorf("expected home, got %q", rec.Body.String())
		}

		rec = httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("Handler Registers All Routes", func(t *testing.T) {
		r := NewBasicRouter()
		r.Handler(pathsHandler{})

		for _, path := range []string{"/a", "/b"} {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Body.String() != "multi "+path {
				t.Errorf("%s: unexpected body %q", path, rec.Body.String())
			}
		}
	})

	t.Run("Middleware Order", func(t *testing.T) {
		var order []string
		tag := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		r := NewBasicRouter()
		r.Use(tag("first"), tag("second"))
		r.HandleFunc("", "/", okHandler(""))
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if strings.Join(order, ",") != "first,second" {
			t.Errorf("expected first,second, got %v", order)
		}
	})
}

func TestMiddleware(t *testing.T) {
	t.Run("Logging Records Status", func(t *testing.T) {
		var buf bytes.Buffer
		h := Logging(shared.NewLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadRequest)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/type", nil))

		out := buf.String()
		for _, want := range []string{"WARN", "method=POST", "path=/type", "status=400"} {
			if !strings.Contains(out, want) {
				t.Errorf("log line missing %q: %s", want, out)
			}
		}
	})

	t.Run("Logging Defaults To 200", func(t *testing.T) {
		var buf bytes.Buffer
		h := Logging(shared.NewLogger(&buf))(okHandler("hi"))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		if !strings.Contains(buf.String(), "status=200") || !strings.Contains(buf.String(), "bytes=2") {
			t.Errorf("unexpected log line: %s", buf.String())
		}
	})

	t.Run("Recover", func(t *testing.T) {
		h := Recover(shared.NewLogger(io.Discard))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
	})
}

func TestServer(t *testing.T) {
	t.Run("Start Serve Shutdown", func(t *testing.T) {
		srv := New("127.0.0.1:0", okHandler("pong"), shared.NewLogger(io.Discard))
		if srv.URL() != "" {
			t.Error("expected empty URL before start")
		}
		if err := srv.Start(); err != nil {
			t.Fatalf("failed to start: %v", err)
		}

		resp, err := http.Get(srv.URL() + "/ping")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if string(body) != "pong" {
			t.Errorf("expected pong, got %q", body)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			t.Fatalf("failed to shut down: %v", err)
		}

		select {
		case err, ok := <-srv.Errors():
			if ok {
				t.Errorf("expected no serve error, got %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("errors channel was not closed")
		}
	})

	t.Run("Bind Error", func(t *testing.T) {
		first := New("127.0.0.1:0", okHandler(""), shared.NewLogger(io.Discard))
		if err := first.Start(); err != nil {
			t.Fatalf("failed to start: %v", err)
		}
		defer first.Shutdown(context.Background())

		addr := strings.TrimPrefix(first.URL(), "http://")
		second := New(addr, okHandler(""), shared.NewLogger(io.Discard))
		if err := second.Start(); err == nil {
			second.Shutdown(context.Background())
			t.Error("expected bind error for a port in use")
		}
	})
}
