// Package web serves the monitoring dashboard as server-rendered HTML.
//
// Each browser gets its own [dashboard.Dashboard] through a session cookie. Every button is a plain form
// POST that applies one transition and redirects back to the dashboard (post/redirect/get), so the notice
// produced by a transition is stored as a flash and shown exactly once.
//
// Routes
//
//	GET  /            → dashboard for the session
//	POST /platform    → SelectPlatform (field "platform")
//	POST /type        → SelectEntityType (field "type")
//	POST /submit      → UpdateURLText then Submit (field "url")
//	GET  /api/health  → {"status":"ok"}
package web

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/smm/internal/dashboard"
	"github.com/desertthunder/smm/internal/models"
	"github.com/desertthunder/smm/internal/server"
	"github.com/desertthunder/smm/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

const pageTitle = "Social Monitoring"

// App holds the web handlers and their dependencies.
type App struct {
	sessions *SessionStore
	reporter services.Reporter
	logger   *log.Logger
	tmpl     *template.Template
}

// AppOpts configures [NewApp].
type AppOpts struct {
	Sessions *SessionStore
	Reporter services.Reporter
	Logger   *log.Logger
}

type button struct {
	Value  string
	Label  string
	Active bool
}

type pageData struct {
	Title     string
	Platforms []button
	Types     []button
	Snapshot  dashboard.Snapshot
	Notice    dashboard.Notice
}

// NewApp parses the embedded templates and returns the handlers.
func NewApp(opts AppOpts) (*App, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	sessions := opts.Sessions
	if sessions == nil {
		sessions = NewSessionStore(dashboard.Options{}, 0)
	}

	return &App{sessions: sessions, reporter: opts.Reporter, logger: opts.Logger, tmpl: tmpl}, nil
}

// Register adds the dashboard routes to r.
func (a *App) Register(r server.Router) {
	r.Handle(http.MethodGet, "/{$}", http.HandlerFunc(a.index))
	r.Handle(http.MethodPost, "/platform", http.HandlerFunc(a.selectPlatform))
	r.Handle(http.MethodPost, "/type", http.HandlerFunc(a.selectType))
	r.Handle(http.MethodPost, "/submit", http.HandlerFunc(a.submit))
	r.Handle(http.MethodGet, "/api/health", http.HandlerFunc(a.health))
}

// NewRouter builds a [server.BasicRouter] with panic recovery, request logging and the dashboard routes.
func NewRouter(a *App) *server.BasicRouter {
	r := server.NewBasicRouter()
	r.Use(server.Recover(a.logger), server.Logging(a.logger))
	a.Register(r)
	return r
}

func (a *App) index(w http.ResponseWriter, r *http.Request) {
	s := a.sessions.Session(w, r)
	snap := s.Dashboard.Snapshot()

	data := pageData{
		Title:    pageTitle,
		Snapshot: snap,
		Notice:   s.TakeFlash(),
	}
	for _, p := range models.Platforms() {
		data.Platforms = append(data.Platforms, button{Value: p.String(), Label: p.Label(), Active: p == snap.Platform})
	}
	for _, t := range models.EntityTypes() {
		data.Types = append(data.Types, button{Value: t.String(), Label: t.Label(), Active: t == snap.EntityType})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := a.tmpl.ExecuteTemplate(w, "dashboard.html", data); err != nil {
		a.logger.Error("failed to render dashboard", "error", err)
	}
}

func (a *App) selectPlatform(w http.ResponseWriter, r *http.Request) {
	p, err := models.ParsePlatform(r.PostFormValue("platform"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := a.sessions.Session(w, r)
	s.Dashboard.SelectPlatform(p)
	a.backToDashboard(w, r)
}

func (a *App) selectType(w http.ResponseWriter, r *http.Request) {
	t, err := models.ParseEntityType(r.PostFormValue("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s := a.sessions.Session(w, r)
	s.Dashboard.SelectEntityType(t)
	a.backToDashboard(w, r)
}

func (a *App) submit(w http.ResponseWriter, r *http.Request) {
	s := a.sessions.Session(w, r)
	if r.PostForm == nil {
		r.ParseForm()
	}
	if _, ok := r.PostForm["url"]; ok {
		s.Dashboard.UpdateURLText(r.PostForm.Get("url"))
	}

	notice, err := s.Dashboard.Submit(r.Context(), a.reporter)
	if err != nil {
		a.logger.Warn("submission not accepted", "session", s.ID, "error", err)
	} else {
		a.logger.Info("submission accepted", "session", s.ID, "notice", notice.Text)
	}

	s.SetFlash(notice)
	a.backToDashboard(w, r)
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (a *App) backToDashboard(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
