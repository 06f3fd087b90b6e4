package web

import (
	"html"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nbraces/raceindex/internal/handlers"
	"github.com/nbraces/raceindex/internal/session"
)

func Router(sessions *session.Manager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Moderation state changes must never be served stale.
	r.Use(middleware.NoCache)

	tmpl := mustParseTemplates("templates")

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Public pages
	r.Get("/", handlers.Home(tmpl))
	r.Post("/", handlers.HomeSubmit)
	r.Get("/healthz", handlers.Health)
	r.Get("/search", handlers.SearchPage(tmpl))
	r.Post("/search", handlers.SearchSubmit)
	r.Get("/race/{slug}", handlers.RaceDetail(tmpl))
	r.Post("/race/{slug}/submit_feedback", handlers.SubmitFeedback)
	r.Get("/race/{slug}/qr.png", handlers.RaceQR)
	r.Get("/about", handlers.About(tmpl))
	r.Get("/thankyou", handlers.ThankYou(tmpl))
	r.Get("/suggest", handlers.SuggestForm(tmpl))
	r.Post("/suggest", handlers.SuggestSubmit(tmpl))

	// Admin login/logout (public endpoints)
	r.Get("/admin", handlers.AdminLoginForm(tmpl, sessions))
	r.Post("/admin", handlers.AdminLoginSubmit(tmpl, sessions))
	r.Get("/logout", handlers.Logout(sessions))

	// Guarded dashboard
	r.Route("/admin/dashboard", func(ar chi.Router) {
		ar.Use(handlers.RequireAdmin(sessions))

		ar.Get("/", handlers.AdminDashboard(tmpl))
		ar.Get("/feedback/{id}", handlers.AdminReviewFeedback(tmpl))
		ar.Post("/approve_feedback/{id}", handlers.AdminApproveFeedback)
		ar.Post("/unapprove_feedback/{id}", handlers.AdminUnapproveFeedback)
		ar.Post("/edit_feedback/{id}", handlers.AdminEditFeedback)
		ar.Post("/delete_feedback/{id}", handlers.AdminDeleteFeedback)

		ar.Get("/review_suggest/{id}", handlers.AdminReviewSuggestion(tmpl))
		ar.Post("/review_suggest/{id}", handlers.AdminReviewSuggestion(tmpl))
		ar.Post("/archive_suggestion/{id}", handlers.AdminArchiveSuggestion)
		ar.Post("/unarchive_suggestion/{id}", handlers.AdminUnarchiveSuggestion)
		ar.Get("/archived_suggestions", handlers.AdminArchivedSuggestions(tmpl))
	})

	return r
}

func mustParseTemplates(baseDir string) *template.Template {
	funcs := template.FuncMap{
		"year":    func() string { return time.Now().Format("2006") },
		"fmtDate": func(t time.Time) string { return t.Format("Mon, 02 Jan 2006") },
		"nl2br": func(s string) template.HTML {
			if s == "" {
				return ""
			}
			s = strings.ReplaceAll(s, "\r\n", "\n")
			esc := html.EscapeString(s)
			esc = strings.ReplaceAll(esc, "\n", "<br>")
			return template.HTML(esc)
		},
	}

	p := template.New("").Funcs(funcs)
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "layouts", "*.tmpl")))
	p = template.Must(p.ParseGlob(filepath.Join(baseDir, "partials", "*.tmpl")))
	return p
}
