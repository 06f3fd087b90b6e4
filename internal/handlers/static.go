package handlers

import (
	"html/template"
	"net/http"
)

func Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// GET /about
func About(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "about.tmpl", map[string]any{"Title": "About"})
	}
}

// GET /thankyou
func ThankYou(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "thankyou.tmpl", map[string]any{"Title": "Thank You"})
	}
}
