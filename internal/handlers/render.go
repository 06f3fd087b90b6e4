package handlers

import (
	"html/template"
	"net/http"
)

// render clones the shared layout set, parses the page on top of it and
// executes. Cloning per request keeps page templates from leaking into
// each other's namespaces.
func render(w http.ResponseWriter, t *template.Template, page string, data map[string]any) {
	view, err := t.Clone()
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if _, err := view.ParseFiles("templates/pages/" + page); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if err := view.ExecuteTemplate(w, page, data); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
}
