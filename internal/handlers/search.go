package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/nbraces/raceindex/internal/db"
	"github.com/nbraces/raceindex/internal/models"
	"github.com/nbraces/raceindex/internal/search"
)

const noMatchMessage = "No events match your search parameter, please try again and/or use the filter"

// GET /search
// Filters come from the query string only.
func SearchPage(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := search.Parse(r.URL.Query())

		var races []models.Race
		if err := db.Conn().Scopes(f.Scope()).Find(&races).Error; err != nil {
			zap.S().Errorw("search query", "err", err)
			http.Error(w, "db error", 500)
			return
		}

		states, eventTypes, err := dropdownData()
		if err != nil {
			zap.S().Errorw("search dropdowns", "err", err)
			http.Error(w, "db error", 500)
			return
		}

		// Zero matches is only worth a message when the user actually
		// constrained something; an empty unfiltered directory is not an error.
		errMsg := ""
		if len(races) == 0 && f.Any() {
			errMsg = noMatchMessage
		}

		render(w, t, "search.tmpl", map[string]any{
			"Title":         "Search Races",
			"Races":         races,
			"Error":         errMsg,
			"Filters":       f,
			"Placeholders":  f.Describe(),
			"Locations":     states,
			"EventTypes":    eventTypes,
			"SelectedTypes": selectedSet(f.EventTypes),
		})
	}
}

// POST /search
// Redirects to GET /search with the filters encoded in the query string.
func SearchSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	f := search.Parse(r.PostForm)
	http.Redirect(w, r, "/search?"+f.Encode(), http.StatusSeeOther)
}

func selectedSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
