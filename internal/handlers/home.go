package handlers

import (
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/nbraces/raceindex/internal/db"
	"github.com/nbraces/raceindex/internal/models"
)

// dropdownData loads the distinct state and event-type values that
// populate the filter selects on the home and search pages.
func dropdownData() (states, eventTypes []string, err error) {
	if err = db.Conn().Model(&models.Race{}).
		Where("location_state != ''").
		Distinct().
		Order("location_state").
		Pluck("location_state", &states).Error; err != nil {
		return nil, nil, err
	}
	if err = db.Conn().Model(&models.Race{}).
		Distinct().
		Order("event_type").
		Pluck("event_type", &eventTypes).Error; err != nil {
		return nil, nil, err
	}
	return states, eventTypes, nil
}

// GET /
func Home(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		states, eventTypes, err := dropdownData()
		if err != nil {
			zap.S().Errorw("home dropdowns", "err", err)
			http.Error(w, "db error", 500)
			return
		}

		var raceCount int64
		if err := db.Conn().Model(&models.Race{}).Count(&raceCount).Error; err != nil {
			zap.S().Errorw("home race count", "err", err)
			http.Error(w, "db error", 500)
			return
		}

		render(w, t, "home.tmpl", map[string]any{
			"Title":      "Race Directory",
			"Locations":  states,
			"EventTypes": eventTypes,
			"RaceCount":  raceCount,
		})
	}
}

// POST /
// Forwards the dropdown choices into /search; "all" becomes blank.
func HomeSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	state := r.FormValue("location_state")
	if state == "all" {
		state = ""
	}
	eventType := r.FormValue("event_type")
	if eventType == "all" {
		eventType = ""
	}
	http.Redirect(w, r,
		"/search?location_state="+url.QueryEscape(state)+"&event_type="+url.QueryEscape(eventType),
		http.StatusSeeOther)
}
