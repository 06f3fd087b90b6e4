package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/nbraces/raceindex/internal/db"
	"github.com/nbraces/raceindex/internal/models"
)

// GET /suggest
func SuggestForm(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, t, "suggest.tmpl", map[string]any{
			"Title": "Suggest a Race",
		})
	}
}

// POST /suggest
// All three fields are required; a missing one re-renders with an inline error.
func SuggestSubmit(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		raceName := strings.TrimSpace(r.FormValue("race_name"))
		raceLink := strings.TrimSpace(r.FormValue("race_link"))
		comment := strings.TrimSpace(r.FormValue("comment"))

		errMsg := ""
		switch {
		case raceName == "":
			errMsg = "Please provide a valid race name"
		case raceLink == "":
			errMsg = "Please provide a valid link"
		case comment == "":
			errMsg = "Please provide a reason we should include this event to our database"
		}
		if errMsg != "" {
			render(w, t, "suggest.tmpl", map[string]any{
				"Title":    "Suggest a Race",
				"Error":    errMsg,
				"RaceName": raceName,
				"RaceLink": raceLink,
				"Comment":  comment,
			})
			return
		}

		s := models.Suggestion{RaceName: raceName, RaceLink: raceLink, Comment: comment}
		if err := db.Conn().Create(&s).Error; err != nil {
			zap.S().Errorw("create suggestion", "err", err)
			http.Error(w, "db error", 500)
			return
		}

		http.Redirect(w, r, "/thankyou", http.StatusSeeOther)
	}
}
