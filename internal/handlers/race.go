package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/nbraces/raceindex/internal/db"
	"github.com/nbraces/raceindex/internal/models"
)

func raceBySlug(slug string) (*models.Race, bool) {
	var race models.Race
	if err := db.Conn().Where("slug = ?", slug).First(&race).Error; err != nil {
		return nil, false
	}
	return &race, true
}

// GET /race/{slug}
func RaceDetail(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		race, ok := raceBySlug(chi.URLParam(r, "slug"))
		if !ok {
			http.Redirect(w, r, "/search", http.StatusSeeOther)
			return
		}

		var feedback []models.Feedback
		if err := db.Conn().
			Where("race_id = ? AND approved = ? AND feedback_public != ''", race.ID, true).
			Order("id DESC").
			Find(&feedback).Error; err != nil {
			zap.S().Errorw("race feedback", "slug", race.Slug, "err", err)
			http.Error(w, "db error", 500)
			return
		}

		render(w, t, "race.tmpl", map[string]any{
			"Title":    race.Name,
			"Race":     race,
			"Feedback": feedback,
			"Flash":    MakeFlash(r),
		})
	}
}

// POST /race/{slug}/submit_feedback
// New feedback is stored unapproved.
func SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	race, ok := raceBySlug(slug)
	if !ok {
		http.Redirect(w, r, "/search", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	pronouns := strings.TrimSpace(r.FormValue("pronouns"))
	comment := strings.TrimSpace(r.FormValue("comment"))
	// Email and event are on the form but intentionally not persisted.

	if comment == "" {
		http.Redirect(w, r, "/race/"+slug+"?error=empty_comment", http.StatusSeeOther)
		return
	}

	if pronouns != "" {
		name = name + " (" + pronouns + ")"
	}
	fb := models.Feedback{
		RaceID:      race.ID,
		NameOfRace:  race.Name,
		NameOfUser:  name,
		FeedbackRaw: comment,
	}
	if err := db.Conn().Create(&fb).Error; err != nil {
		zap.S().Errorw("create feedback", "slug", slug, "err", err)
		http.Error(w, "db error", 500)
		return
	}

	http.Redirect(w, r, "/race/"+slug+"?ok=thanks", http.StatusSeeOther)
}

// GET /race/{slug}/qr.png
func RaceQR(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, ok := raceBySlug(slug); !ok {
		http.NotFound(w, r)
		return
	}

	url := "http://" + r.Host + "/race/" + slug

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
