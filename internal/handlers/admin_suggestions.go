package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/nbraces/raceindex/internal/db"
	"github.com/nbraces/raceindex/internal/models"
)

func setSuggestionArchived(w http.ResponseWriter, id int, archived bool) bool {
	res := db.Conn().Model(&models.Suggestion{}).Where("id = ?", id).
		Update("archived", archived)
	if res.Error != nil {
		zap.S().Errorw("set suggestion archived", "id", id, "archived", archived, "err", res.Error)
		http.Error(w, "db error", 500)
		return false
	}
	return true
}

// GET/POST /admin/dashboard/review_suggest/{id}
// POST archives the suggestion from its detail page.
func AdminReviewSuggestion(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			http.Redirect(w, r, "/admin/dashboard?error=suggestion_not_found", http.StatusSeeOther)
			return
		}

		if r.Method == http.MethodPost {
			if !setSuggestionArchived(w, id, true) {
				return
			}
			http.Redirect(w, r, "/admin/dashboard?ok=archived", http.StatusSeeOther)
			return
		}

		var s models.Suggestion
		if err := db.Conn().Where("id = ?", id).First(&s).Error; err != nil {
			http.Redirect(w, r, "/admin/dashboard?error=suggestion_not_found", http.StatusSeeOther)
			return
		}
		render(w, t, "admin/review_suggest.tmpl", map[string]any{
			"Title":      "Review Suggestion",
			"Suggestion": s,
		})
	}
}

// POST /admin/dashboard/archive_suggestion/{id}
func AdminArchiveSuggestion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Redirect(w, r, "/admin/dashboard?error=suggestion_not_found", http.StatusSeeOther)
		return
	}
	if !setSuggestionArchived(w, id, true) {
		return
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// POST /admin/dashboard/unarchive_suggestion/{id}
func AdminUnarchiveSuggestion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Redirect(w, r, "/admin/dashboard?error=suggestion_not_found", http.StatusSeeOther)
		return
	}
	if !setSuggestionArchived(w, id, false) {
		return
	}
	http.Redirect(w, r, "/admin/dashboard/archived_suggestions?ok=unarchived", http.StatusSeeOther)
}

// GET /admin/dashboard/archived_suggestions
// Suggestions are never deleted, only parked here.
func AdminArchivedSuggestions(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var archived []models.Suggestion
		if err := db.Conn().Where("archived = ?", true).Order("id DESC").Find(&archived).Error; err != nil {
			zap.S().Errorw("archived suggestions", "err", err)
			http.Error(w, "db error", 500)
			return
		}
		render(w, t, "admin/archived_suggestions.tmpl", map[string]any{
			"Title":         "Archived Suggestions",
			"Archived":      archived,
			"ArchivedCount": len(archived),
			"Flash":         MakeFlash(r),
		})
	}
}
