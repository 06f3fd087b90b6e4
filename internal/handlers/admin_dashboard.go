package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/nbraces/raceindex/internal/db"
	"github.com/nbraces/raceindex/internal/models"
)

// GET /admin/dashboard
func AdminDashboard(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var feedback []models.Feedback
		if err := db.Conn().Order("id DESC").Find(&feedback).Error; err != nil {
			zap.S().Errorw("dashboard feedback", "err", err)
			http.Error(w, "db error", 500)
			return
		}

		var suggestions []models.Suggestion
		if err := db.Conn().Where("archived = ?", false).Order("id DESC").Find(&suggestions).Error; err != nil {
			zap.S().Errorw("dashboard suggestions", "err", err)
			http.Error(w, "db error", 500)
			return
		}

		render(w, t, "admin/dashboard.tmpl", map[string]any{
			"Title":           "Admin Dashboard",
			"Feedback":        feedback,
			"Suggestions":     suggestions,
			"SuggestionCount": len(suggestions),
			"Flash":           MakeFlash(r),
		})
	}
}
