package handlers

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/nbraces/raceindex/internal/db"
	"github.com/nbraces/raceindex/internal/models"
)

// idParam parses the numeric {id} segment. Anything non-numeric is treated
// as not-found; the raw string must never reach a query.
func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

func feedbackPage(id int) string {
	return "/admin/dashboard/feedback/" + strconv.Itoa(id)
}

// GET /admin/dashboard/feedback/{id}
func AdminReviewFeedback(t *template.Template) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		var fb models.Feedback
		if !ok || db.Conn().Where("id = ?", id).First(&fb).Error != nil {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
		render(w, t, "admin/review_feedback.tmpl", map[string]any{
			"Title":    "Review Feedback",
			"Feedback": fb,
			"Flash":    MakeFlash(r),
		})
	}
}

// POST /admin/dashboard/approve_feedback/{id}
// Empty text is refused and the row stays exactly as it was.
func AdminApproveFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Redirect(w, r, "/admin/dashboard?error=feedback_not_found", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	text := strings.TrimSpace(r.FormValue("feedback_public"))
	if text == "" {
		http.Redirect(w, r, feedbackPage(id)+"?error=empty_public", http.StatusSeeOther)
		return
	}

	res := db.Conn().Model(&models.Feedback{}).Where("id = ?", id).
		Updates(map[string]any{"approved": true, "feedback_public": text})
	if res.Error != nil {
		zap.S().Errorw("approve feedback", "id", id, "err", res.Error)
		http.Error(w, "db error", 500)
		return
	}
	if res.RowsAffected == 0 {
		http.Redirect(w, r, "/admin/dashboard?error=feedback_not_found", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, feedbackPage(id)+"?ok=approved", http.StatusSeeOther)
}

// POST /admin/dashboard/unapprove_feedback/{id}
// The public text is kept so re-approving does not lose the edit.
func AdminUnapproveFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Redirect(w, r, "/admin/dashboard?error=feedback_not_found", http.StatusSeeOther)
		return
	}
	res := db.Conn().Model(&models.Feedback{}).Where("id = ?", id).
		Update("approved", false)
	if res.Error != nil {
		zap.S().Errorw("unapprove feedback", "id", id, "err", res.Error)
		http.Error(w, "db error", 500)
		return
	}
	http.Redirect(w, r, feedbackPage(id)+"?ok=unapproved", http.StatusSeeOther)
}

// POST /admin/dashboard/edit_feedback/{id}
// Updates the public text only; approval state is untouched.
func AdminEditFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Redirect(w, r, "/admin/dashboard?error=feedback_not_found", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	text := strings.TrimSpace(r.FormValue("feedback_public"))
	if text == "" {
		http.Redirect(w, r, feedbackPage(id)+"?error=empty_public", http.StatusSeeOther)
		return
	}

	res := db.Conn().Model(&models.Feedback{}).Where("id = ?", id).
		Update("feedback_public", text)
	if res.Error != nil {
		zap.S().Errorw("edit feedback", "id", id, "err", res.Error)
		http.Error(w, "db error", 500)
		return
	}
	http.Redirect(w, r, feedbackPage(id)+"?ok=updated", http.StatusSeeOther)
}

// POST /admin/dashboard/delete_feedback/{id}
func AdminDeleteFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		http.Redirect(w, r, "/admin/dashboard?error=feedback_not_found", http.StatusSeeOther)
		return
	}
	if err := db.Conn().Where("id = ?", id).Delete(&models.Feedback{}).Error; err != nil {
		zap.S().Errorw("delete feedback", "id", id, "err", err)
		http.Error(w, "db error", 500)
		return
	}
	http.Redirect(w, r, "/admin/dashboard?ok=deleted", http.StatusSeeOther)
}
