package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nbraces/raceindex/internal/db"
	"github.com/nbraces/raceindex/internal/models"
	"github.com/nbraces/raceindex/internal/session"
)

// RequireAdmin blocks access unless a valid admin session exists.
// No mutation ever happens on the rejected path; the request is simply
// sent to the login page.
func RequireAdmin(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.AdminID(r); !ok {
				http.Redirect(w, r, "/admin", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GET /admin
// Any existing session is cleared first.
func AdminLoginForm(t *template.Template, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Clear(w, r)
		render(w, t, "admin/login.tmpl", map[string]any{
			"Title": "Admin Login",
		})
	}
}

// POST /admin
// The failure message never says whether the email or the password was wrong.
func AdminLoginSubmit(t *template.Template, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Clear(w, r)

		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		email := strings.TrimSpace(r.FormValue("email"))
		password := strings.TrimSpace(r.FormValue("password"))

		if email == "" {
			renderLoginError(w, t, "Must provide valid email")
			return
		}
		if password == "" {
			renderLoginError(w, t, "Must provide valid password")
			return
		}

		var admin models.Admin
		err := db.Conn().Where("email = ?", email).First(&admin).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				zap.S().Errorw("admin lookup", "err", err)
			}
			renderLoginError(w, t, "Invalid login credentials")
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.Hash), []byte(password)) != nil {
			renderLoginError(w, t, "Invalid login credentials")
			return
		}

		sessions.Establish(w, admin.ID)
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}
}

func renderLoginError(w http.ResponseWriter, t *template.Template, msg string) {
	render(w, t, "admin/login.tmpl", map[string]any{
		"Title": "Admin Login",
		"Error": msg,
	})
}

// GET /logout
func Logout(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Clear(w, r)
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}
