package handlers

import (
	"net/http"
	"strings"
)

type Flash struct {
	Kind string // "ok" or "error"
	Text string
}

var okText = map[string]string{
	"approved":   "Feedback approved and published successfully.",
	"unapproved": "Feedback unapproved and hidden from public view.",
	"updated":    "Feedback updated successfully.",
	"deleted":    "Feedback deleted successfully.",
	"archived":   "Suggestion archived successfully.",
	"unarchived": "Suggestion unarchived successfully.",
	"thanks":     "Thank you for your feedback!",
}

var errText = map[string]string{
	"empty_public":         "Public feedback cannot be empty.",
	"empty_comment":        "Please write a comment before submitting.",
	"feedback_not_found":   "Feedback not found.",
	"suggestion_not_found": "Suggestion not found.",
}

// MakeFlash turns ?ok= / ?error= query keys into a one-shot notice for the
// next rendered page. Unknown keys pass through verbatim.
func MakeFlash(r *http.Request) *Flash {
	q := r.URL.Query()

	if raw := strings.TrimSpace(q.Get("error")); raw != "" {
		if t, ok := errText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "error", Text: t}
		}
		return &Flash{Kind: "error", Text: raw}
	}
	if raw := strings.TrimSpace(q.Get("ok")); raw != "" {
		if t, ok := okText[strings.ToLower(raw)]; ok {
			return &Flash{Kind: "ok", Text: t}
		}
		return &Flash{Kind: "ok", Text: raw}
	}
	return nil
}
