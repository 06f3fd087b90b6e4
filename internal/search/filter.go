// Package search builds the filtered race listing. Each active filter
// contributes one predicate; the listing is the conjunction of all of them,
// deduplicated by slug and ordered by date descending.
package search

import (
	"net/url"
	"strings"

	"gorm.io/gorm"
)

// Fixed substring predicates for the stringly-typed race columns. These are
// constants, never user input; only state and event-type values bind as
// query parameters. SQLite LIKE is case-insensitive for ASCII, which the
// hand-entered data relies on.
const (
	awardsPredicate  = "(nb_awards LIKE '%yes%' OR nb_awards LIKE '%top%' OR nb_awards LIKE '%overall%')"
	xGenderPredicate = "nb_registration LIKE '%yes%'"
	policyPredicate  = "(trans_policy != 'No' AND trans_policy NOT LIKE 'No -%')"
)

// Filters is one search request's worth of optional constraints.
// The zero value matches every race.
type Filters struct {
	State      string   // exact match on location_state; "" means any
	EventTypes []string // membership on event_type; empty means any
	Awards     bool     // nb_awards mentions yes/top/overall
	XGender    bool     // nb_registration mentions yes
	Policy     bool     // trans_policy present in some form
}

// Parse reads filters from query-string or form values. Blank and "all"
// selections impose no constraint and are dropped here, so downstream code
// never has to special-case them.
func Parse(v url.Values) Filters {
	f := Filters{
		Awards:  v.Get("awards") != "",
		XGender: v.Get("x_gender") != "",
		Policy:  v.Get("policy") != "",
	}

	if s := strings.TrimSpace(v.Get("location_state")); s != "" && s != "all" {
		f.State = s
	}

	types := make([]string, 0, len(v["event_type"]))
	all := false
	for _, et := range v["event_type"] {
		et = strings.TrimSpace(et)
		if et == "" {
			continue
		}
		if et == "all" {
			all = true
		}
		types = append(types, et)
	}
	if !all {
		f.EventTypes = types
	}
	return f
}

// Any reports whether at least one filter is active. The search page uses
// this to distinguish "nothing matched your filters" from an unfiltered
// listing that happens to be empty.
func (f Filters) Any() bool {
	return f.State != "" || len(f.EventTypes) > 0 || f.Awards || f.XGender || f.Policy
}

// Encode renders the canonical query string for redirect-then-render.
func (f Filters) Encode() string {
	v := url.Values{}
	if f.Awards {
		v.Set("awards", "1")
	}
	if f.XGender {
		v.Set("x_gender", "1")
	}
	if f.Policy {
		v.Set("policy", "1")
	}
	if f.State != "" {
		v.Set("location_state", f.State)
	}
	for _, et := range f.EventTypes {
		v.Add("event_type", et)
	}
	return v.Encode()
}

// Scope applies the conjunction of active predicates plus the listing's
// invariants: one row per slug, newest date first.
func (f Filters) Scope() func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if f.Awards {
			tx = tx.Where(awardsPredicate)
		}
		if f.XGender {
			tx = tx.Where(xGenderPredicate)
		}
		if f.Policy {
			tx = tx.Where(policyPredicate)
		}
		if f.State != "" {
			tx = tx.Where("location_state = ?", f.State)
		}
		if len(f.EventTypes) > 0 {
			tx = tx.Where("event_type IN ?", f.EventTypes)
		}
		return tx.Group("slug").Order("date DESC")
	}
}

// Describe renders the human-readable summary shown above the results,
// e.g. "Location: CA, Event Type: 5k".
func (f Filters) Describe() string {
	var terms []string
	if f.State != "" {
		terms = append(terms, "Location: "+f.State)
	}
	switch {
	case len(f.EventTypes) == 1:
		terms = append(terms, "Event Type: "+f.EventTypes[0])
	case len(f.EventTypes) > 1:
		terms = append(terms, "Event Types: "+strings.Join(f.EventTypes, ", "))
	}
	if f.Awards {
		terms = append(terms, "Non-binary awards")
	}
	if f.XGender {
		terms = append(terms, "X gender registration")
	}
	if f.Policy {
		terms = append(terms, "Trans/non-binary policy")
	}
	if len(terms) == 0 {
		return "All races"
	}
	return strings.Join(terms, ", ")
}
