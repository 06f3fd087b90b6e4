package models

import "time"

// Admin is the single moderator account. Seeded once at startup,
// never mutated by the application.
type Admin struct {
	ID    uint   `gorm:"primaryKey"`
	Email string `gorm:"uniqueIndex;not null"`
	Hash  string `gorm:"not null"` // bcrypt
}

// Race rows are created out-of-band (no HTTP create route); the app only
// reads them. Slug is the public identity used in URLs.
//
// NBRegistration, NBAwards and TransPolicy are free text entered by hand;
// the search filters match them by substring (see internal/search).
type Race struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Name          string `gorm:"not null"`
	EventType     string `gorm:"not null;index"`
	Location      string `gorm:"not null"`
	LocationState string `gorm:"index"` // two-letter state code
	Distance      string
	Description   string

	NBRegistration string `gorm:"column:nb_registration"` // e.g. "Yes", "No", "Yes - online only"
	NBAwards       string `gorm:"column:nb_awards"`       // e.g. "Yes", "Top 3", "Overall only"
	Bathrooms      string
	ChosenName     string
	Pronouns       string
	TransPolicy    string // "No" / "No - ..." means absent

	RegistrationLink string
	// Slug is expected to be unique but is not constraint-enforced; the
	// out-of-band importer owns that, and the search listing groups by
	// slug as a guard against stray duplicates.
	Slug string `gorm:"index;not null"`
	Date time.Time
}

// Feedback lifecycle: submitted raw (Approved=false, FeedbackPublic empty),
// then published by the admin with an edited public text. Unapproving keeps
// FeedbackPublic so a prior edit survives the round trip.
type Feedback struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	RaceID     uint   `gorm:"not null;index"`
	NameOfRace string `gorm:"not null"` // snapshot; survives race edits
	NameOfUser string

	FeedbackRaw    string `gorm:"not null"`
	FeedbackPublic string
	Approved       bool `gorm:"not null;default:false"`
}

// Suggestion is a public proposal to add a race. Suggestions are archived,
// never deleted.
type Suggestion struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	RaceName string `gorm:"not null"`
	RaceLink string `gorm:"not null"`
	Comment  string `gorm:"not null"`
	Archived bool   `gorm:"not null;default:false"`
}
