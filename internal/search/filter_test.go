package search

import (
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nbraces/raceindex/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "search_test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.Race{}))
	return gdb
}

func day(n int) time.Time {
	return time.Date(2026, 1, n, 0, 0, 0, 0, time.UTC)
}

func seedRaces(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	races := []models.Race{
		{Name: "Bay 5K", Slug: "bay-5k", EventType: "5k", LocationState: "CA", Location: "Oakland",
			NBAwards: "Yes", NBRegistration: "Yes", TransPolicy: "Full written policy", Date: day(10)},
		{Name: "Desert 10K", Slug: "desert-10k", EventType: "10k", LocationState: "CA", Location: "Palm Springs",
			NBAwards: "Top 3 in each division", NBRegistration: "No", TransPolicy: "No", Date: day(20)},
		{Name: "Forest Half", Slug: "forest-half", EventType: "half", LocationState: "OR", Location: "Portland",
			NBAwards: "OVERALL winners only", NBRegistration: "YES - online", TransPolicy: "No - under review", Date: day(5)},
		{Name: "City Mile", Slug: "city-mile", EventType: "mile", LocationState: "NY", Location: "NYC",
			NBAwards: "None", NBRegistration: "Binary only", TransPolicy: "See website", Date: day(15)},
	}
	for i := range races {
		require.NoError(t, gdb.Create(&races[i]).Error)
	}
}

func slugs(t *testing.T, gdb *gorm.DB, f Filters) []string {
	t.Helper()
	var races []models.Race
	require.NoError(t, gdb.Scopes(f.Scope()).Find(&races).Error)
	out := make([]string, 0, len(races))
	for _, r := range races {
		out = append(out, r.Slug)
	}
	return out
}

func TestParse_DropsBlankAndAll(t *testing.T) {
	v := url.Values{
		"location_state": {"all"},
		"event_type":     {"", "  ", "5k"},
		"awards":         {"1"},
	}
	f := Parse(v)
	assert.Equal(t, "", f.State)
	assert.Equal(t, []string{"5k"}, f.EventTypes)
	assert.True(t, f.Awards)
	assert.False(t, f.XGender)
	assert.False(t, f.Policy)
	assert.True(t, f.Any())
}

func TestParse_AllEventTypeDisablesConstraint(t *testing.T) {
	f := Parse(url.Values{"event_type": {"5k", "all"}})
	assert.Empty(t, f.EventTypes)
	assert.False(t, f.Any())
}

func TestParse_ZeroValueMatchesEverything(t *testing.T) {
	f := Parse(url.Values{})
	assert.False(t, f.Any())
	assert.Equal(t, "All races", f.Describe())
	assert.Equal(t, "", f.Encode())
}

func TestEncode_RoundTrip(t *testing.T) {
	f := Filters{State: "CA", EventTypes: []string{"5k", "10k"}, Awards: true, Policy: true}
	got, err := url.ParseQuery(f.Encode())
	if err != nil {
		t.Fatalf("parse encoded query: %v", err)
	}
	assert.Equal(t, f, Parse(got))
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		name string
		f    Filters
		want string
	}{
		{"state only", Filters{State: "CA"}, "Location: CA"},
		{"one type", Filters{EventTypes: []string{"5k"}}, "Event Type: 5k"},
		{"many types", Filters{EventTypes: []string{"5k", "10k"}}, "Event Types: 5k, 10k"},
		{"flags", Filters{Awards: true, XGender: true, Policy: true},
			"Non-binary awards, X gender registration, Trans/non-binary policy"},
		{"none", Filters{}, "All races"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.f.Describe())
		})
	}
}

func TestScope_NoFiltersReturnsAllNewestFirst(t *testing.T) {
	gdb := openTestDB(t)
	seedRaces(t, gdb)
	assert.Equal(t, []string{"desert-10k", "city-mile", "bay-5k", "forest-half"},
		slugs(t, gdb, Filters{}))
}

func TestScope_DeduplicatesBySlug(t *testing.T) {
	gdb := openTestDB(t)
	seedRaces(t, gdb)
	// A second row under an existing slug must not produce a duplicate entry.
	require.NoError(t, gdb.Exec(
		"INSERT INTO races (name, event_type, location, location_state, slug, date) VALUES (?, ?, ?, ?, ?, ?)",
		"Bay 5K copy", "5k", "Oakland", "CA", "bay-5k", day(10)).Error)

	got := slugs(t, gdb, Filters{})
	seen := map[string]int{}
	for _, s := range got {
		seen[s]++
	}
	assert.Equal(t, 1, seen["bay-5k"])
	assert.Len(t, got, 4)
}

func TestScope_AwardsSubstrings(t *testing.T) {
	gdb := openTestDB(t)
	seedRaces(t, gdb)
	// "Yes", "Top 3...", "OVERALL..." all match case-insensitively; "None" does not.
	assert.Equal(t, []string{"desert-10k", "bay-5k", "forest-half"},
		slugs(t, gdb, Filters{Awards: true}))
}

func TestScope_XGender(t *testing.T) {
	gdb := openTestDB(t)
	seedRaces(t, gdb)
	assert.Equal(t, []string{"bay-5k", "forest-half"},
		slugs(t, gdb, Filters{XGender: true}))
}

func TestScope_PolicyExcludesNoAndNoDash(t *testing.T) {
	gdb := openTestDB(t)
	seedRaces(t, gdb)
	// "No" and "No - under review" mean absent; any other text counts.
	assert.Equal(t, []string{"city-mile", "bay-5k"},
		slugs(t, gdb, Filters{Policy: true}))
}

func TestScope_Conjunction(t *testing.T) {
	gdb := openTestDB(t)
	seedRaces(t, gdb)

	got := slugs(t, gdb, Filters{State: "CA", EventTypes: []string{"5k", "10k"}})
	assert.Equal(t, []string{"desert-10k", "bay-5k"}, got)

	got = slugs(t, gdb, Filters{State: "CA", EventTypes: []string{"5k", "10k"}, Policy: true})
	assert.Equal(t, []string{"bay-5k"}, got)

	got = slugs(t, gdb, Filters{State: "OR", EventTypes: []string{"5k"}})
	assert.Empty(t, got)
}
