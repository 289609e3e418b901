package models

// Mood is an ordered scale from best to worst.
type Mood string

const (
	MoodGreat Mood = "Great"
	MoodGood  Mood = "Good"
	MoodOkay  Mood = "Okay"
	MoodLow   Mood = "Low"
	MoodBad   Mood = "Bad"
)

// Moods lists all moods from best to worst.
var Moods = []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodBad}

// Energy is an ordered scale from fullest to emptiest.
type Energy string

const (
	EnergyHigh   Energy = "High"
	EnergyGood   Energy = "Good"
	EnergyMedium Energy = "Medium"
	EnergyLow    Energy = "Low"
	EnergyEmpty  Energy = "Empty"
)

// EnergyLevels lists all energy levels from fullest to emptiest.
var EnergyLevels = []Energy{EnergyHigh, EnergyGood, EnergyMedium, EnergyLow, EnergyEmpty}

// QuickTags is the suggested tag vocabulary. Entries may carry tags outside
// this list; it only seeds the pickers.
var QuickTags = []string{
	"Work",
	"Exercise",
	"Social",
	"Family",
	"Relaxation",
	"Study",
	"Health",
	"Creative",
}

func (m Mood) Valid() bool {
	for _, v := range Moods {
		if v == m {
			return true
		}
	}
	return false
}

func (e Energy) Valid() bool {
	for _, v := range EnergyLevels {
		if v == e {
			return true
		}
	}
	return false
}

// JournalEntry is a single mood/energy check-in. Saving an entry with an ID
// that already exists replaces it in place; nothing enforces one entry per
// date at the collection level.
type JournalEntry struct {
	ID        string   `json:"id"`
	Date      string   `json:"date"` // YYYY-MM-DD format
	Mood      Mood     `json:"mood"`
	Energy    Energy   `json:"energy"`
	Notes     string   `json:"notes"`
	Tags      []string `json:"tags"`
	CreatedAt int64    `json:"timestamp"` // epoch millis
}
