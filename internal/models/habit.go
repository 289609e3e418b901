package models

// Habit identifiers form a fixed closed set.
const (
	HabitWater    = "water"
	HabitExercise = "exercise"
	HabitSleep    = "sleep"
)

// Habit describes one tracked habit and its daily goal.
type Habit struct {
	ID   string
	Name string
	Goal float64
	Unit string
}

// Habits lists the tracked habits in display order.
var Habits = []Habit{
	{ID: HabitWater, Name: "Water Intake", Goal: 8, Unit: "glasses"},
	{ID: HabitExercise, Name: "Exercise", Goal: 30, Unit: "minutes"},
	{ID: HabitSleep, Name: "Sleep", Goal: 8, Unit: "hours"},
}

// HabitByID returns the habit definition for id.
func HabitByID(id string) (Habit, bool) {
	for _, h := range Habits {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// DaySnapshot maps habit ID to progress for one calendar day. Values are
// kept in [0, goal] by the mutation layer.
type DaySnapshot map[string]float64

// NewDaySnapshot returns a snapshot with every habit at zero.
func NewDaySnapshot() DaySnapshot {
	snap := make(DaySnapshot, len(Habits))
	for _, h := range Habits {
		snap[h.ID] = 0
	}
	return snap
}

// AllMet reports whether every stored value is strictly positive. An empty
// snapshot does not qualify.
func (s DaySnapshot) AllMet() bool {
	if len(s) == 0 {
		return false
	}
	for _, v := range s {
		if v <= 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of the snapshot.
func (s DaySnapshot) Clone() DaySnapshot {
	out := make(DaySnapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
