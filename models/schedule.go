package models

import "time"

// ScheduleEntry defines which time slots are bookable on a calendar date.
// There is at most one entry per date; admin writes replace the whole document.
type ScheduleEntry struct {
	Date           string    `bson:"date" json:"date"`                      // "YYYY-MM-DD", unique key
	AvailableSlots []string  `bson:"available_slots" json:"availableSlots"` // ordered "HH:MM" values
	IsAvailable    bool      `bson:"is_available" json:"isAvailable"`       // whole-day open/closed switch
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// HasSlot reports whether the given time-of-day is bookable on this date.
func (s *ScheduleEntry) HasSlot(timeOfDay string) bool {
	if !s.IsAvailable {
		return false
	}
	for _, slot := range s.AvailableSlots {
		if slot == timeOfDay {
			return true
		}
	}
	return false
}
