package models

// Availability is the admin-configured list of consultation times open for
// booking on a given calendar date. A record with an empty Times list means
// the date is not offered at all.
type Availability struct {
	ID    string   `bson:"id" json:"id"`
	Date  string   `bson:"date" json:"date"`
	Times []string `bson:"times" json:"times"`
}

// SlotView is a single bookable time presented to the booking flow. Taken
// slots are rendered disabled rather than removed so the client can tell
// "unavailable" apart from "nonexistent".
type SlotView struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

// OpenTimes returns the times of the slots that are still bookable,
// preserving the configured ordering.
func OpenTimes(slots []SlotView) []string {
	var open []string
	for _, s := range slots {
		if !s.Booked {
			open = append(open, s.Time)
		}
	}
	return open
}
