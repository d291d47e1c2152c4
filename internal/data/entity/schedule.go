package entity

// DateOption is one of the fixed bookable days.
type DateOption struct {
	Day    string
	Date   string
	Marker string
	Label  string
}

type TimeSlot string

const TimeSlotUnset TimeSlot = ""
