package booking

import "laundry-booking/internal/data/entity"

const (
	// DefaultDate is the date code selected when a flow starts.
	DefaultDate = "15"

	// FallbackDateLabel is returned for date codes outside the catalog.
	FallbackDateLabel = "Dec 15, Monday"
)

var dateOptions = []entity.DateOption{
	{Day: "Mon", Date: "15", Marker: "Today", Label: "Dec 15, Monday"},
	{Day: "Tue", Date: "16", Label: "Dec 16, Tuesday"},
	{Day: "Wed", Date: "17", Label: "Dec 17, Wednesday"},
	{Day: "Thu", Date: "18", Label: "Dec 18, Thursday"},
}

var timeSlots = []entity.TimeSlot{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"1:00 PM",
	"2:00 PM",
}

// DateOptions returns the bookable days in display order.
func DateOptions() []entity.DateOption {
	out := make([]entity.DateOption, len(dateOptions))
	copy(out, dateOptions)
	return out
}

// TimeSlots returns the bookable slots in display order.
func TimeSlots() []entity.TimeSlot {
	out := make([]entity.TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

func ValidTimeSlot(slot entity.TimeSlot) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// seedHistory is the completed booking every new session starts with.
func seedHistory() []*entity.Booking {
	return []*entity.Booking{
		{
			OrderID:       "ORD-2025-001",
			MachineType:   entity.MachineTypeDryer,
			MachineNumber: "Dryer D1",
			Date:          "3",
			DateLabel:     "Dec 3, Wednesday",
			Time:          "12:00 PM",
			Price:         DryerPrice,
			PaymentMethod: entity.PaymentMethodCard,
			Status:        entity.BookingStatusCompleted,
			Progress:      100,
		},
	}
}
