package booking

import (
	"fmt"

	"laundry-booking/internal/data/entity"
)

const (
	WasherPrice  = 5
	DryerPrice   = 6
	DefaultPrice = WasherPrice

	// InitialProgress is the progress a booking reports right after commit.
	InitialProgress = 65

	UnknownMachine = "Unknown"
)

// LookupDate finds the date option for code.
func LookupDate(code string) (entity.DateOption, error) {
	for _, d := range dateOptions {
		if d.Date == code {
			return d, nil
		}
	}
	return entity.DateOption{}, fmt.Errorf("date %q: %w", code, ErrNotFound)
}

// DateLabel never fails: unknown codes get FallbackDateLabel.
func DateLabel(code string) string {
	d, err := LookupDate(code)
	if err != nil {
		return FallbackDateLabel
	}
	return d.Label
}

// MachineNumber is a fixed mapping per type and does not look at availability.
func MachineNumber(t entity.MachineType) string {
	switch t {
	case entity.MachineTypeWasher:
		return "Washer W1"
	case entity.MachineTypeDryer:
		return "Dryer D2"
	default:
		return UnknownMachine
	}
}

func Price(t entity.MachineType) int {
	switch t {
	case entity.MachineTypeDryer:
		return DryerPrice
	case entity.MachineTypeWasher:
		return WasherPrice
	default:
		return DefaultPrice
	}
}

// Quote holds the values the payment screen shows before commit.
type Quote struct {
	MachineType   entity.MachineType
	MachineNumber string
	Price         int
	Date          string
	DateLabel     string
	Time          entity.TimeSlot
}

func quoteFor(t entity.MachineType, date string, slot entity.TimeSlot) Quote {
	return Quote{
		MachineType:   t,
		MachineNumber: MachineNumber(t),
		Price:         Price(t),
		Date:          date,
		DateLabel:     DateLabel(date),
		Time:          slot,
	}
}
