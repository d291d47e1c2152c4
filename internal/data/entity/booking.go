package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusInProgress BookingStatus = "in-progress"
	BookingStatusCompleted  BookingStatus = "completed"
)

// Booking is immutable after creation except for Status and Progress.
type Booking struct {
	OrderID       string
	MachineType   MachineType
	MachineNumber string
	Date          string
	DateLabel     string
	Time          TimeSlot
	Price         int
	PaymentMethod PaymentMethod
	Status        BookingStatus
	Progress      int
	CreatedAt     time.Time
}

func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
