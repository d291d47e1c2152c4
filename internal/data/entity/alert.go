package entity

type AlertKind string

const (
	AlertKindLaundryComplete  AlertKind = "laundry-complete"
	AlertKindRewardUnlocked   AlertKind = "reward-unlocked"
	AlertKindBookingReminder  AlertKind = "booking-reminder"
	AlertKindMachineAvailable AlertKind = "machine-available"
	AlertKindPaymentConfirmed AlertKind = "payment-confirmed"
)

type Alert struct {
	Kind    AlertKind
	Title   string
	Message string
	Age     string
}
