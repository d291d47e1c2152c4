package booking

import (
	"fmt"
	"sync"
	"time"

	"laundry-booking/internal/data/entity"
	"laundry-booking/pkg/utils"
)

// maxDraws bounds random order ID draws before falling back to a scan.
const maxDraws = 32

// OrderIDSource produces candidate order IDs for a year.
type OrderIDSource interface {
	Next() string
	Year() int
}

type Option func(*Session)

// WithLenientCommit lets Commit proceed with unset machine or time,
// filling the booking with the default derived values.
func WithLenientCommit() Option {
	return func(s *Session) { s.strict = false }
}

// WithLenientDates lets SelectDate store codes outside the catalog.
func WithLenientDates() Option {
	return func(s *Session) { s.strictDates = false }
}

func WithOrderIDs(src OrderIDSource) Option {
	return func(s *Session) { s.ids = src }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session holds one user's in-flight selections and committed bookings.
// All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	strict      bool
	strictDates bool
	ids         OrderIDSource
	now         func() time.Time

	machine entity.MachineType
	date    string
	slot    entity.TimeSlot
	payment entity.PaymentMethod

	current *entity.Booking
	history []*entity.Booking
	held    map[string]struct{}
}

// State is a copy of a session's selections and bookings.
type State struct {
	SelectedMachine entity.MachineType
	SelectedDate    string
	SelectedTime    entity.TimeSlot
	SelectedPayment entity.PaymentMethod
	CurrentBooking  *entity.Booking
	History         []*entity.Booking
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		strict:      true,
		strictDates: true,
		now:         time.Now,
		date:        DefaultDate,
		history:     seedHistory(),
		held:        make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = utils.NewOrderIDGenerator(s.now().UnixNano(), s.now)
	}
	for _, b := range s.history {
		s.held[b.OrderID] = struct{}{}
	}
	return s
}

func (s *Session) SelectMachine(t entity.MachineType) error {
	if !t.Valid() {
		return fmt.Errorf("machine type %q: %w", t, ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine = t
	return nil
}

func (s *Session) SelectDate(code string) error {
	if _, err := LookupDate(code); err != nil && s.strictDates {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.date = code
	return nil
}

func (s *Session) SelectTime(slot entity.TimeSlot) error {
	if !ValidTimeSlot(slot) {
		return fmt.Errorf("time slot %q: %w", slot, ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = slot
	return nil
}

// SelectPayment records the method only; nothing is charged or committed.
func (s *Session) SelectPayment(p entity.PaymentMethod) error {
	if !p.Valid() {
		return fmt.Errorf("payment method %q: %w", p, ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.payment = p
	return nil
}

// Reset clears the scratch selections for a fresh flow. Bookings are kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine = entity.MachineTypeUnset
	s.date = DefaultDate
	s.slot = entity.TimeSlotUnset
	s.payment = entity.PaymentMethodUnset
}

func (s *Session) Quote() Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return quoteFor(s.machine, s.date, s.slot)
}

// Commit turns the current selections into the current booking. The
// previous current booking is replaced and is not archived to history.
func (s *Session) Commit() (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.strict {
		if s.machine == entity.MachineTypeUnset {
			return nil, fmt.Errorf("machine type is required: %w", ErrValidation)
		}
		if s.slot == entity.TimeSlotUnset {
			return nil, fmt.Errorf("time slot is required: %w", ErrValidation)
		}
	}

	orderID, err := s.nextOrderID()
	if err != nil {
		return nil, err
	}

	q := quoteFor(s.machine, s.date, s.slot)
	b := &entity.Booking{
		OrderID:       orderID,
		MachineType:   q.MachineType,
		MachineNumber: q.MachineNumber,
		Date:          q.Date,
		DateLabel:     q.DateLabel,
		Time:          q.Time,
		Price:         q.Price,
		PaymentMethod: s.payment,
		Status:        entity.BookingStatusInProgress,
		Progress:      InitialProgress,
		CreatedAt:     s.now(),
	}

	s.held[orderID] = struct{}{}
	s.current = b
	return b.Clone(), nil
}

// ReportProgress is the hook an external monitor calls to move the
// current booking forward. Reaching 100 completes it; completed is final.
func (s *Session) ReportProgress(progress int) (*entity.Booking, error) {
	if progress < 0 || progress > 100 {
		return nil, fmt.Errorf("progress %d out of range 0-100: %w", progress, ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, fmt.Errorf("current booking: %w", ErrNotFound)
	}
	if s.current.Status == entity.BookingStatusCompleted {
		return nil, fmt.Errorf("booking %s is completed: %w", s.current.OrderID, ErrInvalidTransition)
	}
	if progress < s.current.Progress {
		return nil, fmt.Errorf("progress cannot go back from %d to %d: %w",
			s.current.Progress, progress, ErrInvalidTransition)
	}

	s.current.Progress = progress
	if progress == 100 {
		s.current.Status = entity.BookingStatusCompleted
	}
	return s.current.Clone(), nil
}

func (s *Session) CurrentBooking() *entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// History returns past bookings, oldest first.
func (s *Session) History() []*entity.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.history)
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		SelectedMachine: s.machine,
		SelectedDate:    s.date,
		SelectedTime:    s.slot,
		SelectedPayment: s.payment,
		CurrentBooking:  s.current.Clone(),
		History:         cloneAll(s.history),
	}
}

// nextOrderID draws until it finds an ID the session does not hold yet.
// Caller holds s.mu.
func (s *Session) nextOrderID() (string, error) {
	for i := 0; i < maxDraws; i++ {
		id := s.ids.Next()
		if _, taken := s.held[id]; !taken {
			return id, nil
		}
	}

	year := s.ids.Year()
	for n := 0; n < utils.OrderIDSpace; n++ {
		id := utils.FormatOrderID(year, n)
		if _, taken := s.held[id]; !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("year %d: %w", year, ErrOrderIDExhausted)
}

func cloneAll(in []*entity.Booking) []*entity.Booking {
	out := make([]*entity.Booking, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}
