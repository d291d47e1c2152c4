package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"testing"
	"time"

	"laundry-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedIDs replays a list of IDs, repeating the last one forever.
type fixedIDs struct {
	ids  []string
	year int
	i    int
}

func (f *fixedIDs) Next() string {
	id := f.ids[f.i]
	if f.i < len(f.ids)-1 {
		f.i++
	}
	return id
}

func (f *fixedIDs) Year() int { return f.year }

func TestDateLabel(t *testing.T) {
	cases := map[string]string{
		"15": "Dec 15, Monday",
		"16": "Dec 16, Tuesday",
		"17": "Dec 17, Wednesday",
		"18": "Dec 18, Thursday",
		"19": FallbackDateLabel,
		"":   FallbackDateLabel,
		"x":  FallbackDateLabel,
	}
	for code, want := range cases {
		assert.Equal(t, want, DateLabel(code), "code %q", code)
	}
}

func TestLookupDate_NotFound(t *testing.T) {
	_, err := LookupDate("42")
	assert.ErrorIs(t, err, ErrNotFound)

	d, err := LookupDate("15")
	require.NoError(t, err)
	assert.Equal(t, "Today", d.Marker)
	assert.Equal(t, "Mon", d.Day)
}

func TestMachineNumberAndPrice(t *testing.T) {
	assert.Equal(t, "Washer W1", MachineNumber(entity.MachineTypeWasher))
	assert.Equal(t, "Dryer D2", MachineNumber(entity.MachineTypeDryer))
	assert.Equal(t, "Unknown", MachineNumber(entity.MachineTypeUnset))

	assert.Equal(t, 5, Price(entity.MachineTypeWasher))
	assert.Equal(t, 6, Price(entity.MachineTypeDryer))
	assert.Equal(t, 5, Price(entity.MachineTypeUnset))
}

func TestDerivationsAreIdempotent(t *testing.T) {
	for i := 0; i < 5; i++ {
		assert.Equal(t, "Dec 17, Wednesday", DateLabel("17"))
		assert.Equal(t, "Dryer D2", MachineNumber(entity.MachineTypeDryer))
		assert.Equal(t, 6, Price(entity.MachineTypeDryer))
	}
}

func TestCatalogCopiesAreIndependent(t *testing.T) {
	dates := DateOptions()
	dates[0].Label = "changed"
	assert.Equal(t, "Dec 15, Monday", DateOptions()[0].Label)

	slots := TimeSlots()
	require.Len(t, slots, 6)
	slots[0] = "changed"
	assert.Equal(t, entity.TimeSlot("09:00 AM"), TimeSlots()[0])
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession()
	st := s.Snapshot()

	assert.Equal(t, entity.MachineTypeUnset, st.SelectedMachine)
	assert.Equal(t, DefaultDate, st.SelectedDate)
	assert.Equal(t, entity.TimeSlotUnset, st.SelectedTime)
	assert.Equal(t, entity.PaymentMethodUnset, st.SelectedPayment)
	assert.Nil(t, st.CurrentBooking)

	require.Len(t, st.History, 1)
	assert.Equal(t, "ORD-2025-001", st.History[0].OrderID)
	assert.Equal(t, entity.BookingStatusCompleted, st.History[0].Status)
	assert.Equal(t, 100, st.History[0].Progress)
}

func TestSession_ScenarioA(t *testing.T) {
	s := NewSession()

	require.NoError(t, s.SelectMachine(entity.MachineTypeWasher))
	require.NoError(t, s.SelectDate("16"))
	require.NoError(t, s.SelectTime("10:00 AM"))
	require.NoError(t, s.SelectPayment(entity.PaymentMethodCard))

	b, err := s.Commit()
	require.NoError(t, err)

	assert.Equal(t, "Washer W1", b.MachineNumber)
	assert.Equal(t, 5, b.Price)
	assert.Equal(t, "Dec 16, Tuesday", b.DateLabel)
	assert.Equal(t, entity.TimeSlot("10:00 AM"), b.Time)
	assert.Equal(t, entity.PaymentMethodCard, b.PaymentMethod)
	assert.Equal(t, entity.BookingStatusInProgress, b.Status)
	assert.Equal(t, 65, b.Progress)

	current := s.CurrentBooking()
	require.NotNil(t, current)
	assert.Equal(t, b.OrderID, current.OrderID)
}

func TestSession_ScenarioB_SecondCommitReplacesFirst(t *testing.T) {
	s := NewSession()

	require.NoError(t, s.SelectMachine(entity.MachineTypeWasher))
	require.NoError(t, s.SelectTime("09:00 AM"))
	first, err := s.Commit()
	require.NoError(t, err)

	require.NoError(t, s.SelectMachine(entity.MachineTypeDryer))
	require.NoError(t, s.SelectDate("18"))
	require.NoError(t, s.SelectTime("2:00 PM"))
	second, err := s.Commit()
	require.NoError(t, err)

	assert.NotEqual(t, first.OrderID, second.OrderID)
	assert.Equal(t, second.OrderID, s.CurrentBooking().OrderID)
	assert.Equal(t, "Dryer D2", s.CurrentBooking().MachineNumber)

	for _, h := range s.History() {
		assert.NotEqual(t, first.OrderID, h.OrderID)
	}
	assert.Len(t, s.History(), 1)
}

func TestSession_StrictCommitRequiresMachineAndTime(t *testing.T) {
	s := NewSession()

	_, err := s.Commit()
	assert.ErrorIs(t, err, ErrValidation)

	require.NoError(t, s.SelectMachine(entity.MachineTypeDryer))
	_, err = s.Commit()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Nil(t, s.CurrentBooking())

	require.NoError(t, s.SelectTime("1:00 PM"))
	_, err = s.Commit()
	assert.NoError(t, err)
}

func TestSession_LenientCommitUsesDefaults(t *testing.T) {
	s := NewSession(WithLenientCommit())

	b, err := s.Commit()
	require.NoError(t, err)

	assert.Equal(t, entity.MachineTypeUnset, b.MachineType)
	assert.Equal(t, "Unknown", b.MachineNumber)
	assert.Equal(t, 5, b.Price)
	assert.Equal(t, "Dec 15, Monday", b.DateLabel)
	assert.Equal(t, entity.TimeSlotUnset, b.Time)
	assert.Equal(t, entity.BookingStatusInProgress, b.Status)
}

func TestSession_SelectRejectsUnknownValues(t *testing.T) {
	s := NewSession()

	assert.ErrorIs(t, s.SelectMachine("iron"), ErrValidation)
	assert.ErrorIs(t, s.SelectMachine(entity.MachineTypeUnset), ErrValidation)
	assert.ErrorIs(t, s.SelectTime("3:00 PM"), ErrValidation)
	assert.ErrorIs(t, s.SelectPayment("cash"), ErrValidation)
	assert.ErrorIs(t, s.SelectDate("31"), ErrNotFound)

	st := s.Snapshot()
	assert.Equal(t, DefaultDate, st.SelectedDate)
	assert.Equal(t, entity.MachineTypeUnset, st.SelectedMachine)
}

func TestSession_LenientDatesFallBackOnLabel(t *testing.T) {
	s := NewSession(WithLenientDates())

	require.NoError(t, s.SelectDate("31"))
	assert.Equal(t, "31", s.Snapshot().SelectedDate)
	assert.Equal(t, FallbackDateLabel, s.Quote().DateLabel)
}

func TestSession_ResetKeepsBookings(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SelectMachine(entity.MachineTypeWasher))
	require.NoError(t, s.SelectDate("17"))
	require.NoError(t, s.SelectTime("11:00 AM"))
	require.NoError(t, s.SelectPayment(entity.PaymentMethodEWallet))
	_, err := s.Commit()
	require.NoError(t, err)

	s.Reset()
	st := s.Snapshot()

	assert.Equal(t, entity.MachineTypeUnset, st.SelectedMachine)
	assert.Equal(t, DefaultDate, st.SelectedDate)
	assert.Equal(t, entity.TimeSlotUnset, st.SelectedTime)
	assert.Equal(t, entity.PaymentMethodUnset, st.SelectedPayment)
	assert.NotNil(t, st.CurrentBooking)
}

func TestSession_QuoteFollowsSelections(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SelectMachine(entity.MachineTypeDryer))
	require.NoError(t, s.SelectDate("17"))

	q := s.Quote()
	assert.Equal(t, "Dryer D2", q.MachineNumber)
	assert.Equal(t, 6, q.Price)
	assert.Equal(t, "Dec 17, Wednesday", q.DateLabel)
}

func TestSession_ReportProgress(t *testing.T) {
	s := NewSession()

	_, err := s.ReportProgress(80)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.SelectMachine(entity.MachineTypeWasher))
	require.NoError(t, s.SelectTime("12:00 PM"))
	_, err = s.Commit()
	require.NoError(t, err)

	_, err = s.ReportProgress(101)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.ReportProgress(40)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	b, err := s.ReportProgress(90)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusInProgress, b.Status)
	assert.Equal(t, 90, b.Progress)

	b, err = s.ReportProgress(100)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, b.Status)

	_, err = s.ReportProgress(100)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSession_ReturnedBookingsAreCopies(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SelectMachine(entity.MachineTypeWasher))
	require.NoError(t, s.SelectTime("12:00 PM"))

	b, err := s.Commit()
	require.NoError(t, err)
	b.Price = 999
	b.Status = entity.BookingStatusCompleted

	current := s.CurrentBooking()
	assert.Equal(t, 5, current.Price)
	assert.Equal(t, entity.BookingStatusInProgress, current.Status)

	s.History()[0].OrderID = "changed"
	assert.Equal(t, "ORD-2025-001", s.History()[0].OrderID)
}

func TestSession_OrderIDFormat(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	s := NewSession(WithClock(func() time.Time { return now }))
	require.NoError(t, s.SelectMachine(entity.MachineTypeWasher))
	require.NoError(t, s.SelectTime("09:00 AM"))

	pattern := regexp.MustCompile(`^ORD-2026-\d{3}$`)
	for i := 0; i < 20; i++ {
		b, err := s.Commit()
		require.NoError(t, err)
		assert.Regexp(t, pattern, b.OrderID)
		assert.Equal(t, now, b.CreatedAt)
	}
}

func TestSession_OrderIDsNeverCollide(t *testing.T) {
	src := &fixedIDs{ids: []string{"ORD-2026-007"}, year: 2026}
	s := NewSession(WithOrderIDs(src))
	require.NoError(t, s.SelectMachine(entity.MachineTypeWasher))
	require.NoError(t, s.SelectTime("09:00 AM"))

	seen := map[string]bool{"ORD-2025-001": true}
	for i := 0; i < 5; i++ {
		b, err := s.Commit()
		require.NoError(t, err)
		assert.False(t, seen[b.OrderID], "duplicate %s", b.OrderID)
		seen[b.OrderID] = true
	}
	assert.True(t, seen["ORD-2026-007"])
	assert.True(t, seen["ORD-2026-000"])
}

func TestSession_SeededOrderIDIsNeverReissued(t *testing.T) {
	src := &fixedIDs{ids: []string{"ORD-2025-001", "ORD-2025-002"}, year: 2025}
	s := NewSession(WithOrderIDs(src))
	require.NoError(t, s.SelectMachine(entity.MachineTypeDryer))
	require.NoError(t, s.SelectTime("09:00 AM"))

	b, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, "ORD-2025-002", b.OrderID)
}

func TestSession_OrderIDsExhausted(t *testing.T) {
	src := &fixedIDs{ids: []string{"ORD-2026-000"}, year: 2026}
	s := NewSession(WithOrderIDs(src))
	require.NoError(t, s.SelectMachine(entity.MachineTypeWasher))
	require.NoError(t, s.SelectTime("09:00 AM"))

	for n := 0; n < 1000; n++ {
		b, err := s.Commit()
		require.NoError(t, err, "commit %d", n)
		require.Equal(t, fmt.Sprintf("ORD-2026-%03d", n), b.OrderID, "commit "+strconv.Itoa(n))
	}

	_, err := s.Commit()
	assert.ErrorIs(t, err, ErrOrderIDExhausted)
}
