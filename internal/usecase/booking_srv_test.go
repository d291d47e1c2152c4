package usecase

import (
	"context"
	"testing"

	"laundry-booking/internal/booking"
	"laundry-booking/internal/data/entity"
	"laundry-booking/internal/data/repository"
	"laundry-booking/internal/dto/request"
	"laundry-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBookingService(t *testing.T, strict bool) BookingService {
	t.Helper()
	repo, err := repository.NewRepository(8, zap.NewNop())
	require.NoError(t, err)
	return NewBookingService(repo, utils.SessionConfig{CacheSize: 8, StrictCommit: strict, StrictDates: true}, zap.NewNop())
}

func startSession(t *testing.T, svc BookingService) uuid.UUID {
	t.Helper()
	created, err := svc.StartSession(context.Background())
	require.NoError(t, err)
	id, err := uuid.Parse(created.SessionID)
	require.NoError(t, err)
	return id
}

func intPtr(v int) *int { return &v }

func TestBookingService_FullWizard(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, true)
	id := startSession(t, svc)

	_, err := svc.SelectMachine(ctx, id, &request.SelectMachineRequest{MachineType: "washer"})
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, id, &request.SelectDateRequest{Date: "16"})
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, &request.SelectTimeRequest{Time: "10:00 AM"})
	require.NoError(t, err)
	st, err := svc.SelectPayment(ctx, id, &request.SelectPaymentRequest{PaymentMethod: "card"})
	require.NoError(t, err)
	assert.Equal(t, "card", st.SelectedPayment)

	quote, err := svc.GetQuote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, quote.Price)
	assert.Equal(t, "Dec 16, Tuesday", quote.DateLabel)

	b, err := svc.CommitBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Washer W1", b.MachineNumber)
	assert.Equal(t, 5, b.Price)
	assert.Equal(t, "Dec 16, Tuesday", b.DateLabel)
	assert.Equal(t, entity.BookingStatusInProgress, b.Status)
	assert.Equal(t, 65, b.Progress)

	session, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, session.CurrentBooking)
	assert.Equal(t, b.OrderID, session.CurrentBooking.OrderID)
	assert.Len(t, session.History, 1)
}

func TestBookingService_LegacyPaymentCodes(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, true)
	id := startSession(t, svc)

	st, err := svc.SelectPayment(ctx, id, &request.SelectPaymentRequest{PaymentMethod: "fpx"})
	require.NoError(t, err)
	assert.Equal(t, "internet-banking", st.SelectedPayment)

	st, err = svc.SelectPayment(ctx, id, &request.SelectPaymentRequest{PaymentMethod: "tng"})
	require.NoError(t, err)
	assert.Equal(t, "e-wallet", st.SelectedPayment)
}

func TestBookingService_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, true)
	id := startSession(t, svc)

	_, err := svc.SelectMachine(ctx, id, &request.SelectMachineRequest{MachineType: "iron"})
	require.Error(t, err)
	assert.ErrorIs(t, err, booking.ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "MachineType")

	_, err = svc.SelectTime(ctx, id, &request.SelectTimeRequest{Time: "4:00 PM"})
	assert.ErrorIs(t, err, booking.ErrValidation)

	_, err = svc.SelectDate(ctx, id, &request.SelectDateRequest{Date: "30"})
	assert.ErrorIs(t, err, booking.ErrNotFound)

	_, err = svc.ReportProgress(ctx, id, &request.ReportProgressRequest{})
	assert.ErrorIs(t, err, booking.ErrValidation)
}

func TestBookingService_StrictCommitRejectsEmptySelection(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, true)
	id := startSession(t, svc)

	_, err := svc.CommitBooking(ctx, id)
	assert.ErrorIs(t, err, booking.ErrValidation)
}

func TestBookingService_LenientCommit(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, false)
	id := startSession(t, svc)

	b, err := svc.CommitBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", b.MachineNumber)
	assert.Equal(t, 5, b.Price)
	assert.Equal(t, "Dec 15, Monday", b.DateLabel)
}

func TestBookingService_UnknownSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, true)

	_, err := svc.GetSession(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NotErrorIs(t, err, booking.ErrNotFound)

	_, err = svc.CommitBooking(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBookingService_TrackAndProgress(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, true)
	id := startSession(t, svc)

	track, err := svc.TrackBooking(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, track.CurrentBooking)
	assert.Empty(t, track.Steps)
	assert.Len(t, track.History, 1)

	_, err = svc.SelectMachine(ctx, id, &request.SelectMachineRequest{MachineType: "dryer"})
	require.NoError(t, err)
	_, err = svc.SelectTime(ctx, id, &request.SelectTimeRequest{Time: "2:00 PM"})
	require.NoError(t, err)
	_, err = svc.CommitBooking(ctx, id)
	require.NoError(t, err)

	track, err = svc.TrackBooking(ctx, id)
	require.NoError(t, err)
	require.Len(t, track.Steps, 3)
	assert.Equal(t, "Drying", track.Steps[1].Name)
	assert.True(t, track.Steps[1].Done)
	assert.False(t, track.Steps[2].Done)

	b, err := svc.ReportProgress(ctx, id, &request.ReportProgressRequest{Progress: intPtr(100)})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, b.Status)

	track, err = svc.TrackBooking(ctx, id)
	require.NoError(t, err)
	assert.True(t, track.Steps[2].Done)

	_, err = svc.ReportProgress(ctx, id, &request.ReportProgressRequest{Progress: intPtr(100)})
	assert.ErrorIs(t, err, booking.ErrInvalidTransition)
}

func TestBookingService_ResetSelections(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, true)
	id := startSession(t, svc)

	_, err := svc.SelectMachine(ctx, id, &request.SelectMachineRequest{MachineType: "washer"})
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, id, &request.SelectDateRequest{Date: "18"})
	require.NoError(t, err)

	st, err := svc.ResetSelections(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, st.SelectedMachine)
	assert.Equal(t, booking.DefaultDate, st.SelectedDate)
}

func TestBookingService_LenientDatesFromConfig(t *testing.T) {
	ctx := context.Background()
	repo, err := repository.NewRepository(8, zap.NewNop())
	require.NoError(t, err)
	svc := NewBookingService(repo, utils.SessionConfig{CacheSize: 8, StrictCommit: true, StrictDates: false}, zap.NewNop())
	id := startSession(t, svc)

	st, err := svc.SelectDate(ctx, id, &request.SelectDateRequest{Date: "30"})
	require.NoError(t, err)
	assert.Equal(t, "30", st.SelectedDate)

	quote, err := svc.GetQuote(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, booking.FallbackDateLabel, quote.DateLabel)
}

func TestBookingService_EndSession(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, true)
	id := startSession(t, svc)

	require.NoError(t, svc.EndSession(ctx, id))

	_, err := svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	err = svc.EndSession(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestBookingService_PaymentCodesMatchExactly(t *testing.T) {
	ctx := context.Background()
	svc := newTestBookingService(t, true)
	id := startSession(t, svc)

	_, err := svc.SelectPayment(ctx, id, &request.SelectPaymentRequest{PaymentMethod: "CARD"})
	assert.ErrorIs(t, err, booking.ErrValidation)

	st, err := svc.SelectPayment(ctx, id, &request.SelectPaymentRequest{PaymentMethod: "fpx"})
	require.NoError(t, err)
	assert.Equal(t, "internet-banking", st.SelectedPayment)
}
