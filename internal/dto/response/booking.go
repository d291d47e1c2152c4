package response

import (
	"time"

	"laundry-booking/internal/booking"
	"laundry-booking/internal/data/entity"
)

type SessionCreatedResponse struct {
	SessionID string `json:"session_id"`
}

type SessionResponse struct {
	SessionID       string             `json:"session_id"`
	SelectedMachine string             `json:"selected_machine,omitempty"`
	SelectedDate    string             `json:"selected_date"`
	SelectedTime    string             `json:"selected_time,omitempty"`
	SelectedPayment string             `json:"selected_payment,omitempty"`
	CurrentBooking  *BookingResponse   `json:"current_booking,omitempty"`
	History         []*BookingResponse `json:"history"`
}

type BookingResponse struct {
	OrderID       string               `json:"order_id"`
	MachineType   string               `json:"machine_type,omitempty"`
	MachineNumber string               `json:"machine_number"`
	Date          string               `json:"date"`
	DateLabel     string               `json:"date_label"`
	Time          string               `json:"time,omitempty"`
	Price         int                  `json:"price"`
	PaymentMethod string               `json:"payment_method,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	Progress      int                  `json:"progress"`
	CreatedAt     *time.Time           `json:"created_at,omitempty"`
}

type QuoteResponse struct {
	MachineType   string `json:"machine_type,omitempty"`
	MachineNumber string `json:"machine_number"`
	Price         int    `json:"price"`
	Date          string `json:"date"`
	DateLabel     string `json:"date_label"`
	Time          string `json:"time,omitempty"`
}

type TrackStep struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

type TrackResponse struct {
	CurrentBooking *BookingResponse   `json:"current_booking,omitempty"`
	Steps          []TrackStep        `json:"steps,omitempty"`
	History        []*BookingResponse `json:"history"`
}

// Helper converters
func BookingToResponse(b *entity.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		OrderID:       b.OrderID,
		MachineType:   string(b.MachineType),
		MachineNumber: b.MachineNumber,
		Date:          b.Date,
		DateLabel:     b.DateLabel,
		Time:          string(b.Time),
		Price:         b.Price,
		PaymentMethod: string(b.PaymentMethod),
		Status:        b.Status,
		Progress:      b.Progress,
	}
	if !b.CreatedAt.IsZero() {
		createdAt := b.CreatedAt
		resp.CreatedAt = &createdAt
	}
	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []*BookingResponse {
	out := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}

func SessionToResponse(sessionID string, st booking.State) *SessionResponse {
	return &SessionResponse{
		SessionID:       sessionID,
		SelectedMachine: string(st.SelectedMachine),
		SelectedDate:    st.SelectedDate,
		SelectedTime:    string(st.SelectedTime),
		SelectedPayment: string(st.SelectedPayment),
		CurrentBooking:  BookingToResponse(st.CurrentBooking),
		History:         BookingsToResponse(st.History),
	}
}

func QuoteToResponse(q booking.Quote) *QuoteResponse {
	return &QuoteResponse{
		MachineType:   string(q.MachineType),
		MachineNumber: q.MachineNumber,
		Price:         q.Price,
		Date:          q.Date,
		DateLabel:     q.DateLabel,
		Time:          string(q.Time),
	}
}
