package wire

import (
	"laundry-booking/internal/adaptor"
	"laundry-booking/internal/data/repository"
	"laundry-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/sessions - Start a booking session, returns its ID
	r.Post("/api/sessions", bookingHandler.StartSession)

	// ==================== SESSION ROUTES (require X-Session-ID) ====================
	r.Route("/api/session", func(r chi.Router) {
		r.Use(middleware.Session(repo.Session, log))

		// GET /api/session - Current selections, booking and history
		r.Get("/", bookingHandler.GetSession)

		// DELETE /api/session - End the flow and drop the session
		r.Delete("/", bookingHandler.EndSession)

		// PUT /api/session/{machine,date,time,payment} - Update one selection
		r.Put("/machine", bookingHandler.SelectMachine)
		r.Put("/date", bookingHandler.SelectDate)
		r.Put("/time", bookingHandler.SelectTime)
		r.Put("/payment", bookingHandler.SelectPayment)

		// GET /api/session/quote - Derived machine number, label and price
		r.Get("/quote", bookingHandler.GetQuote)

		// POST /api/session/commit - Turn selections into the current booking
		r.Post("/commit", bookingHandler.CommitBooking)

		// POST /api/session/reset - Clear selections, keep bookings
		r.Post("/reset", bookingHandler.ResetSelections)

		// GET /api/session/track - Current booking with progress steps
		r.Get("/track", bookingHandler.TrackBooking)

		// POST /api/session/progress - Machine monitor progress report
		r.Post("/progress", bookingHandler.ReportProgress)
	})
}
