package adaptor

import (
	"net/http"

	"laundry-booking/internal/dto/request"
	"laundry-booking/internal/usecase"
	"laundry-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// StartSession handles POST /api/sessions
func (h *BookingHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	created, err := h.service.StartSession(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "start session")
		return
	}

	utils.ResponseCreated(w, "success", created)
}

// GetSession handles GET /api/session
func (h *BookingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.GetSession(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// EndSession handles DELETE /api/session
func (h *BookingHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.EndSession(r.Context(), sessionID); err != nil {
		handleServiceError(h.log, w, err, "end session")
		return
	}

	utils.ResponseSuccess(w, "Session ended", nil)
}

// SelectMachine handles PUT /api/session/machine
func (h *BookingHandler) SelectMachine(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req request.SelectMachineRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.SelectMachine(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "select machine")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SelectDate handles PUT /api/session/date
func (h *BookingHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req request.SelectDateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.SelectDate(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "select date")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SelectTime handles PUT /api/session/time
func (h *BookingHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req request.SelectTimeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.SelectTime(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "select time")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SelectPayment handles PUT /api/session/payment
func (h *BookingHandler) SelectPayment(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req request.SelectPaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.SelectPayment(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "select payment")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// ResetSelections handles POST /api/session/reset
func (h *BookingHandler) ResetSelections(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.ResetSelections(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "reset selections")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// GetQuote handles GET /api/session/quote
func (h *BookingHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	quote, err := h.service.GetQuote(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "get quote")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// CommitBooking handles POST /api/session/commit
func (h *BookingHandler) CommitBooking(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	b, err := h.service.CommitBooking(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "commit booking")
		return
	}

	utils.ResponseCreated(w, "success", b)
}

// TrackBooking handles GET /api/session/track
func (h *BookingHandler) TrackBooking(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	track, err := h.service.TrackBooking(r.Context(), sessionID)
	if err != nil {
		handleServiceError(h.log, w, err, "track booking")
		return
	}

	utils.ResponseSuccess(w, "success", track)
}

// ReportProgress handles POST /api/session/progress
func (h *BookingHandler) ReportProgress(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req request.ReportProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b, err := h.service.ReportProgress(r.Context(), sessionID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "report progress")
		return
	}

	utils.ResponseSuccess(w, "success", b)
}

func (h *BookingHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Session required")
		return uuid.Nil, false
	}
	return sessionID, true
}
