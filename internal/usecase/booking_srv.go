package usecase

import (
	"context"
	"errors"
	"fmt"

	"laundry-booking/internal/booking"
	"laundry-booking/internal/data/entity"
	"laundry-booking/internal/data/repository"
	"laundry-booking/internal/dto/request"
	"laundry-booking/internal/dto/response"
	"laundry-booking/internal/metrics"
	"laundry-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	StartSession(ctx context.Context) (*response.SessionCreatedResponse, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*response.SessionResponse, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) error

	// Wizard steps
	SelectMachine(ctx context.Context, sessionID uuid.UUID, req *request.SelectMachineRequest) (*response.SessionResponse, error)
	SelectDate(ctx context.Context, sessionID uuid.UUID, req *request.SelectDateRequest) (*response.SessionResponse, error)
	SelectTime(ctx context.Context, sessionID uuid.UUID, req *request.SelectTimeRequest) (*response.SessionResponse, error)
	SelectPayment(ctx context.Context, sessionID uuid.UUID, req *request.SelectPaymentRequest) (*response.SessionResponse, error)
	ResetSelections(ctx context.Context, sessionID uuid.UUID) (*response.SessionResponse, error)

	GetQuote(ctx context.Context, sessionID uuid.UUID) (*response.QuoteResponse, error)
	CommitBooking(ctx context.Context, sessionID uuid.UUID) (*response.BookingResponse, error)

	// Tracking
	TrackBooking(ctx context.Context, sessionID uuid.UUID) (*response.TrackResponse, error)
	ReportProgress(ctx context.Context, sessionID uuid.UUID, req *request.ReportProgressRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config utils.SessionConfig
	log    *zap.Logger
}

func NewBookingService(repo *repository.Repository, config utils.SessionConfig, log *zap.Logger) BookingService {
	return &bookingService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) StartSession(ctx context.Context) (*response.SessionCreatedResponse, error) {
	var opts []booking.Option
	if !s.config.StrictCommit {
		opts = append(opts, booking.WithLenientCommit())
	}
	if !s.config.StrictDates {
		opts = append(opts, booking.WithLenientDates())
	}

	id := utils.GenerateSessionToken()
	if err := s.repo.Session.Create(ctx, id, booking.NewSession(opts...)); err != nil {
		s.log.Error("Failed to create session", zap.Error(err))
		return nil, fmt.Errorf("start session: %w", err)
	}

	s.log.Info("Session started",
		zap.String("session_id", id.String()),
		zap.Bool("strict_commit", s.config.StrictCommit),
		zap.Bool("strict_dates", s.config.StrictDates),
	)

	return &response.SessionCreatedResponse{SessionID: id.String()}, nil
}

func (s *bookingService) GetSession(ctx context.Context, sessionID uuid.UUID) (*response.SessionResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return response.SessionToResponse(sessionID.String(), session.Snapshot()), nil
}

// EndSession drops the session and everything booked in it.
func (s *bookingService) EndSession(ctx context.Context, sessionID uuid.UUID) error {
	if _, err := s.findSession(ctx, sessionID); err != nil {
		return err
	}

	if err := s.repo.Session.Delete(ctx, sessionID); err != nil {
		s.log.Warn("Session already gone", zap.Error(err), zap.String("session_id", sessionID.String()))
		return fmt.Errorf("end session: %w", ErrSessionNotFound)
	}

	s.log.Info("Session ended", zap.String("session_id", sessionID.String()))
	return nil
}

func (s *bookingService) SelectMachine(ctx context.Context, sessionID uuid.UUID, req *request.SelectMachineRequest) (*response.SessionResponse, error) {
	if err := s.validate(req, "select machine"); err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, "select machine", func(session *booking.Session) error {
		return session.SelectMachine(entity.MachineType(req.MachineType))
	})
}

func (s *bookingService) SelectDate(ctx context.Context, sessionID uuid.UUID, req *request.SelectDateRequest) (*response.SessionResponse, error) {
	if err := s.validate(req, "select date"); err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, "select date", func(session *booking.Session) error {
		return session.SelectDate(req.Date)
	})
}

func (s *bookingService) SelectTime(ctx context.Context, sessionID uuid.UUID, req *request.SelectTimeRequest) (*response.SessionResponse, error) {
	if err := s.validate(req, "select time"); err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, "select time", func(session *booking.Session) error {
		return session.SelectTime(entity.TimeSlot(req.Time))
	})
}

func (s *bookingService) SelectPayment(ctx context.Context, sessionID uuid.UUID, req *request.SelectPaymentRequest) (*response.SessionResponse, error) {
	if err := s.validate(req, "select payment"); err != nil {
		return nil, err
	}

	return s.mutate(ctx, sessionID, "select payment", func(session *booking.Session) error {
		return session.SelectPayment(entity.ParsePaymentMethod(req.PaymentMethod))
	})
}

func (s *bookingService) ResetSelections(ctx context.Context, sessionID uuid.UUID) (*response.SessionResponse, error) {
	return s.mutate(ctx, sessionID, "reset selections", func(session *booking.Session) error {
		session.Reset()
		return nil
	})
}

func (s *bookingService) GetQuote(ctx context.Context, sessionID uuid.UUID) (*response.QuoteResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return response.QuoteToResponse(session.Quote()), nil
}

func (s *bookingService) CommitBooking(ctx context.Context, sessionID uuid.UUID) (*response.BookingResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	b, err := session.Commit()
	if err != nil {
		reason := "validation"
		if errors.Is(err, booking.ErrOrderIDExhausted) {
			reason = "order_ids_exhausted"
		}
		metrics.RecordCommitRejected(reason)

		s.log.Warn("Commit rejected",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("commit booking: %w", err)
	}

	metrics.RecordBookingCommitted(string(b.MachineType), string(b.PaymentMethod))

	s.log.Info("Booking committed",
		zap.String("session_id", sessionID.String()),
		zap.String("order_id", b.OrderID),
		zap.String("machine_number", b.MachineNumber),
		zap.String("date_label", b.DateLabel),
		zap.String("time", string(b.Time)),
		zap.Int("price", b.Price),
	)

	return response.BookingToResponse(b), nil
}

func (s *bookingService) TrackBooking(ctx context.Context, sessionID uuid.UUID) (*response.TrackResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	st := session.Snapshot()
	return &response.TrackResponse{
		CurrentBooking: response.BookingToResponse(st.CurrentBooking),
		Steps:          trackSteps(st.CurrentBooking),
		History:        response.BookingsToResponse(st.History),
	}, nil
}

func (s *bookingService) ReportProgress(ctx context.Context, sessionID uuid.UUID, req *request.ReportProgressRequest) (*response.BookingResponse, error) {
	if err := s.validate(req, "report progress"); err != nil {
		return nil, err
	}

	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	b, err := session.ReportProgress(*req.Progress)
	if err != nil {
		s.log.Warn("Progress report rejected",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.Int("progress", *req.Progress),
		)
		return nil, fmt.Errorf("report progress: %w", err)
	}

	metrics.RecordProgressReport(string(b.Status))

	s.log.Info("Progress reported",
		zap.String("session_id", sessionID.String()),
		zap.String("order_id", b.OrderID),
		zap.Int("progress", b.Progress),
		zap.String("status", string(b.Status)),
	)

	return response.BookingToResponse(b), nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findSession(ctx context.Context, sessionID uuid.UUID) (*booking.Session, error) {
	session, err := s.repo.Session.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("find session %s: %w", sessionID, err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionNotFound)
	}
	return session, nil
}

func (s *bookingService) validate(req any, operation string) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn(operation+" validation failed", zap.Any("errors", errs))
		return &ValidationError{Fields: errs}
	}
	return nil
}

func (s *bookingService) mutate(ctx context.Context, sessionID uuid.UUID, operation string, fn func(*booking.Session) error) (*response.SessionResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		s.log.Warn(operation+" failed",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	st := session.Snapshot()
	s.log.Debug(operation,
		zap.String("session_id", sessionID.String()),
		zap.String("machine", string(st.SelectedMachine)),
		zap.String("date", st.SelectedDate),
		zap.String("time", string(st.SelectedTime)),
		zap.String("payment", string(st.SelectedPayment)),
	)
	return response.SessionToResponse(sessionID.String(), st), nil
}

func trackSteps(b *entity.Booking) []response.TrackStep {
	if b == nil {
		return nil
	}

	cycle := "Washing"
	if b.MachineType == entity.MachineTypeDryer {
		cycle = "Drying"
	}

	return []response.TrackStep{
		{Name: "Booked", Done: true},
		{Name: cycle, Done: b.Status != entity.BookingStatusPending},
		{Name: "Ready for pickup", Done: b.Status == entity.BookingStatusCompleted},
	}
}
