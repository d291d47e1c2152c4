package repository

import (
	"context"

	"laundry-booking/internal/booking"
	"laundry-booking/internal/data/entity"

	"go.uber.org/zap"
)

type ScheduleRepository interface {
	FindAllDates(ctx context.Context) ([]entity.DateOption, error)
	FindAllTimeSlots(ctx context.Context) ([]entity.TimeSlot, error)
}

type scheduleRepository struct {
	log *zap.Logger
}

func NewScheduleRepository(log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		log: log.With(zap.String("repository", "schedule")),
	}
}

func (r *scheduleRepository) FindAllDates(ctx context.Context) ([]entity.DateOption, error) {
	return booking.DateOptions(), nil
}

func (r *scheduleRepository) FindAllTimeSlots(ctx context.Context) ([]entity.TimeSlot, error) {
	return booking.TimeSlots(), nil
}
