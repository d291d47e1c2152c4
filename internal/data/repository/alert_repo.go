package repository

import (
	"context"

	"laundry-booking/internal/data/entity"
	"laundry-booking/pkg/utils"

	"go.uber.org/zap"
)

type AlertRepository interface {
	FindAll(ctx context.Context, limit, offset int) ([]entity.Alert, error)
	Count(ctx context.Context) (int64, error)
}

// newest first
var alertFeed = []entity.Alert{
	{
		Kind:    entity.AlertKindLaundryComplete,
		Title:   "Laundry Complete!",
		Message: "Your wash cycle in Washer W2 has finished. Please collect your laundry.",
		Age:     "1 min ago",
	},
	{
		Kind:    entity.AlertKindRewardUnlocked,
		Title:   "Reward Unlocked!",
		Message: "You've earned 50 points! Redeem for a free wash cycle.",
		Age:     "1 hour ago",
	},
	{
		Kind:    entity.AlertKindBookingReminder,
		Title:   "Booking Reminder",
		Message: "Your scheduled wash is starting in 15 minutes at Washer W3.",
		Age:     "2 hours ago",
	},
	{
		Kind:    entity.AlertKindMachineAvailable,
		Title:   "Machine Available",
		Message: "Dryer D3 is now available. Book before it's taken!",
		Age:     "5 hours ago",
	},
	{
		Kind:    entity.AlertKindPaymentConfirmed,
		Title:   "Payment Confirmed",
		Message: "Your payment of RM5.00 has been processed successfully.",
		Age:     "1 day ago",
	},
}

type alertRepository struct {
	log *zap.Logger
}

func NewAlertRepository(log *zap.Logger) AlertRepository {
	return &alertRepository{
		log: log.With(zap.String("repository", "alert")),
	}
}

func (r *alertRepository) FindAll(ctx context.Context, limit, offset int) ([]entity.Alert, error) {
	start, end := utils.PageBounds(len(alertFeed), offset, limit)
	out := make([]entity.Alert, end-start)
	copy(out, alertFeed[start:end])
	return out, nil
}

func (r *alertRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(alertFeed)), nil
}
