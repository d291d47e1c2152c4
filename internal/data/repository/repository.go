package repository

import (
	"go.uber.org/zap"
)

type Repository struct {
	Schedule      ScheduleRepository
	Machine       MachineRepository
	PaymentMethod PaymentMethodRepository
	Alert         AlertRepository
	Profile       ProfileRepository
	Session       SessionRepository
}

func NewRepository(sessionCacheSize int, log *zap.Logger) (*Repository, error) {
	sessions, err := NewSessionRepository(sessionCacheSize, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		Schedule:      NewScheduleRepository(log),
		Machine:       NewMachineRepository(log),
		PaymentMethod: NewPaymentMethodRepository(log),
		Alert:         NewAlertRepository(log),
		Profile:       NewProfileRepository(log),
		Session:       sessions,
	}, nil
}
