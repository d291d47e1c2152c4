package repository

import (
	"context"

	"laundry-booking/internal/data/entity"

	"go.uber.org/zap"
)

type MachineRepository interface {
	FindAll(ctx context.Context) ([]entity.Machine, error)
	FindByType(ctx context.Context, t entity.MachineType) ([]entity.Machine, error)
	FindByNumber(ctx context.Context, number string) (*entity.Machine, error)
}

var machineBoard = []entity.Machine{
	{Number: "Washer W1", Type: entity.MachineTypeWasher, Status: entity.MachineStatusAvailable},
	{Number: "Washer W2", Type: entity.MachineTypeWasher, Status: entity.MachineStatusInUse, MinutesRemaining: 23},
	{Number: "Washer W3", Type: entity.MachineTypeWasher, Status: entity.MachineStatusAvailable},
	{Number: "Dryer D1", Type: entity.MachineTypeDryer, Status: entity.MachineStatusMaintenance},
	{Number: "Dryer D2", Type: entity.MachineTypeDryer, Status: entity.MachineStatusAvailable},
}

type machineRepository struct {
	machines []entity.Machine
	log      *zap.Logger
}

func NewMachineRepository(log *zap.Logger) MachineRepository {
	return &machineRepository{
		machines: machineBoard,
		log:      log.With(zap.String("repository", "machine")),
	}
}

func (r *machineRepository) FindAll(ctx context.Context) ([]entity.Machine, error) {
	out := make([]entity.Machine, len(r.machines))
	copy(out, r.machines)
	return out, nil
}

func (r *machineRepository) FindByType(ctx context.Context, t entity.MachineType) ([]entity.Machine, error) {
	var out []entity.Machine
	for _, m := range r.machines {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out, nil
}

// FindByNumber returns nil, nil when no machine carries the number.
func (r *machineRepository) FindByNumber(ctx context.Context, number string) (*entity.Machine, error) {
	for _, m := range r.machines {
		if m.Number == number {
			found := m
			return &found, nil
		}
	}
	return nil, nil
}
