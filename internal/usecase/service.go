package usecase

import (
	"laundry-booking/internal/data/repository"
	"laundry-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Catalog CatalogService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, config.Session, log),
		Catalog: NewCatalogService(repo, log),
	}
}
