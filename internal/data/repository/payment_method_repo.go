package repository

import (
	"context"

	"laundry-booking/internal/data/entity"

	"go.uber.org/zap"
)

type PaymentMethodRepository interface {
	FindAll(ctx context.Context) ([]entity.PaymentMethodInfo, error)
	FindByCode(ctx context.Context, code entity.PaymentMethod) (*entity.PaymentMethodInfo, error)
}

var paymentMethods = []entity.PaymentMethodInfo{
	{Code: entity.PaymentMethodInternetBanking, Name: "Online Banking (FPX)", Alias: "fpx"},
	{Code: entity.PaymentMethodEWallet, Name: "Touch 'n Go eWallet", Alias: "tng"},
	{Code: entity.PaymentMethodCard, Name: "Credit / Debit Card"},
}

type paymentMethodRepository struct {
	log *zap.Logger
}

func NewPaymentMethodRepository(log *zap.Logger) PaymentMethodRepository {
	return &paymentMethodRepository{
		log: log.With(zap.String("repository", "payment_method")),
	}
}

func (r *paymentMethodRepository) FindAll(ctx context.Context) ([]entity.PaymentMethodInfo, error) {
	out := make([]entity.PaymentMethodInfo, len(paymentMethods))
	copy(out, paymentMethods)
	return out, nil
}

func (r *paymentMethodRepository) FindByCode(ctx context.Context, code entity.PaymentMethod) (*entity.PaymentMethodInfo, error) {
	for _, pm := range paymentMethods {
		if pm.Code == code {
			found := pm
			return &found, nil
		}
	}
	return nil, nil
}
