package wire

import (
	"laundry-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/machines?type=washer - Machine board, optionally filtered
	r.Get("/api/machines", catalogHandler.GetMachines)

	// GET /api/dates, /api/time-slots - Selectable schedule
	r.Get("/api/dates", catalogHandler.GetDates)
	r.Get("/api/time-slots", catalogHandler.GetTimeSlots)

	// GET /api/payment-methods - Accepted payment methods
	r.Get("/api/payment-methods", catalogHandler.GetPaymentMethods)

	// GET /api/alerts?page=1&per_page=10 - Notifications feed
	r.Get("/api/alerts", catalogHandler.GetAlerts)

	// GET /api/profile, /api/rewards - Member profile and reward catalog
	r.Get("/api/profile", catalogHandler.GetProfile)
	r.Get("/api/rewards", catalogHandler.GetRewards)
}
