package adaptor

import (
	"net/http"

	"laundry-booking/internal/data/entity"
	"laundry-booking/internal/dto/request"
	"laundry-booking/internal/usecase"
	"laundry-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetMachines handles GET /api/machines
func (h *CatalogHandler) GetMachines(w http.ResponseWriter, r *http.Request) {
	// Filter by type (optional)
	var typeFilter *entity.MachineType
	if t := r.URL.Query().Get("type"); t != "" {
		mt := entity.MachineType(t)
		typeFilter = &mt
	}

	machines, err := h.service.GetMachines(r.Context(), typeFilter)
	if err != nil {
		handleServiceError(h.log, w, err, "get machines")
		return
	}

	utils.ResponseSuccess(w, "success", machines)
}

// GetDates handles GET /api/dates
func (h *CatalogHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.service.GetDates(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get dates")
		return
	}

	utils.ResponseSuccess(w, "success", dates)
}

// GetTimeSlots handles GET /api/time-slots
func (h *CatalogHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.GetTimeSlots(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get time slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// GetPaymentMethods handles GET /api/payment-methods
func (h *CatalogHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.service.GetPaymentMethods(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get payment methods")
		return
	}

	utils.ResponseSuccess(w, "success", methods)
}

// GetAlerts handles GET /api/alerts
func (h *CatalogHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	alerts, err := h.service.GetAlerts(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get alerts")
		return
	}

	utils.ResponseSuccess(w, "success", alerts)
}

// GetProfile handles GET /api/profile
func (h *CatalogHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.GetProfile(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// GetRewards handles GET /api/rewards
func (h *CatalogHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	rewards, err := h.service.GetRewards(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get rewards")
		return
	}

	utils.ResponseSuccess(w, "success", rewards)
}
