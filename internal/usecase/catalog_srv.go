package usecase

import (
	"context"
	"fmt"

	"laundry-booking/internal/booking"
	"laundry-booking/internal/data/entity"
	"laundry-booking/internal/data/repository"
	"laundry-booking/internal/dto/request"
	"laundry-booking/internal/dto/response"

	"go.uber.org/zap"
)

// RewardMilestone is the step between reward milestones shown on the profile.
const RewardMilestone = 50

type CatalogService interface {
	GetMachines(ctx context.Context, machineType *entity.MachineType) ([]response.MachineResponse, error)
	GetDates(ctx context.Context) ([]response.DateOptionResponse, error)
	GetTimeSlots(ctx context.Context) ([]string, error)
	GetPaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error)
	GetAlerts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AlertResponse], error)
	GetProfile(ctx context.Context) (*response.ProfileResponse, error)
	GetRewards(ctx context.Context) (*response.RewardsResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetMachines(ctx context.Context, machineType *entity.MachineType) ([]response.MachineResponse, error) {
	var (
		machines []entity.Machine
		err      error
	)
	if machineType != nil {
		if !machineType.Valid() {
			return nil, fmt.Errorf("machine type %q: %w", *machineType, booking.ErrValidation)
		}
		machines, err = s.repo.Machine.FindByType(ctx, *machineType)
	} else {
		machines, err = s.repo.Machine.FindAll(ctx)
	}
	if err != nil {
		s.log.Error("Failed to get machines", zap.Error(err))
		return nil, fmt.Errorf("get machines: %w", err)
	}

	out := make([]response.MachineResponse, len(machines))
	for i, m := range machines {
		out[i] = response.MachineToResponse(m)
	}
	return out, nil
}

func (s *catalogService) GetDates(ctx context.Context) ([]response.DateOptionResponse, error) {
	dates, err := s.repo.Schedule.FindAllDates(ctx)
	if err != nil {
		s.log.Error("Failed to get dates", zap.Error(err))
		return nil, fmt.Errorf("get dates: %w", err)
	}

	out := make([]response.DateOptionResponse, len(dates))
	for i, d := range dates {
		out[i] = response.DateOptionToResponse(d)
	}
	return out, nil
}

func (s *catalogService) GetTimeSlots(ctx context.Context) ([]string, error) {
	slots, err := s.repo.Schedule.FindAllTimeSlots(ctx)
	if err != nil {
		s.log.Error("Failed to get time slots", zap.Error(err))
		return nil, fmt.Errorf("get time slots: %w", err)
	}

	out := make([]string, len(slots))
	for i, slot := range slots {
		out[i] = string(slot)
	}
	return out, nil
}

func (s *catalogService) GetPaymentMethods(ctx context.Context) ([]response.PaymentMethodResponse, error) {
	methods, err := s.repo.PaymentMethod.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get payment methods", zap.Error(err))
		return nil, fmt.Errorf("get payment methods: %w", err)
	}

	out := make([]response.PaymentMethodResponse, len(methods))
	for i, pm := range methods {
		out[i] = response.PaymentMethodToResponse(pm)
	}
	return out, nil
}

func (s *catalogService) GetAlerts(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.AlertResponse], error) {
	alerts, err := s.repo.Alert.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get alerts", zap.Error(err))
		return nil, fmt.Errorf("get alerts: %w", err)
	}

	total, err := s.repo.Alert.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count alerts", zap.Error(err))
		return nil, fmt.Errorf("count alerts: %w", err)
	}

	out := make([]response.AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = response.AlertToResponse(a)
	}

	return response.NewPaginatedResponse(out, req.Page, req.Limit(), total), nil
}

func (s *catalogService) GetProfile(ctx context.Context) (*response.ProfileResponse, error) {
	p, err := s.findProfile(ctx)
	if err != nil {
		return nil, err
	}

	return &response.ProfileResponse{
		Name:               p.Name,
		Tier:               p.Tier,
		ReferralCode:       p.ReferralCode,
		Email:              p.Email,
		Phone:              p.Phone,
		MemberSince:        p.MemberSince,
		Points:             p.Points,
		PointsToNextReward: PointsToNextReward(p.Points),
		Stats: response.ProfileStats{
			TotalWashes:  p.Stats.TotalWashes,
			TotalDrys:    p.Stats.TotalDrys,
			FavoriteTime: p.Stats.FavoriteTime,
		},
	}, nil
}

func (s *catalogService) GetRewards(ctx context.Context) (*response.RewardsResponse, error) {
	p, err := s.findProfile(ctx)
	if err != nil {
		return nil, err
	}

	rewards, err := s.repo.Profile.FindRewards(ctx)
	if err != nil {
		s.log.Error("Failed to get rewards", zap.Error(err))
		return nil, fmt.Errorf("get rewards: %w", err)
	}

	rules, err := s.repo.Profile.FindEarningRules(ctx)
	if err != nil {
		s.log.Error("Failed to get earning rules", zap.Error(err))
		return nil, fmt.Errorf("get earning rules: %w", err)
	}

	resp := &response.RewardsResponse{
		Points:  p.Points,
		Rewards: make([]response.RewardResponse, len(rewards)),
		Earning: make([]response.EarningRuleResponse, len(rules)),
	}
	for i, r := range rewards {
		resp.Rewards[i] = response.RewardResponse{
			Name:        r.Name,
			Description: r.Description,
			Cost:        r.Cost,
			Redeemable:  p.Points >= r.Cost,
		}
	}
	for i, r := range rules {
		resp.Earning[i] = response.EarningRuleResponse{
			Action: r.Action,
			Points: r.Points,
		}
	}
	return resp, nil
}

// PointsToNextReward counts the points left to the next RewardMilestone.
func PointsToNextReward(points int) int {
	if points < 0 {
		points = 0
	}
	return (points/RewardMilestone+1)*RewardMilestone - points
}

// findProfile keeps repository failures distinct from a missing profile.
func (s *catalogService) findProfile(ctx context.Context) (*entity.Profile, error) {
	p, err := s.repo.Profile.FindProfile(ctx)
	if err != nil {
		s.log.Error("Failed to get profile", zap.Error(err))
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("profile: %w", booking.ErrNotFound)
	}
	return p, nil
}
