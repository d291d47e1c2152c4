package repository

import (
	"context"

	"laundry-booking/internal/data/entity"

	"go.uber.org/zap"
)

type ProfileRepository interface {
	FindProfile(ctx context.Context) (*entity.Profile, error)
	FindRewards(ctx context.Context) ([]entity.Reward, error)
	FindEarningRules(ctx context.Context) ([]entity.EarningRule, error)
}

var demoProfile = entity.Profile{
	Name:         "Name",
	Tier:         "Premium Member",
	ReferralCode: "XXX2235",
	Email:        "xxxxx@gmail.com",
	Phone:        "(+60)12-3456789",
	MemberSince:  "Jan 2024",
	Points:       125,
	Stats: entity.ProfileStats{
		TotalWashes:  24,
		TotalDrys:    18,
		FavoriteTime: "10:00AM",
	},
}

var rewardCatalog = []entity.Reward{
	{Name: "Free Wash", Description: "Get one free wash cycle", Cost: 100},
	{Name: "50% off", Description: "Save 50% on your next booking", Cost: 130},
}

var earningRules = []entity.EarningRule{
	{Action: "Complete a wash", Points: 10},
	{Action: "Complete a dry", Points: 8},
	{Action: "Refer a friend", Points: 50},
	{Action: "Weekly streak", Points: 20},
}

type profileRepository struct {
	log *zap.Logger
}

func NewProfileRepository(log *zap.Logger) ProfileRepository {
	return &profileRepository{
		log: log.With(zap.String("repository", "profile")),
	}
}

func (r *profileRepository) FindProfile(ctx context.Context) (*entity.Profile, error) {
	p := demoProfile
	return &p, nil
}

func (r *profileRepository) FindRewards(ctx context.Context) ([]entity.Reward, error) {
	out := make([]entity.Reward, len(rewardCatalog))
	copy(out, rewardCatalog)
	return out, nil
}

func (r *profileRepository) FindEarningRules(ctx context.Context) ([]entity.EarningRule, error) {
	out := make([]entity.EarningRule, len(earningRules))
	copy(out, earningRules)
	return out, nil
}
