package response

import (
	"laundry-booking/internal/data/entity"
)

type MachineResponse struct {
	Number           string               `json:"number"`
	Type             entity.MachineType   `json:"type"`
	Status           entity.MachineStatus `json:"status"`
	MinutesRemaining int                  `json:"minutes_remaining,omitempty"`
	Bookable         bool                 `json:"bookable"`
}

type DateOptionResponse struct {
	Day    string `json:"day"`
	Date   string `json:"date"`
	Marker string `json:"marker,omitempty"`
	Label  string `json:"label"`
}

type PaymentMethodResponse struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
}

type AlertResponse struct {
	Kind    entity.AlertKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Age     string           `json:"age"`
}

type ProfileResponse struct {
	Name               string       `json:"name"`
	Tier               string       `json:"tier"`
	ReferralCode       string       `json:"referral_code"`
	Email              string       `json:"email"`
	Phone              string       `json:"phone"`
	MemberSince        string       `json:"member_since"`
	Points             int          `json:"points"`
	PointsToNextReward int          `json:"points_to_next_reward"`
	Stats              ProfileStats `json:"stats"`
}

type ProfileStats struct {
	TotalWashes  int    `json:"total_washes"`
	TotalDrys    int    `json:"total_drys"`
	FavoriteTime string `json:"favorite_time"`
}

type RewardResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
	Redeemable  bool   `json:"redeemable"`
}

type EarningRuleResponse struct {
	Action string `json:"action"`
	Points int    `json:"points"`
}

type RewardsResponse struct {
	Points  int                   `json:"points"`
	Rewards []RewardResponse      `json:"rewards"`
	Earning []EarningRuleResponse `json:"earning"`
}

// Helper converters
func MachineToResponse(m entity.Machine) MachineResponse {
	return MachineResponse{
		Number:           m.Number,
		Type:             m.Type,
		Status:           m.Status,
		MinutesRemaining: m.MinutesRemaining,
		Bookable:         m.Bookable(),
	}
}

func DateOptionToResponse(d entity.DateOption) DateOptionResponse {
	return DateOptionResponse{
		Day:    d.Day,
		Date:   d.Date,
		Marker: d.Marker,
		Label:  d.Label,
	}
}

func PaymentMethodToResponse(pm entity.PaymentMethodInfo) PaymentMethodResponse {
	return PaymentMethodResponse{
		Code:  string(pm.Code),
		Name:  pm.Name,
		Alias: pm.Alias,
	}
}

func AlertToResponse(a entity.Alert) AlertResponse {
	return AlertResponse{
		Kind:    a.Kind,
		Title:   a.Title,
		Message: a.Message,
		Age:     a.Age,
	}
}
