package entity

type Profile struct {
	Name         string
	Tier         string
	ReferralCode string
	Email        string
	Phone        string
	MemberSince  string
	Points       int
	Stats        ProfileStats
}

type ProfileStats struct {
	TotalWashes  int
	TotalDrys    int
	FavoriteTime string
}

type Reward struct {
	Name        string
	Description string
	Cost        int
}

type EarningRule struct {
	Action string
	Points int
}
