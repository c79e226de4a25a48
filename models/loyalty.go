package models

// LoyaltyTiers is the tier ladder, lowest first. Customers earn one point
// per currency unit spent on completed orders.
var LoyaltyTiers = []LoyaltyTier{
	{Name: "Bronze", MinPoints: 0},
	{Name: "Silver", MinPoints: 500},
	{Name: "Gold", MinPoints: 1500},
	{Name: "Platinum", MinPoints: 3000},
}

type LoyaltyTier struct {
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
}

type LoyaltyStatus struct {
	Points           int    `json:"points"`
	Tier             string `json:"tier"`
	NextTier         string `json:"next_tier,omitempty"`
	PointsToNextTier int    `json:"points_to_next_tier,omitempty"`
}
