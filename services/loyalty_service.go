package services

import (
	"math"

	"table-tap/models"
)

// LoyaltyService derives a customer's loyalty standing from their completed
// orders: one point per currency unit spent, tiers per models.LoyaltyTiers.
type LoyaltyService struct {
	repo OrderRepository
}

func NewLoyaltyService(repo OrderRepository) *LoyaltyService {
	return &LoyaltyService{repo: repo}
}

func (s *LoyaltyService) Status(userID int) models.LoyaltyStatus {
	spent := 0.0
	for _, order := range s.repo.ListByUser(userID) {
		if order.Status == models.StatusCompleted {
			spent += order.Total
		}
	}
	points := int(math.Floor(spent))

	status := models.LoyaltyStatus{Points: points, Tier: models.LoyaltyTiers[0].Name}
	for i, tier := range models.LoyaltyTiers {
		if points >= tier.MinPoints {
			status.Tier = tier.Name
			if i+1 < len(models.LoyaltyTiers) {
				next := models.LoyaltyTiers[i+1]
				status.NextTier = next.Name
				status.PointsToNextTier = next.MinPoints - points
			} else {
				status.NextTier = ""
				status.PointsToNextTier = 0
			}
		}
	}
	return status
}
