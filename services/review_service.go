package services

import (
	"math"
	"sync"
	"time"

	"table-tap/models"

	"github.com/google/uuid"
)

// ReviewService keeps the restaurant's review feed, newest first, and the
// aggregate rating derived from it.
type ReviewService struct {
	mu      sync.RWMutex
	reviews []models.Review
}

func NewReviewService() *ReviewService {
	return &ReviewService{}
}

// Add prepends the review so the feed stays newest first.
func (s *ReviewService) Add(userID int, username string, req models.CreateReviewRequest) models.Review {
	review := models.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		Username:  username,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = append([]models.Review{review}, s.reviews...)
	return review
}

func (s *ReviewService) List() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Review, len(s.reviews))
	copy(result, s.reviews)
	return result
}

// Rating averages all review scores, rounded to one decimal place.
func (s *ReviewService) Rating() models.RestaurantRating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.reviews) == 0 {
		return models.RestaurantRating{}
	}

	sum := 0
	for _, review := range s.reviews {
		sum += review.Rating
	}
	average := float64(sum) / float64(len(s.reviews))
	return models.RestaurantRating{
		AverageRating: math.Round(average*10) / 10,
		TotalReviews:  len(s.reviews),
	}
}
