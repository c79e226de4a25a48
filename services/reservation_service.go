package services

import (
	"sync"
	"time"

	"table-tap/models"

	"github.com/google/uuid"
)

// ReservationService backs the reservation form and the admin view of
// upcoming bookings. Reservations start pending; staff confirm or cancel.
type ReservationService struct {
	mu           sync.RWMutex
	reservations map[string]models.Reservation
	order        []string
}

func NewReservationService() *ReservationService {
	return &ReservationService{reservations: make(map[string]models.Reservation)}
}

func (s *ReservationService) Create(userID int, customerName string, req models.CreateReservationRequest) models.Reservation {
	reservation := models.Reservation{
		ID:              uuid.New().String(),
		UserID:          userID,
		CustomerName:    customerName,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Status:          models.ReservationPending,
		CreatedAt:       time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[reservation.ID] = reservation
	s.order = append(s.order, reservation.ID)
	return reservation
}

func (s *ReservationService) Get(id string) (models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return models.Reservation{}, ErrReservationNotFound
	}
	return reservation, nil
}

func (s *ReservationService) ListByUser(userID int) []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []models.Reservation{}
	for _, id := range s.order {
		if reservation := s.reservations[id]; reservation.UserID == userID {
			result = append(result, reservation)
		}
	}
	return result
}

func (s *ReservationService) List() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Reservation, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.reservations[id])
	}
	return result
}

func (s *ReservationService) UpdateStatus(id string, status models.ReservationStatus) (models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservation, ok := s.reservations[id]
	if !ok {
		return models.Reservation{}, ErrReservationNotFound
	}

	reservation.Status = status
	s.reservations[id] = reservation
	return reservation, nil
}
