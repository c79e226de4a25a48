package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"table-tap/models"
	"table-tap/utils"
)

// UserService is the in-memory user store behind both customer auth and the
// admin staff directory. Seeded with one admin account so the admin surface
// is reachable on a fresh start.
type UserService struct {
	mu     sync.RWMutex
	users  map[int]models.User
	nextID int
}

func NewUserService() *UserService {
	s := &UserService{users: make(map[int]models.User), nextID: 1}
	s.seedAdmin()
	return s
}

func (s *UserService) seedAdmin() {
	hash, err := utils.HashPassword("admin123")
	if err != nil {
		return
	}
	now := time.Now()
	s.users[s.nextID] = models.User{
		ID:        s.nextID,
		Email:     "admin@tabletap.local",
		Password:  hash,
		Role:      "admin",
		FirstName: "Admin",
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.nextID++
}

func (s *UserService) FindByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return user, true
		}
	}
	return models.User{}, false
}

func (s *UserService) FindByID(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) Create(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return models.User{}, ErrEmailTaken
		}
	}

	now := time.Now()
	user.ID = s.nextID
	user.CreatedAt = now
	user.UpdatedAt = now
	s.users[user.ID] = user
	s.nextID++
	return user, nil
}

func (s *UserService) Update(id int, req models.UpdateUserRequest) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	if req.Email != "" && !strings.EqualFold(req.Email, user.Email) {
		for _, existing := range s.users {
			if strings.EqualFold(existing.Email, req.Email) {
				return models.User{}, ErrEmailTaken
			}
		}
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.Position != "" {
		user.Position = req.Position
	}
	if req.HireDate != "" {
		user.HireDate = req.HireDate
	}
	user.UpdatedAt = time.Now()

	s.users[id] = user
	return user, nil
}

func (s *UserService) UpdateProfile(id int, req models.UpdateProfileRequest) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	user.UpdatedAt = time.Now()

	s.users[id] = user
	return user, nil
}

func (s *UserService) UpdatePassword(id int, hashed string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.Password = hashed
	user.UpdatedAt = time.Now()
	s.users[id] = user
	return nil
}

func (s *UserService) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *UserService) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
