package services

import (
	"table-tap/models"
	"table-tap/utils"
)

type AuthService struct {
	users *UserService
}

func NewAuthService(users *UserService) *AuthService {
	return &AuthService{users: users}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.LoginResponse, error) {
	if _, exists := s.users.FindByEmail(req.Email); exists {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(models.User{
		Email:     req.Email,
		Password:  hashedPassword,
		Role:      "customer",
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) Login(req models.LoginRequest) (*models.LoginResponse, error) {
	user, exists := s.users.FindByEmail(req.Email)
	if !exists {
		return nil, ErrInvalidCredential
	}

	valid, err := utils.VerifyPassword(user.Password, req.Password)
	if err != nil || !valid {
		return nil, ErrInvalidCredential
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: user}, nil
}

func (s *AuthService) GetProfile(userID int) (models.User, error) {
	return s.users.FindByID(userID)
}

func (s *AuthService) UpdateProfile(userID int, req models.UpdateProfileRequest) (models.User, error) {
	return s.users.UpdateProfile(userID, req)
}

func (s *AuthService) ChangePassword(userID int, req models.ChangePasswordRequest) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return err
	}

	valid, err := utils.VerifyPassword(user.Password, req.OldPassword)
	if err != nil || !valid {
		return ErrInvalidCredential
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(userID, hashedPassword)
}
