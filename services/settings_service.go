package services

import (
	"sync"

	"table-tap/models"
)

// SettingsService holds the storefront branding profile edited from the
// admin settings page. Read publicly by the frontend for theming.
type SettingsService struct {
	mu       sync.RWMutex
	settings models.RestaurantSettings
}

func NewSettingsService() *SettingsService {
	return &SettingsService{
		settings: models.RestaurantSettings{
			Name:           "Table Tap",
			Description:    "A great place to eat",
			PrimaryColor:   "#3B82F6",
			SecondaryColor: "#1E40AF",
			FontFamily:     "Arial, sans-serif",
		},
	}
}

func (s *SettingsService) Get() models.RestaurantSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *SettingsService) Update(req models.UpdateSettingsRequest) models.RestaurantSettings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Name != "" {
		s.settings.Name = req.Name
	}
	if req.Description != "" {
		s.settings.Description = req.Description
	}
	if req.Logo != "" {
		s.settings.Logo = req.Logo
	}
	if req.CoverImage != "" {
		s.settings.CoverImage = req.CoverImage
	}
	if req.PrimaryColor != "" {
		s.settings.PrimaryColor = req.PrimaryColor
	}
	if req.SecondaryColor != "" {
		s.settings.SecondaryColor = req.SecondaryColor
	}
	if req.FontFamily != "" {
		s.settings.FontFamily = req.FontFamily
	}
	// Pointer so custom CSS can be cleared with an explicit empty string.
	if req.CustomCSS != nil {
		s.settings.CustomCSS = *req.CustomCSS
	}
	return s.settings
}
