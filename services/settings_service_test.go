package services

import (
	"testing"

	"table-tap/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(v string) *string { return &v }

func TestSettingsService_Defaults(t *testing.T) {
	settings := NewSettingsService()

	current := settings.Get()

	assert.Equal(t, "Table Tap", current.Name)
	assert.Equal(t, "#3B82F6", current.PrimaryColor)
	assert.Equal(t, "#1E40AF", current.SecondaryColor)
	assert.NotEmpty(t, current.FontFamily)
}

func TestSettingsService_PartialUpdate(t *testing.T) {
	settings := NewSettingsService()

	updated := settings.Update(models.UpdateSettingsRequest{Name: "Bistro 42", PrimaryColor: "#FF0000"})

	assert.Equal(t, "Bistro 42", updated.Name)
	assert.Equal(t, "#FF0000", updated.PrimaryColor)
	// Untouched fields keep their values.
	assert.Equal(t, "#1E40AF", updated.SecondaryColor)
	assert.Equal(t, "A great place to eat", updated.Description)
}

func TestSettingsService_ClearCustomCSS(t *testing.T) {
	settings := NewSettingsService()
	settings.Update(models.UpdateSettingsRequest{CustomCSS: strPtr("body { color: red; }")})

	updated := settings.Update(models.UpdateSettingsRequest{CustomCSS: strPtr("")})

	assert.Empty(t, updated.CustomCSS)
}
