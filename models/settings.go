package models

// RestaurantSettings is the storefront branding profile: served publicly so
// the frontend can theme itself, edited from the admin settings page.
type RestaurantSettings struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Logo           string `json:"logo,omitempty"`
	CoverImage     string `json:"cover_image,omitempty"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
	CustomCSS      string `json:"custom_css,omitempty"`
}
