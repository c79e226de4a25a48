package models

type RegisterRequest struct {
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name"`
	Phone     string `json:"phone" form:"phone" binding:"omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" form:"first_name"`
	LastName  string `json:"last_name" form:"last_name"`
	Phone     string `json:"phone" form:"phone"`
	Address   string `json:"address" form:"address"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type CreateUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Role       string `json:"role" binding:"required,oneof=customer admin staff"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date"`
}

type UpdateUserRequest struct {
	Email      string `json:"email" binding:"omitempty,email"`
	Role       string `json:"role" binding:"omitempty,oneof=customer admin staff"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date"`
}

type CreateMenuItemRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gte=0"`
	Category        string  `json:"category" binding:"required"`
	Image           string  `json:"image"`
	PreparationArea string  `json:"preparation_area"`
}

type UpdateMenuItemRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           *float64 `json:"price" binding:"omitempty,gte=0"`
	Category        string   `json:"category"`
	Image           string   `json:"image"`
	PreparationArea string   `json:"preparation_area"`
}

type AddCartItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type AddFavoriteRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type CheckoutRequest struct {
	TableNumber         *int   `json:"table_number"`
	PaymentMethod       string `json:"payment_method" binding:"omitempty,oneof=cash speedpoint"`
	SpecialInstructions string `json:"special_instructions"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

type CreateInventoryItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Category        string `json:"category"`
	Quantity        int    `json:"quantity" binding:"gte=0"`
	Unit            string `json:"unit"`
	ReorderPoint    int    `json:"reorder_point" binding:"gte=0"`
	SupplierName    string `json:"supplier_name"`
	SupplierContact string `json:"supplier_contact"`
}

type UpdateInventoryItemRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Quantity        *int   `json:"quantity" binding:"omitempty,gte=0"`
	Unit            string `json:"unit"`
	ReorderPoint    *int   `json:"reorder_point" binding:"omitempty,gte=0"`
	SupplierName    string `json:"supplier_name"`
	SupplierContact string `json:"supplier_contact"`
}

type CreateTableRequest struct {
	Number   int    `json:"number" binding:"required,gt=0"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Shape    string `json:"shape" binding:"omitempty,oneof=square round"`
}

type UpdateTableRequest struct {
	Number   *int   `json:"number" binding:"omitempty,gt=0"`
	Capacity *int   `json:"capacity" binding:"omitempty,gt=0"`
	Shape    string `json:"shape" binding:"omitempty,oneof=square round"`
	Status   string `json:"status" binding:"omitempty,oneof=available occupied reserved"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

type CreateReservationRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          int    `json:"guests" binding:"required,gte=1,lte=20"`
	SpecialRequests string `json:"special_requests"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}

type UpdateSettingsRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Logo           string  `json:"logo"`
	CoverImage     string  `json:"cover_image"`
	PrimaryColor   string  `json:"primary_color"`
	SecondaryColor string  `json:"secondary_color"`
	FontFamily     string  `json:"font_family"`
	CustomCSS      *string `json:"custom_css"`
}

type CreateTransactionRequest struct {
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=order staff stock utilities other"`
}
