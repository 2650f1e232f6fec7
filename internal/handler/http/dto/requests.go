package dto

// RegisterRequest is the signup form payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateHomestayRequest is the host's new-listing form payload.
type CreateHomestayRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Available   bool     `json:"available"`
}

// CreateBookingRequest is the tourist's booking form payload.
type CreateBookingRequest struct {
	HomestayID string `json:"homestayId" binding:"required"`
	GuestName  string `json:"guestName" binding:"required"`
	GuestEmail string `json:"guestEmail" binding:"required,email"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	Guests     int    `json:"guests" binding:"required,gt=0"`
}

// UpdateBookingStatusRequest moves a pending booking to a terminal
// state.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}

// CreateAttractionRequest is the guide's new-attraction form payload.
type CreateAttractionRequest struct {
	Name        string   `json:"name" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Rating      float64  `json:"rating"`
	Distance    string   `json:"distance" binding:"required"`
	Images      []string `json:"images"`
}

// CreateReviewRequest is a guest review payload.
type CreateReviewRequest struct {
	HomestayID string  `json:"homestayId" binding:"required"`
	Rating     float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment    string  `json:"comment"`
}
