package store

// Storage keys for the six logical collections plus the session
// snapshot. Every collection is one JSON-serialized blob under its key.
const (
	KeyUsers       = "homestay_users"
	KeyHomestays   = "homestay_listings"
	KeyBookings    = "homestay_bookings"
	KeyAttractions = "tourist_attractions"
	KeyReviews     = "homestay_reviews"
	KeyGuides      = "local_guides"
	KeyCurrentUser = "current_user"
)
