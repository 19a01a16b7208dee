package model

import (
	"tastehub-backend/internal/domains/rating"
)

// RestaurantResponse is a restaurant with its derived rating summary.
type RestaurantResponse struct {
	Restaurant
	Rating rating.Summary `json:"rating"`
}
