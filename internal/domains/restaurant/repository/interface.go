package repository

import (
	"context"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/rating"
	"tastehub-backend/internal/domains/restaurant/model"
)

// RestaurantRepository defines data access for restaurants and menus.
type RestaurantRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)

	// Search matches the query against name, location and cuisine,
	// case-insensitively. An empty query matches everything.
	Search(ctx context.Context, query string) ([]model.Restaurant, error)

	// ListAllRatings returns every review's rating projection grouped
	// by restaurant, so listings can aggregate in one round trip.
	ListAllRatings(ctx context.Context) (map[uuid.UUID][]rating.ReviewRating, error)

	ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuItem, error)
}
