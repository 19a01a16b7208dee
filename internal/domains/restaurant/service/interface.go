package service

import (
	"context"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/restaurant/model"
)

// ServiceInterface defines restaurant read operations. Every rating
// figure in the responses is recomputed from approved reviews at call
// time; nothing derived is cached or stored.
type ServiceInterface interface {
	List(ctx context.Context) ([]model.RestaurantResponse, error)
	Search(ctx context.Context, query string) ([]model.RestaurantResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*model.RestaurantResponse, error)
	Menu(ctx context.Context, id uuid.UUID) ([]model.MenuItem, error)
}
