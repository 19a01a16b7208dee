package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tastehub-backend/internal/domains/rating"
	"tastehub-backend/internal/domains/restaurant/model"
	"tastehub-backend/internal/domains/restaurant/repository"
	reviewrepo "tastehub-backend/internal/domains/review/repository"
	"tastehub-backend/pkg/cache"
	"tastehub-backend/pkg/logger"
)

// Base records change rarely, so a short cache is safe. Ratings are
// never cached: they depend on moderation state that changes under us.
const restaurantCacheTTL = 10 * time.Minute

type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	reviewRepo     reviewrepo.ReviewRepository
	cache          cache.Cache
}

// NewRestaurantService creates a restaurant service instance
func NewRestaurantService(restaurantRepo repository.RestaurantRepository, reviewRepo reviewrepo.ReviewRepository, cache cache.Cache) ServiceInterface {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		reviewRepo:     reviewRepo,
		cache:          cache,
	}
}

func (s *restaurantService) List(ctx context.Context) ([]model.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}

	return s.withRatings(ctx, restaurants)
}

func (s *restaurantService) Search(ctx context.Context, query string) ([]model.RestaurantResponse, error) {
	restaurants, err := s.restaurantRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search restaurants: %w", err)
	}

	return s.withRatings(ctx, restaurants)
}

func (s *restaurantService) Get(ctx context.Context, id uuid.UUID) (*model.RestaurantResponse, error) {
	// Step 1: Load the base record, cache-first
	restaurant, err := s.getBase(ctx, id)
	if err != nil {
		return nil, err
	}

	// Step 2: Recompute the rating summary from current review state
	ratings, err := s.reviewRepo.ListRatingsByRestaurant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	return &model.RestaurantResponse{
		Restaurant: *restaurant,
		Rating:     rating.Aggregate(ratings),
	}, nil
}

func (s *restaurantService) Menu(ctx context.Context, id uuid.UUID) ([]model.MenuItem, error) {
	// The restaurant must exist; an empty menu is a valid answer.
	if _, err := s.getBase(ctx, id); err != nil {
		return nil, err
	}

	items, err := s.restaurantRepo.ListMenuItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	return items, nil
}

// getBase returns the cached base record, falling back to the
// database and refreshing the cache on a miss. Cache failures are
// logged and ignored; the database stays authoritative.
func (s *restaurantService) getBase(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	key := fmt.Sprintf("restaurant:%s", id)

	var cached model.Restaurant
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Error("failed to read restaurant cache", err)
	}
	if found {
		return &cached, nil
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrRestaurantNotFound) {
			return nil, model.NewRestaurantNotFoundError()
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if err := s.cache.Set(ctx, key, restaurant, restaurantCacheTTL); err != nil {
		logger.Error("failed to write restaurant cache", err)
	}

	return restaurant, nil
}

func (s *restaurantService) withRatings(ctx context.Context, restaurants []model.Restaurant) ([]model.RestaurantResponse, error) {
	grouped, err := s.restaurantRepo.ListAllRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	out := make([]model.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		out = append(out, model.RestaurantResponse{
			Restaurant: restaurant,
			Rating:     rating.Aggregate(grouped[restaurant.ID]),
		})
	}

	return out, nil
}
