package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tastehub-backend/internal/domains/rating"
	"tastehub-backend/internal/domains/restaurant/model"
)

type postgresRestaurantRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRestaurantRepository creates a PostgreSQL restaurant repository
func NewPostgresRestaurantRepository(db *pgxpool.Pool) RestaurantRepository {
	return &postgresRestaurantRepository{db: db}
}

func (r *postgresRestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	query := `
		SELECT id, name, location, cuisine, description, image_url, created_at
		FROM restaurants
		WHERE id = $1`

	restaurant := &model.Restaurant{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.Name,
		&restaurant.Location,
		&restaurant.Cuisine,
		&restaurant.Description,
		&restaurant.ImageURL,
		&restaurant.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	return restaurant, nil
}

func (r *postgresRestaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	query := `
		SELECT id, name, location, cuisine, description, image_url, created_at
		FROM restaurants
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	return scanRestaurants(rows)
}

func (r *postgresRestaurantRepository) Search(ctx context.Context, query string) ([]model.Restaurant, error) {
	sql := `
		SELECT id, name, location, cuisine, description, image_url, created_at
		FROM restaurants
		WHERE name ILIKE $1 OR location ILIKE $1 OR cuisine ILIKE $1
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, sql, "%"+query+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search restaurants: %w", err)
	}
	defer rows.Close()

	return scanRestaurants(rows)
}

func (r *postgresRestaurantRepository) ListAllRatings(ctx context.Context) (map[uuid.UUID][]rating.ReviewRating, error) {
	query := `
		SELECT restaurant_id, rating, approved
		FROM reviews`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]rating.ReviewRating)
	for rows.Next() {
		var restaurantID uuid.UUID
		var rr rating.ReviewRating
		if err := rows.Scan(&restaurantID, &rr.Rating, &rr.Approved); err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		grouped[restaurantID] = append(grouped[restaurantID], rr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rating rows: %w", err)
	}

	return grouped, nil
}

func (r *postgresRestaurantRepository) ListMenuItems(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuItem, error) {
	query := `
		SELECT id, restaurant_id, name, description, price, image_url
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	items := make([]model.MenuItem, 0)
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}

	return items, nil
}

func scanRestaurants(rows pgx.Rows) ([]model.Restaurant, error) {
	restaurants := make([]model.Restaurant, 0)
	for rows.Next() {
		var restaurant model.Restaurant
		if err := rows.Scan(
			&restaurant.ID,
			&restaurant.Name,
			&restaurant.Location,
			&restaurant.Cuisine,
			&restaurant.Description,
			&restaurant.ImageURL,
			&restaurant.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		restaurants = append(restaurants, restaurant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurants: %w", err)
	}

	return restaurants, nil
}
