package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tastehub-backend/internal/domains/restaurant/model"
	"tastehub-backend/internal/domains/restaurant/service"
	"tastehub-backend/internal/shared/response"
)

// =====================================================
// RESTAURANT HANDLER
// =====================================================

type RestaurantHandler struct {
	restaurantService service.ServiceInterface
}

func NewRestaurantHandler(restaurantService service.ServiceInterface) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
	}
}

// ListRestaurants lists all restaurants with rating summaries
// GET /api/v1/restaurants
// GET /api/v1/restaurants?q=thai
func (h *RestaurantHandler) ListRestaurants(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	var (
		restaurants []model.RestaurantResponse
		err         error
	)
	if query != "" {
		restaurants, err = h.restaurantService.Search(c.Request.Context(), query)
	} else {
		restaurants, err = h.restaurantService.List(c.Request.Context())
	}
	if err != nil {
		statusCode, errCode := mapRestaurantError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, restaurants)
}

// GetRestaurant returns one restaurant with its rating summary
// GET /api/v1/restaurants/:id
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid restaurant ID")
		return
	}

	restaurant, err := h.restaurantService.Get(c.Request.Context(), restaurantID)
	if err != nil {
		statusCode, errCode := mapRestaurantError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, restaurant)
}

// GetMenu returns a restaurant's menu items
// GET /api/v1/restaurants/:id/menu
func (h *RestaurantHandler) GetMenu(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid restaurant ID")
		return
	}

	menu, err := h.restaurantService.Menu(c.Request.Context(), restaurantID)
	if err != nil {
		statusCode, errCode := mapRestaurantError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, menu)
}

// mapRestaurantError maps restaurant errors to HTTP status codes
func mapRestaurantError(err error) (int, string) {
	var restaurantErr *model.RestaurantError
	if errors.As(err, &restaurantErr) {
		switch restaurantErr.Code {
		case model.ErrCodeRestaurantNotFound:
			return http.StatusNotFound, restaurantErr.Code
		case model.ErrCodeValidation:
			return http.StatusBadRequest, restaurantErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
