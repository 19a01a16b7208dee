package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tastehub-backend/internal/domains/review/model"
	"tastehub-backend/internal/domains/review/service"
	"tastehub-backend/internal/shared/response"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// =====================================================
// HELPER FUNCTIONS
// =====================================================

// getUserID extracts the caller's ID set by the auth middleware.
// Returns uuid.Nil for anonymous callers.
func getUserID(c *gin.Context) uuid.UUID {
	value, exists := c.Get("userID")
	if !exists {
		return uuid.Nil
	}

	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}

	return userID
}

// =====================================================
// PUBLIC ENDPOINTS
// =====================================================

// ListReviews lists approved reviews of a restaurant
// GET /api/v1/restaurants/:id/reviews
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	// Step 1: Parse restaurant ID
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid restaurant ID")
		return
	}

	// Step 2: Read the sort option
	req := model.ListReviewsRequest{
		Sort: c.Query("sort"),
	}

	// Step 3: Call service
	reviews, err := h.reviewService.ListVisible(c.Request.Context(), restaurantID, req)
	if err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 4: Return success
	response.Success(c, http.StatusOK, reviews)
}

// =====================================================
// AUTHENTICATED ENDPOINTS
// =====================================================

// SubmitReview creates a new review in the pending state
// POST /api/v1/restaurants/:id/reviews
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	// Step 1: Parse restaurant ID
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid restaurant ID")
		return
	}

	// Step 2: Bind request body
	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Call service
	review, err := h.reviewService.SubmitReview(c.Request.Context(), restaurantID, getUserID(c), req)
	if err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 4: Return success
	response.Success(c, http.StatusCreated, review)
}

// DeleteReview deletes the caller's own review
// DELETE /api/v1/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	// Step 1: Parse review ID
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	// Step 2: Call service
	if err := h.reviewService.DeleteOwn(c.Request.Context(), reviewID, getUserID(c)); err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 3: Return success
	response.Success(c, http.StatusOK, gin.H{
		"message": "Review deleted",
	})
}

// ReportReview flags a review for moderator attention
// POST /api/v1/reviews/:id/report
func (h *ReviewHandler) ReportReview(c *gin.Context) {
	// Step 1: Parse review ID
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	// Step 2: Call service
	if err := h.reviewService.Report(c.Request.Context(), reviewID, getUserID(c)); err != nil {
		statusCode, errCode := mapReviewError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 3: Return success
	response.Success(c, http.StatusOK, gin.H{
		"message": "Review reported",
	})
}

// mapReviewError maps review errors to HTTP status codes
func mapReviewError(err error) (int, string) {
	var reviewErr *model.ReviewError
	if errors.As(err, &reviewErr) {
		switch reviewErr.Code {
		case model.ErrCodeReviewNotFound:
			return http.StatusNotFound, reviewErr.Code
		case model.ErrCodeValidation:
			return http.StatusBadRequest, reviewErr.Code
		case model.ErrCodeNotSignedIn:
			return http.StatusUnauthorized, reviewErr.Code
		case model.ErrCodeNotAuthor:
			return http.StatusForbidden, reviewErr.Code
		case model.ErrCodeNotApproved:
			return http.StatusForbidden, reviewErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
