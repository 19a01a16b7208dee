package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tastehub-backend/internal/domains/vote/model"
	"tastehub-backend/internal/domains/vote/service"
	"tastehub-backend/internal/shared/response"
)

// =====================================================
// VOTE HANDLER
// =====================================================

type VoteHandler struct {
	voteService service.ServiceInterface
}

func NewVoteHandler(voteService service.ServiceInterface) *VoteHandler {
	return &VoteHandler{
		voteService: voteService,
	}
}

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

// CastVote records a helpfulness vote on a review
// POST /api/v1/reviews/:id/votes
func (h *VoteHandler) CastVote(c *gin.Context) {
	// Step 1: Parse review ID
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	// Step 2: Bind request body
	var req model.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Call service
	if err := h.voteService.CastVote(c.Request.Context(), reviewID, getUserID(c), req); err != nil {
		statusCode, errCode := mapVoteError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 4: Return success
	response.Success(c, http.StatusCreated, gin.H{
		"message": "Vote recorded",
	})
}

// mapVoteError maps vote errors to HTTP status codes
func mapVoteError(err error) (int, string) {
	var voteErr *model.VoteError
	if errors.As(err, &voteErr) {
		switch voteErr.Code {
		case model.ErrCodeDuplicateVote:
			return http.StatusConflict, voteErr.Code
		case model.ErrCodeValidation:
			return http.StatusBadRequest, voteErr.Code
		case model.ErrCodeNotSignedIn:
			return http.StatusUnauthorized, voteErr.Code
		case model.ErrCodeReviewNotFound:
			return http.StatusNotFound, voteErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
