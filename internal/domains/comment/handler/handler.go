package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tastehub-backend/internal/domains/comment/model"
	"tastehub-backend/internal/domains/comment/service"
	"tastehub-backend/internal/shared/response"
)

// =====================================================
// COMMENT HANDLER
// =====================================================

type CommentHandler struct {
	commentService service.ServiceInterface
}

func NewCommentHandler(commentService service.ServiceInterface) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
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

// SubmitComment creates a new comment in the pending state
// POST /api/v1/reviews/:id/comments
func (h *CommentHandler) SubmitComment(c *gin.Context) {
	// Step 1: Parse review ID
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid review ID")
		return
	}

	// Step 2: Bind request body
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Call service
	comment, err := h.commentService.SubmitComment(c.Request.Context(), reviewID, getUserID(c), req)
	if err != nil {
		statusCode, errCode := mapCommentError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 4: Return success
	response.Success(c, http.StatusCreated, comment)
}

// ReportComment flags a comment for moderator attention
// POST /api/v1/comments/:id/report
func (h *CommentHandler) ReportComment(c *gin.Context) {
	// Step 1: Parse comment ID
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	// Step 2: Call service
	if err := h.commentService.Report(c.Request.Context(), commentID, getUserID(c)); err != nil {
		statusCode, errCode := mapCommentError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	// Step 3: Return success
	response.Success(c, http.StatusOK, gin.H{
		"message": "Comment reported",
	})
}

// mapCommentError maps comment errors to HTTP status codes
func mapCommentError(err error) (int, string) {
	var commentErr *model.CommentError
	if errors.As(err, &commentErr) {
		switch commentErr.Code {
		case model.ErrCodeCommentNotFound, model.ErrCodeReviewNotFound:
			return http.StatusNotFound, commentErr.Code
		case model.ErrCodeValidation:
			return http.StatusBadRequest, commentErr.Code
		case model.ErrCodeNotSignedIn:
			return http.StatusUnauthorized, commentErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
