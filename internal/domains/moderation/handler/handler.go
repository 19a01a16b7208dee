package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tastehub-backend/internal/domains/moderation/model"
	"tastehub-backend/internal/domains/moderation/service"
	"tastehub-backend/internal/shared/response"
)

// =====================================================
// MODERATION HANDLER
// =====================================================
// Routes are mounted behind the moderator middleware; the handlers
// themselves do not re-check roles.

type ModerationHandler struct {
	moderationService service.ServiceInterface
}

func NewModerationHandler(moderationService service.ServiceInterface) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
	}
}

// GetQueues returns all moderation work lists
// GET /api/v1/moderation/queues
func (h *ModerationHandler) GetQueues(c *gin.Context) {
	queues, err := h.moderationService.Queues(c.Request.Context())
	if err != nil {
		statusCode, errCode := mapModerationError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, queues)
}

// Approve publishes a pending review or comment
// POST /api/v1/moderation/:kind/:id/approve
func (h *ModerationHandler) Approve(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.moderationService.Approve(c.Request.Context(), kind, id); err != nil {
		statusCode, errCode := mapModerationError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Approved",
	})
}

// MarkSafe clears the reported flag on a review or comment
// POST /api/v1/moderation/:kind/:id/mark-safe
func (h *ModerationHandler) MarkSafe(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.moderationService.MarkSafe(c.Request.Context(), kind, id); err != nil {
		statusCode, errCode := mapModerationError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Marked safe",
	})
}

// Reject permanently deletes a review or comment
// POST /api/v1/moderation/:kind/:id/reject
func (h *ModerationHandler) Reject(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}

	if err := h.moderationService.Reject(c.Request.Context(), kind, id); err != nil {
		statusCode, errCode := mapModerationError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Rejected",
	})
}

// Respond attaches an owner response to an approved review
// POST /api/v1/moderation/:kind/:id/respond
func (h *ModerationHandler) Respond(c *gin.Context) {
	kind, id, ok := h.target(c)
	if !ok {
		return
	}

	var req model.RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.moderationService.Respond(c.Request.Context(), kind, id, req); err != nil {
		statusCode, errCode := mapModerationError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Response posted",
	})
}

// target parses the :kind and :id path segments, writing the error
// response itself when either is invalid.
func (h *ModerationHandler) target(c *gin.Context) (model.ContentKind, uuid.UUID, bool) {
	kind, err := model.ParseContentKind(c.Param("kind"))
	if err != nil {
		statusCode, errCode := mapModerationError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return "", uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid content ID")
		return "", uuid.Nil, false
	}

	return kind, id, true
}

// mapModerationError maps moderation errors to HTTP status codes
func mapModerationError(err error) (int, string) {
	var modErr *model.ModerationError
	if errors.As(err, &modErr) {
		switch modErr.Code {
		case model.ErrCodeContentNotFound:
			return http.StatusNotFound, modErr.Code
		case model.ErrCodeValidation, model.ErrCodeUnknownKind:
			return http.StatusBadRequest, modErr.Code
		case model.ErrCodeRespondNotAllowed:
			return http.StatusConflict, modErr.Code
		default:
			return http.StatusInternalServerError, "INTERNAL_ERROR"
		}
	}
	return http.StatusInternalServerError, "INTERNAL_ERROR"
}
