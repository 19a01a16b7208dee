package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	commentmodel "tastehub-backend/internal/domains/comment/model"
	reviewmodel "tastehub-backend/internal/domains/review/model"
)

// ContentKind selects which content type a moderation action targets.
type ContentKind string

const (
	KindReviews  ContentKind = "reviews"
	KindComments ContentKind = "comments"
)

// ParseContentKind maps a path segment to a content kind.
func ParseContentKind(s string) (ContentKind, error) {
	switch ContentKind(s) {
	case KindReviews:
		return KindReviews, nil
	case KindComments:
		return KindComments, nil
	default:
		return "", NewUnknownKindError(s)
	}
}

// RespondRequest DTO for posting an owner response on a review
type RespondRequest struct {
	Response string `json:"response"`
}

func (r RespondRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Response,
			validation.Required.Error("response text is required"),
			validation.By(notBlank),
		),
	)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}

// ReviewQueueItem is a review awaiting moderation, with the
// restaurant name joined in for queue display.
type ReviewQueueItem struct {
	reviewmodel.Review
	RestaurantName string `json:"restaurant_name"`
}

// CommentQueueItem is a comment awaiting moderation.
type CommentQueueItem struct {
	commentmodel.Comment
	RestaurantName string `json:"restaurant_name"`
}

// QueuesResponse is the full moderation dashboard payload.
type QueuesResponse struct {
	PendingReviews   []ReviewQueueItem  `json:"pending_reviews"`
	ReportedReviews  []ReviewQueueItem  `json:"reported_reviews"`
	ApprovedReviews  []ReviewQueueItem  `json:"approved_reviews"`
	PendingComments  []CommentQueueItem `json:"pending_comments"`
	ReportedComments []CommentQueueItem `json:"reported_comments"`
}
