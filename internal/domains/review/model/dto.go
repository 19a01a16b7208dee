package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// CreateReviewRequest request to submit a review
type CreateReviewRequest struct {
	Comment string `json:"comment" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Comment,
			validation.Required.Error("comment is required"),
			validation.By(notBlank),
			validation.Length(0, MaxCommentLength),
		),
		validation.Field(&r.Rating,
			validation.Required.Error("rating is required"),
			validation.Min(MinRating).Error("rating must be between 1 and 5"),
			validation.Max(MaxRating).Error("rating must be between 1 and 5"),
		),
	)
}

// ListReviewsRequest request to list a restaurant's visible reviews
type ListReviewsRequest struct {
	Sort string `form:"sort"`
}

func (r *ListReviewsRequest) Validate() error {
	switch r.Sort {
	case "":
		r.Sort = SortByDate
	case SortByDate, SortByRatingHigh, SortByRatingLow, SortByHelpful:
	default:
		return validation.NewError("validation_sort", "sort must be one of: date, rating_high, rating_low, helpful")
	}
	return nil
}

// notBlank rejects whitespace-only strings that pass Required.
func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// CommentView is a comment as shown under a review
type CommentView struct {
	ID       uuid.UUID `json:"id"`
	Comment  string    `json:"comment"`
	Reported bool      `json:"reported"`
	Username string    `json:"username"`
}

// ReviewResponse response for a publicly visible review
type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`

	Comment  string  `json:"comment"`
	Rating   int     `json:"rating"`
	Response *string `json:"response,omitempty"`

	HelpfulCount   int  `json:"helpful_count"`
	UnhelpfulCount int  `json:"unhelpful_count"`
	Reported       bool `json:"reported"`

	Comments []CommentView `json:"comments"`

	CreatedAt time.Time `json:"created_at"`
}
