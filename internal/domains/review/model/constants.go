package model

const (
	// Rating bounds
	MinRating = 1
	MaxRating = 5

	// Content limit
	MaxCommentLength = 2000
)

// Sort options for public review listings
const (
	SortByDate       = "date"
	SortByRatingHigh = "rating_high"
	SortByRatingLow  = "rating_low"
	SortByHelpful    = "helpful"
)
