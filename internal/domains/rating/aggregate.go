package rating

import (
	"github.com/shopspring/decimal"
)

// NoReviews is the sentinel shown when a restaurant has no approved reviews.
const NoReviews = "No reviews"

// ReviewRating is the projection the aggregator works on.
type ReviewRating struct {
	Rating   int
	Approved bool
}

// Summary is a restaurant's derived rating. Never persisted; recomputed
// on every fetch from the approved subset of its reviews.
type Summary struct {
	Average string `json:"average_rating"`
	Count   int    `json:"review_count"`
}

// Aggregate computes the average rating over the approved subset.
// The mean is rendered with exactly one fractional digit, rounded
// half-up at the tenths place.
func Aggregate(reviews []ReviewRating) Summary {
	var sum int64
	var count int64

	for _, r := range reviews {
		if !r.Approved {
			continue
		}
		sum += int64(r.Rating)
		count++
	}

	if count == 0 {
		return Summary{Average: NoReviews, Count: 0}
	}

	avg := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(count)).
		Round(1)

	return Summary{
		Average: avg.StringFixed(1),
		Count:   int(count),
	}
}
