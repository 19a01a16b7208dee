package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregate_NoReviews(t *testing.T) {
	summary := Aggregate(nil)

	assert.Equal(t, NoReviews, summary.Average)
	assert.Equal(t, 0, summary.Count)
}

func TestAggregate_AllUnapproved(t *testing.T) {
	summary := Aggregate([]ReviewRating{
		{Rating: 5, Approved: false},
		{Rating: 1, Approved: false},
	})

	assert.Equal(t, NoReviews, summary.Average)
	assert.Equal(t, 0, summary.Count)
}

func TestAggregate_OnlyApprovedCounted(t *testing.T) {
	summary := Aggregate([]ReviewRating{
		{Rating: 4, Approved: true},
		{Rating: 5, Approved: true},
		{Rating: 1, Approved: false},
	})

	assert.Equal(t, "4.5", summary.Average)
	assert.Equal(t, 2, summary.Count)
}

func TestAggregate_Rounding(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    string
	}{
		{"whole number keeps one digit", []int{4, 4}, "4.0"},
		{"two thirds rounds up", []int{1, 2, 2}, "1.7"},
		{"one third rounds down", []int{1, 1, 2}, "1.3"},
		{"exact half rounds up", []int{1, 2, 2, 2}, "1.8"},
		{"single review", []int{3}, "3.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]ReviewRating, 0, len(tt.ratings))
			for _, r := range tt.ratings {
				reviews = append(reviews, ReviewRating{Rating: r, Approved: true})
			}

			summary := Aggregate(reviews)
			assert.Equal(t, tt.want, summary.Average)
			assert.Equal(t, len(tt.ratings), summary.Count)
		})
	}
}

func TestAggregate_ApprovalChangesResult(t *testing.T) {
	reviews := []ReviewRating{
		{Rating: 5, Approved: true},
		{Rating: 1, Approved: false},
	}
	assert.Equal(t, "5.0", Aggregate(reviews).Average)

	// The same set with the second review approved gives a new mean.
	reviews[1].Approved = true
	summary := Aggregate(reviews)
	assert.Equal(t, "3.0", summary.Average)
	assert.Equal(t, 2, summary.Count)
}
