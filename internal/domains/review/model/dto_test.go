package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateReviewRequest
		wantErr bool
	}{
		{"valid", CreateReviewRequest{Comment: "Great pad thai", Rating: 5}, false},
		{"lowest rating", CreateReviewRequest{Comment: "Cold food", Rating: 1}, false},
		{"empty comment", CreateReviewRequest{Comment: "", Rating: 3}, true},
		{"whitespace comment", CreateReviewRequest{Comment: "   \t\n", Rating: 3}, true},
		{"comment too long", CreateReviewRequest{Comment: strings.Repeat("a", MaxCommentLength+1), Rating: 3}, true},
		{"rating zero", CreateReviewRequest{Comment: "ok", Rating: 0}, true},
		{"rating too high", CreateReviewRequest{Comment: "ok", Rating: 6}, true},
		{"rating negative", CreateReviewRequest{Comment: "ok", Rating: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListReviewsRequest_Validate(t *testing.T) {
	t.Run("empty sort defaults to date", func(t *testing.T) {
		req := ListReviewsRequest{}
		require.NoError(t, req.Validate())
		assert.Equal(t, SortByDate, req.Sort)
	})

	t.Run("known sorts pass", func(t *testing.T) {
		for _, sort := range []string{SortByDate, SortByRatingHigh, SortByRatingLow, SortByHelpful} {
			req := ListReviewsRequest{Sort: sort}
			require.NoError(t, req.Validate())
			assert.Equal(t, sort, req.Sort)
		}
	})

	t.Run("unknown sort rejected", func(t *testing.T) {
		req := ListReviewsRequest{Sort: "popularity"}
		assert.Error(t, req.Validate())
	})
}
