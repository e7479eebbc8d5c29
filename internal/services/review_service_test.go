package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripnation/pkg/utils"
)

func TestReviewService(t *testing.T) {
	ctx := context.Background()
	repo := &fakeReviewRepo{}
	s := NewReviewService(repo, zap.NewNop())
	user := uuid.New()

	r, err := s.AddReview(ctx, user, "Trilha Serra do Mar", 5, "Incrível!", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, r.Rating)
	assert.Equal(t, []string{}, r.Photos)

	_, err = s.AddReview(ctx, user, "Praia", 3, "Ok", []string{"https://example.com/a.jpg"})
	require.NoError(t, err)

	_, err = s.AddReview(ctx, user, "Praia", 6, "Ok", nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	_, err = s.AddReview(ctx, user, " ", 4, "Ok", nil)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	all, err := s.ListReviews(ctx, 0, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)
	assert.Equal(t, 1, all.Page)

	fives, err := s.ListReviews(ctx, 1, 10, 5)
	require.NoError(t, err)
	require.Len(t, fives.Items, 1)
	assert.Equal(t, "Trilha Serra do Mar", fives.Items[0].TripTitle)

	repo.err = errBoom
	_, err = s.ListReviews(ctx, 1, 10, 0)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
