package social

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/recipeshare/api/internal/domain"
	redisinfra "github.com/recipeshare/api/internal/infrastructure/redis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewService(redisinfra.NewLikeStore(client))
}

func TestRecipeLikes_FreshEntity(t *testing.T) {
	svc := newTestService(t)

	sum, err := svc.RecipeLikes(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.Zero(t, sum.Count)
	assert.False(t, sum.Liked)
}

func TestLike_CountsDistinctAuthors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Like(ctx, domain.LikeTargetRecipe, 3, 5))
	require.NoError(t, svc.Like(ctx, domain.LikeTargetRecipe, 3, 7))
	// repeated like by the same author is absorbed by the set
	require.NoError(t, svc.Like(ctx, domain.LikeTargetRecipe, 3, 5))

	sum, err := svc.RecipeLikes(ctx, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Count)
	assert.True(t, sum.Liked)

	sum, err = svc.RecipeLikes(ctx, 3, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sum.Count)
	assert.False(t, sum.Liked)
}

func TestUnlike_RemovesOnlyThatAuthor(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Like(ctx, domain.LikeTargetRecipe, 3, 5))
	require.NoError(t, svc.Like(ctx, domain.LikeTargetRecipe, 3, 7))
	require.NoError(t, svc.Unlike(ctx, domain.LikeTargetRecipe, 3, 5))

	sum, err := svc.RecipeLikes(ctx, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.Count)
	assert.True(t, sum.Liked)
}

func TestUnlike_AbsentMemberIsNoOp(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Unlike(ctx, domain.LikeTargetComment, 11, 5))

	sum, err := svc.CommentLikes(ctx, 11, 5)
	require.NoError(t, err)
	assert.Zero(t, sum.Count)
}

func TestRecipeAndCommentLikes_DoNotMix(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Like(ctx, domain.LikeTargetRecipe, 3, 5))

	sum, err := svc.CommentLikes(ctx, 3, 5)
	require.NoError(t, err)
	assert.Zero(t, sum.Count)
	assert.False(t, sum.Liked)
}
