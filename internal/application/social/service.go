package social

import (
	"context"

	"github.com/recipeshare/api/internal/domain"
)

// LikeStore is the set-membership backend. Counts are derived from
// cardinality; there is no separate counter to keep in sync.
type LikeStore interface {
	Count(ctx context.Context, target domain.LikeTarget, entityID int64) (int64, error)
	IsMember(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) (bool, error)
	Add(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) error
	Remove(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) error
}

// LikeSummary is the read shape for an entity's like state as seen by
// one author.
type LikeSummary struct {
	Count int64 `json:"count"`
	Liked bool  `json:"liked"`
}

type Service interface {
	RecipeLikes(ctx context.Context, recipeID, authorID int64) (*LikeSummary, error)
	CommentLikes(ctx context.Context, commentID, authorID int64) (*LikeSummary, error)
	Like(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) error
	Unlike(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) error
}

type service struct {
	store LikeStore
}

func NewService(store LikeStore) Service {
	return &service{store: store}
}

func (s *service) summary(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) (*LikeSummary, error) {
	count, err := s.store.Count(ctx, target, entityID)
	if err != nil {
		return nil, err
	}
	liked, err := s.store.IsMember(ctx, target, entityID, authorID)
	if err != nil {
		return nil, err
	}
	return &LikeSummary{Count: count, Liked: liked}, nil
}

func (s *service) RecipeLikes(ctx context.Context, recipeID, authorID int64) (*LikeSummary, error) {
	return s.summary(ctx, domain.LikeTargetRecipe, recipeID, authorID)
}

func (s *service) CommentLikes(ctx context.Context, commentID, authorID int64) (*LikeSummary, error) {
	return s.summary(ctx, domain.LikeTargetComment, commentID, authorID)
}

func (s *service) Like(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) error {
	return s.store.Add(ctx, target, entityID, authorID)
}

func (s *service) Unlike(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) error {
	return s.store.Remove(ctx, target, entityID, authorID)
}
