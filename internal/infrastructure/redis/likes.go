package redisinfra

import (
	"context"
	"fmt"
	"strconv"

	"github.com/recipeshare/api/internal/domain"
	"github.com/redis/go-redis/v9"
)

// LikeStore holds like membership as Redis sets, one set per
// (target kind, entity id), with author ids as members. Counts are the
// set cardinality; no separate counter is kept.
type LikeStore struct {
	client *redis.Client
}

func NewLikeStore(client *redis.Client) *LikeStore {
	return &LikeStore{client: client}
}

func (s *LikeStore) key(target domain.LikeTarget, entityID int64) string {
	return fmt.Sprintf("%s_%d", target, entityID)
}

func (s *LikeStore) Count(ctx context.Context, target domain.LikeTarget, entityID int64) (int64, error) {
	n, err := s.client.SCard(ctx, s.key(target, entityID)).Result()
	if err != nil {
		return 0, fmt.Errorf("like count %s: %w", target, err)
	}
	return n, nil
}

func (s *LikeStore) IsMember(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key(target, entityID), strconv.FormatInt(authorID, 10)).Result()
	if err != nil {
		return false, fmt.Errorf("like membership %s: %w", target, err)
	}
	return ok, nil
}

func (s *LikeStore) Add(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) error {
	if err := s.client.SAdd(ctx, s.key(target, entityID), strconv.FormatInt(authorID, 10)).Err(); err != nil {
		return fmt.Errorf("like add %s: %w", target, err)
	}
	return nil
}

func (s *LikeStore) Remove(ctx context.Context, target domain.LikeTarget, entityID, authorID int64) error {
	if err := s.client.SRem(ctx, s.key(target, entityID), strconv.FormatInt(authorID, 10)).Err(); err != nil {
		return fmt.Errorf("like remove %s: %w", target, err)
	}
	return nil
}
