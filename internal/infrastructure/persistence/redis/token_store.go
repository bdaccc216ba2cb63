package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// TokenStore 令牌黑名单存储
// 设计说明：
// 1. JWT是无状态的，服务端无法主动让Token失效
// 2. 管理员登出时把Access Token写入黑名单，TTL与Token剩余有效期一致
// 3. Key设计：blacklist:{token}，过期后自动删除，无需手动清理
type TokenStore struct {
	client *redis.Client
}

// NewTokenStore 创建令牌黑名单存储
func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Revoke 将Token加入黑名单
// 使用场景：
// 1. 管理员登出
// 2. Token泄露后强制失效
func (s *TokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	key := fmt.Sprintf("blacklist:%s", token)

	if err := s.client.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "添加Token到黑名单失败")
	}

	return nil
}

// IsRevoked 检查Token是否已被吊销
func (s *TokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", token)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "检查黑名单失败")
	}

	return exists > 0, nil
}
