package auth

import (
	"context"

	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/pkg/jwt"
)

// LogoutUseCase 管理员登出用例
// 设计说明：JWT无状态，登出通过Redis黑名单让Token提前失效，
// 黑名单TTL取Access Token有效期（过期Token本来就无法通过校验）
type LogoutUseCase struct {
	tokenStore *redis.TokenStore
	jwtManager *jwt.Manager
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(tokenStore *redis.TokenStore, jwtManager *jwt.Manager) *LogoutUseCase {
	return &LogoutUseCase{
		tokenStore: tokenStore,
		jwtManager: jwtManager,
	}
}

// Execute 执行登出：吊销当前Access Token
func (uc *LogoutUseCase) Execute(ctx context.Context, token string) error {
	return uc.tokenStore.Revoke(ctx, token, uc.jwtManager.AccessTokenExpire())
}
