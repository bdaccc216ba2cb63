package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/xiebiao/library/internal/infrastructure/config"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/jwt"
)

// LoginUseCase 管理员登录用例
// 设计说明：
// 1. 管理员账号与bcrypt密码散列由配置提供，不落库
// 2. 校验通过后签发JWT Token对
// 3. 用户名不存在与密码错误返回同一个错误，不泄露账号是否存在
type LoginUseCase struct {
	authCfg    config.AuthConfig
	jwtManager *jwt.Manager
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(authCfg config.AuthConfig, jwtManager *jwt.Manager) *LoginUseCase {
	return &LoginUseCase{
		authCfg:    authCfg,
		jwtManager: jwtManager,
	}
}

// LoginRequest 登录请求DTO
type LoginRequest struct {
	Username string
	Password string
}

// LoginResponse 登录响应DTO
type LoginResponse struct {
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Username != uc.authCfg.AdminUsername {
		return nil, apperrors.ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword(
		[]byte(uc.authCfg.AdminPasswordHash), []byte(req.Password))
	if err != nil {
		return nil, apperrors.ErrInvalidPassword
	}

	tokenPair, err := uc.jwtManager.GenerateToken(req.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Username:     req.Username,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}, nil
}
