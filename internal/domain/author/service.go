package author

import (
	"context"
	"strings"
)

// Service 作者领域服务接口
type Service interface {
	// CreateAuthor 创建作者
	// 业务规则：姓、名去空白后不能为空
	CreateAuthor(ctx context.Context, surname, name, patronymic string, year *uint16) (*Author, error)

	// GetAuthorByID 根据ID获取作者详情（含图书摘要）
	GetAuthorByID(ctx context.Context, id uint) (*Author, error)

	// UpdateAuthorInfo 覆盖作者标量字段
	UpdateAuthorInfo(ctx context.Context, id uint, surname, name, patronymic string, year *uint16) (*Author, error)

	// DeleteAuthor 删除作者（不删除其图书）
	DeleteAuthor(ctx context.Context, id uint) error

	// ListAuthors 返回全部作者
	ListAuthors(ctx context.Context) ([]*Author, error)
}

type service struct {
	repo Repository
}

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateAuthor(ctx context.Context, surname, name, patronymic string, year *uint16) (*Author, error) {
	surname = strings.TrimSpace(surname)
	name = strings.TrimSpace(name)
	if surname == "" || name == "" {
		return nil, ErrEmptyName
	}

	a := NewAuthor(surname, name, strings.TrimSpace(patronymic), year)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetAuthorByID(ctx context.Context, id uint) (*Author, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateAuthorInfo 覆盖作者标量字段
// 更新即直接覆盖已有行，不做自然键匹配
func (s *service) UpdateAuthorInfo(ctx context.Context, id uint, surname, name, patronymic string, year *uint16) (*Author, error) {
	surname = strings.TrimSpace(surname)
	name = strings.TrimSpace(name)
	if surname == "" || name == "" {
		return nil, ErrEmptyName
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.UpdateInfo(surname, name, strings.TrimSpace(patronymic), year)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) DeleteAuthor(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListAuthors(ctx context.Context) ([]*Author, error) {
	return s.repo.List(ctx)
}
