package book

import (
	"context"
	"strings"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 封装图书聚合的业务规则校验（书名非空等）
// 2. 不处理作者关系调和，那是catalog.Reconciler的职责
type Service interface {
	// CreateBook 创建图书
	// 业务规则：书名去空白后不能为空
	CreateBook(ctx context.Context, title string, year *uint16) (*Book, error)

	// GetBookByID 根据ID获取图书详情（含作者、评论）
	GetBookByID(ctx context.Context, id uint) (*Book, error)

	// UpdateBookInfo 覆盖图书标量字段
	UpdateBookInfo(ctx context.Context, id uint, title string, year *uint16) (*Book, error)

	// DeleteBook 删除图书（评论级联删除）
	DeleteBook(ctx context.Context, id uint) error

	// ListBooks 分页查询图书列表
	ListBooks(ctx context.Context, page, pageSize int) ([]*Book, int64, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateBook 创建图书
func (s *service) CreateBook(ctx context.Context, title string, year *uint16) (*Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	b := NewBook(title, year)
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetBookByID 根据ID获取图书
func (s *service) GetBookByID(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateBookInfo 覆盖图书标量字段
// 更新即直接覆盖，不做匹配或合并
func (s *service) UpdateBookInfo(ctx context.Context, id uint, title string, year *uint16) (*Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.UpdateInfo(title, year)
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBook 删除图书
func (s *service) DeleteBook(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListBooks 分页查询图书列表
func (s *service) ListBooks(ctx context.Context, page, pageSize int) ([]*Book, int64, error) {
	return s.repo.List(ctx, page, pageSize)
}
