package comment

import (
	"context"
	"strings"
)

// Service 评论领域服务接口
//
// 业务规则：
// 1. 评论内容去空白后不能为空
// 2. 评论创建后不可修改，也没有单独的删除入口，
//    只随所属图书的删除一起级联移除
type Service interface {
	// CreateComment 为指定图书创建评论
	CreateComment(ctx context.Context, bookID uint, content string) (*Comment, error)

	// GetCommentByID 根据ID获取评论详情
	GetCommentByID(ctx context.Context, id uint) (*Comment, error)

	// ListCommentsByBook 获取某本图书的评论列表，新评论在前
	ListCommentsByBook(ctx context.Context, bookID uint) ([]*Comment, error)

	// ListComments 获取全部评论，新评论在前
	ListComments(ctx context.Context) ([]*Comment, error)
}

type service struct {
	repo Repository
}

// NewService 创建评论领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateComment(ctx context.Context, bookID uint, content string) (*Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	c := NewComment(bookID, content)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCommentByID(ctx context.Context, id uint) (*Comment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListCommentsByBook(ctx context.Context, bookID uint) ([]*Comment, error) {
	return s.repo.ListByBookID(ctx, bookID)
}

func (s *service) ListComments(ctx context.Context) ([]*Comment, error) {
	return s.repo.List(ctx)
}
