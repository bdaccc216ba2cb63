package comment

import (
	"context"

	"github.com/xiebiao/library/internal/domain/comment"
)

// GetCommentUseCase 评论详情查询用例
type GetCommentUseCase struct {
	commentService comment.Service
}

// NewGetCommentUseCase 创建详情查询用例
func NewGetCommentUseCase(commentService comment.Service) *GetCommentUseCase {
	return &GetCommentUseCase{commentService: commentService}
}

// Execute 执行详情查询
func (uc *GetCommentUseCase) Execute(ctx context.Context, id uint) (*CommentResponse, error) {
	c, err := uc.commentService.GetCommentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCommentResponse(c), nil
}
