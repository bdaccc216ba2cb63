package comment

import (
	"context"

	"github.com/xiebiao/library/internal/domain/comment"
)

// ListCommentsUseCase 评论列表查询用例
// 两种形态：全量列表（含图书摘要）与按图书过滤的列表，都按新评论在前排序
type ListCommentsUseCase struct {
	commentService comment.Service
}

// NewListCommentsUseCase 创建评论列表查询用例
func NewListCommentsUseCase(commentService comment.Service) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentService: commentService,
	}
}

// Execute 查询全部评论
func (uc *ListCommentsUseCase) Execute(ctx context.Context) ([]*CommentResponse, error) {
	comments, err := uc.commentService.ListComments(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(comments), nil
}

// ExecuteByBook 查询某本图书的评论
// 按book_id过滤，图书不存在时同样返回空列表（与按条件过滤的语义一致）
func (uc *ListCommentsUseCase) ExecuteByBook(ctx context.Context, bookID uint) ([]*CommentResponse, error) {
	comments, err := uc.commentService.ListCommentsByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return toResponses(comments), nil
}

func toResponses(comments []*comment.Comment) []*CommentResponse {
	list := make([]*CommentResponse, len(comments))
	for i, c := range comments {
		list[i] = toCommentResponse(c)
	}
	return list
}
