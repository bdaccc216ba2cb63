package comment

import (
	"context"
	"errors"
	"log"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/comment"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/mq"
)

// CreateCommentUseCase 创建评论用例
// 业务规则:
// 1. 评论必须挂在已存在的图书上，图书不存在按参数错误处理
// 2. 发表时间由服务端生成，创建后不可修改
type CreateCommentUseCase struct {
	commentService comment.Service
	bookService    book.Service
	publisher      mq.EventPublisher
}

// NewCreateCommentUseCase 创建评论用例
func NewCreateCommentUseCase(
	commentService comment.Service,
	bookService book.Service,
	publisher mq.EventPublisher,
) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		commentService: commentService,
		bookService:    bookService,
		publisher:      publisher,
	}
}

// CreateCommentRequest 创建评论请求DTO
type CreateCommentRequest struct {
	BookID  uint
	Content string
}

// Execute 执行创建评论用例
func (uc *CreateCommentUseCase) Execute(ctx context.Context, req CreateCommentRequest) (*CommentResponse, error) {
	// 先确认图书存在：引用不存在的图书属于请求数据问题，返回字段级校验错误
	if _, err := uc.bookService.GetBookByID(ctx, req.BookID); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			return nil, apperrors.NewValidation(map[string]string{
				"book_id": "图书不存在",
			})
		}
		return nil, err
	}

	c, err := uc.commentService.CreateComment(ctx, req.BookID, req.Content)
	if err != nil {
		return nil, err
	}

	if metrics.Enabled() {
		metrics.CommentsCreatedTotal.Inc()
	}

	event := map[string]interface{}{
		"comment_id": c.ID,
		"book_id":    c.BookID,
	}
	if err := uc.publisher.Publish(ctx, "catalog.comment.created", event); err != nil {
		log.Printf("发布评论创建事件失败: %v", err)
	}

	return toCommentResponse(c), nil
}
