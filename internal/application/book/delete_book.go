package book

import (
	"context"
	"log"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/mq"
)

// DeleteBookUseCase 删除图书用例
// 业务规则：级联删除评论，解除作者关系但保留作者
type DeleteBookUseCase struct {
	bookService book.Service
	publisher   mq.EventPublisher
}

// NewDeleteBookUseCase 创建删除图书用例
func NewDeleteBookUseCase(bookService book.Service, publisher mq.EventPublisher) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService: bookService,
		publisher:   publisher,
	}
}

// Execute 执行删除图书用例
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	event := map[string]interface{}{"book_id": id}
	if err := uc.publisher.Publish(ctx, "catalog.book.deleted", event); err != nil {
		log.Printf("发布图书删除事件失败: %v", err)
	}
	return nil
}
