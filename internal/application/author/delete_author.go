package author

import (
	"context"
	"log"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/pkg/mq"
)

// DeleteAuthorUseCase 删除作者用例
// 业务规则：解除图书关系但不删除图书
type DeleteAuthorUseCase struct {
	authorService author.Service
	publisher     mq.EventPublisher
}

// NewDeleteAuthorUseCase 创建删除作者用例
func NewDeleteAuthorUseCase(authorService author.Service, publisher mq.EventPublisher) *DeleteAuthorUseCase {
	return &DeleteAuthorUseCase{
		authorService: authorService,
		publisher:     publisher,
	}
}

// Execute 执行删除作者用例
func (uc *DeleteAuthorUseCase) Execute(ctx context.Context, id uint) error {
	if err := uc.authorService.DeleteAuthor(ctx, id); err != nil {
		return err
	}

	event := map[string]interface{}{"author_id": id}
	if err := uc.publisher.Publish(ctx, "catalog.author.deleted", event); err != nil {
		log.Printf("发布作者删除事件失败: %v", err)
	}
	return nil
}
