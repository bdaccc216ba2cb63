package book

import (
	"context"
	"log"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/pkg/mq"
)

// UpdateBookUseCase 更新图书用例
// 业务规则:
// 1. 标量字段直接覆盖（不做字段级合并）
// 2. 嵌套作者列表非空时整体替换关系集合
// 3. 列表为空或缺省时保留既有关系（"未给出指令"）
type UpdateBookUseCase struct {
	bookService   book.Service
	reconciler    *catalog.Reconciler
	txManager     *mysql.TxManager
	publisher     mq.EventPublisher
	reconcileInTx bool
}

// NewUpdateBookUseCase 创建更新图书用例
func NewUpdateBookUseCase(
	bookService book.Service,
	reconciler *catalog.Reconciler,
	txManager *mysql.TxManager,
	publisher mq.EventPublisher,
	reconcileInTx bool,
) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookService:   bookService,
		reconciler:    reconciler,
		txManager:     txManager,
		publisher:     publisher,
		reconcileInTx: reconcileInTx,
	}
}

// UpdateBookRequest 更新图书请求DTO
type UpdateBookRequest struct {
	ID      uint
	Title   string
	Year    *uint16
	Authors []AuthorRefInput
}

// Execute 执行更新图书用例
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (*BookResponse, error) {
	op := func(ctx context.Context) error {
		if _, err := uc.bookService.UpdateBookInfo(ctx, req.ID, req.Title, req.Year); err != nil {
			return err
		}

		res, err := uc.reconciler.ReconcileBookAuthors(ctx, req.ID, toAuthorRefs(req.Authors))
		if err != nil {
			return err
		}
		recordReconcile("author", res)
		return nil
	}

	var err error
	if uc.reconcileInTx {
		err = uc.txManager.Transaction(ctx, op)
	} else {
		err = op(ctx)
	}
	if err != nil {
		return nil, err
	}

	full, err := uc.bookService.GetBookByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	event := map[string]interface{}{
		"book_id": full.ID,
		"title":   full.Title,
		"year":    full.Year,
	}
	if err := uc.publisher.Publish(ctx, "catalog.book.updated", event); err != nil {
		log.Printf("发布图书更新事件失败: %v", err)
	}

	return toBookResponse(full), nil
}
