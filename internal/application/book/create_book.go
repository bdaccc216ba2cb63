package book

import (
	"context"
	"log"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/mq"
)

// CreateBookUseCase 创建图书用例
// 设计说明:
// 1. 先建图书再调和作者关系：嵌套作者按自然键"命中即链接、未中即新建"
// 2. 默认不开事务（与reconcile_in_tx开关配合）：并发写同一自然键
//    可能重复建档，这是已接受的行为
// 3. 成功后发布catalog.book.created事件，发布失败只记日志
type CreateBookUseCase struct {
	bookService   book.Service
	reconciler    *catalog.Reconciler
	txManager     *mysql.TxManager
	publisher     mq.EventPublisher
	reconcileInTx bool
}

// NewCreateBookUseCase 创建图书用例
func NewCreateBookUseCase(
	bookService book.Service,
	reconciler *catalog.Reconciler,
	txManager *mysql.TxManager,
	publisher mq.EventPublisher,
	reconcileInTx bool,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookService:   bookService,
		reconciler:    reconciler,
		txManager:     txManager,
		publisher:     publisher,
		reconcileInTx: reconcileInTx,
	}
}

// CreateBookRequest 创建图书请求DTO
type CreateBookRequest struct {
	Title   string
	Year    *uint16
	Authors []AuthorRefInput // 空列表表示"不建立作者关系"
}

// Execute 执行创建图书用例
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (*BookResponse, error) {
	var created *book.Book

	op := func(ctx context.Context) error {
		b, err := uc.bookService.CreateBook(ctx, req.Title, req.Year)
		if err != nil {
			return err
		}

		res, err := uc.reconciler.ReconcileBookAuthors(ctx, b.ID, toAuthorRefs(req.Authors))
		if err != nil {
			return err
		}
		recordReconcile("author", res)

		created = b
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

	// 重新加载以带出调和后的作者关系
	full, err := uc.bookService.GetBookByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, full)

	return toBookResponse(full), nil
}

func (uc *CreateBookUseCase) publishEvent(ctx context.Context, b *book.Book) {
	event := map[string]interface{}{
		"book_id": b.ID,
		"title":   b.Title,
		"year":    b.Year,
	}
	if err := uc.publisher.Publish(ctx, "catalog.book.created", event); err != nil {
		log.Printf("发布图书创建事件失败: %v", err)
	}
}

// recordReconcile 更新调和指标（metrics未启用时为空操作）
func recordReconcile(entity string, res catalog.Result) {
	if !metrics.Enabled() {
		return
	}
	if res.Matched > 0 {
		metrics.ReconcileLinkedTotal.WithLabelValues(entity, "matched").Add(float64(res.Matched))
	}
	if res.Created > 0 {
		metrics.ReconcileLinkedTotal.WithLabelValues(entity, "created").Add(float64(res.Created))
	}
}
