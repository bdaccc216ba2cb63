package author

import (
	"context"
	"log"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/pkg/mq"
)

// UpdateAuthorUseCase 更新作者用例
// 业务规则:
// 1. 标量字段直接覆盖
// 2. 嵌套图书列表非空时整体替换关系集合；空或缺省保留既有关系
// 3. 重复提交相同请求结果幂等
type UpdateAuthorUseCase struct {
	authorService author.Service
	reconciler    *catalog.Reconciler
	txManager     *mysql.TxManager
	publisher     mq.EventPublisher
	reconcileInTx bool
}

// NewUpdateAuthorUseCase 创建更新作者用例
func NewUpdateAuthorUseCase(
	authorService author.Service,
	reconciler *catalog.Reconciler,
	txManager *mysql.TxManager,
	publisher mq.EventPublisher,
	reconcileInTx bool,
) *UpdateAuthorUseCase {
	return &UpdateAuthorUseCase{
		authorService: authorService,
		reconciler:    reconciler,
		txManager:     txManager,
		publisher:     publisher,
		reconcileInTx: reconcileInTx,
	}
}

// UpdateAuthorRequest 更新作者请求DTO
type UpdateAuthorRequest struct {
	ID         uint
	Surname    string
	Name       string
	Patronymic string
	Year       *uint16
	Books      []BookRefInput
}

// Execute 执行更新作者用例
func (uc *UpdateAuthorUseCase) Execute(ctx context.Context, req UpdateAuthorRequest) (*AuthorResponse, error) {
	op := func(ctx context.Context) error {
		if _, err := uc.authorService.UpdateAuthorInfo(ctx, req.ID, req.Surname, req.Name, req.Patronymic, req.Year); err != nil {
			return err
		}

		res, err := uc.reconciler.ReconcileAuthorBooks(ctx, req.ID, toBookRefs(req.Books))
		if err != nil {
			return err
		}
		recordReconcile("book", res)
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

	full, err := uc.authorService.GetAuthorByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	event := map[string]interface{}{
		"author_id": full.ID,
		"full_name": full.FullName(),
	}
	if err := uc.publisher.Publish(ctx, "catalog.author.updated", event); err != nil {
		log.Printf("发布作者更新事件失败: %v", err)
	}

	return toAuthorResponse(full), nil
}
