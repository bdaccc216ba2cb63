package author

import (
	"context"
	"log"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/library/pkg/mq"
)

// CreateAuthorUseCase 创建作者用例
// 设计说明:
// 1. 先建作者再调和图书关系：嵌套图书按(书名, 年份)匹配，
//    命中即链接全部候选行，未中即新建
// 2. 事务策略与图书侧一致（reconcile_in_tx开关）
type CreateAuthorUseCase struct {
	authorService author.Service
	reconciler    *catalog.Reconciler
	txManager     *mysql.TxManager
	publisher     mq.EventPublisher
	reconcileInTx bool
}

// NewCreateAuthorUseCase 创建作者用例
func NewCreateAuthorUseCase(
	authorService author.Service,
	reconciler *catalog.Reconciler,
	txManager *mysql.TxManager,
	publisher mq.EventPublisher,
	reconcileInTx bool,
) *CreateAuthorUseCase {
	return &CreateAuthorUseCase{
		authorService: authorService,
		reconciler:    reconciler,
		txManager:     txManager,
		publisher:     publisher,
		reconcileInTx: reconcileInTx,
	}
}

// CreateAuthorRequest 创建作者请求DTO
type CreateAuthorRequest struct {
	Surname    string
	Name       string
	Patronymic string
	Year       *uint16
	Books      []BookRefInput // 空列表表示"不建立图书关系"
}

// Execute 执行创建作者用例
func (uc *CreateAuthorUseCase) Execute(ctx context.Context, req CreateAuthorRequest) (*AuthorResponse, error) {
	var created *author.Author

	op := func(ctx context.Context) error {
		a, err := uc.authorService.CreateAuthor(ctx, req.Surname, req.Name, req.Patronymic, req.Year)
		if err != nil {
			return err
		}

		res, err := uc.reconciler.ReconcileAuthorBooks(ctx, a.ID, toBookRefs(req.Books))
		if err != nil {
			return err
		}
		recordReconcile("book", res)

		created = a
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

	full, err := uc.authorService.GetAuthorByID(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	event := map[string]interface{}{
		"author_id": full.ID,
		"full_name": full.FullName(),
	}
	if err := uc.publisher.Publish(ctx, "catalog.author.created", event); err != nil {
		log.Printf("发布作者创建事件失败: %v", err)
	}

	return toAuthorResponse(full), nil
}
