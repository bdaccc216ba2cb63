package author

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
)

// ListAuthorsUseCase 作者列表查询用例
// 设计说明：作者列表不分页，按插入顺序返回
type ListAuthorsUseCase struct {
	authorService author.Service
}

// NewListAuthorsUseCase 创建列表查询用例
func NewListAuthorsUseCase(authorService author.Service) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorService: authorService}
}

// Execute 执行列表查询
func (uc *ListAuthorsUseCase) Execute(ctx context.Context) ([]*AuthorResponse, error) {
	authors, err := uc.authorService.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*AuthorResponse, len(authors))
	for i, a := range authors {
		list[i] = toAuthorResponse(a)
	}
	return list, nil
}
