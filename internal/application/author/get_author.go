package author

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
)

// GetAuthorUseCase 作者详情查询用例
type GetAuthorUseCase struct {
	authorService author.Service
}

// NewGetAuthorUseCase 创建详情查询用例
func NewGetAuthorUseCase(authorService author.Service) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorService: authorService}
}

// Execute 执行详情查询
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*AuthorResponse, error) {
	a, err := uc.authorService.GetAuthorByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAuthorResponse(a), nil
}
