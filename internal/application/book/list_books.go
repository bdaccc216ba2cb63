package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/metrics"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 固定页大小由配置提供（默认3），客户端只传页码
// 2. 按书名升序排列
// 3. 列表项不含评论（减少数据传输量），作者仍展示为拼接串
type ListBooksUseCase struct {
	bookService book.Service
	pageSize    int
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service, pageSize int) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
		pageSize:    pageSize,
	}
}

// BookListItem 列表项DTO(不含评论)
type BookListItem struct {
	ID      uint     `json:"id"`
	Title   string   `json:"title"`
	Year    *uint16  `json:"year"`
	Authors []string `json:"authors"`
}

// ListBooksResponse 列表查询响应DTO
// HTTP层据此构建{next, previous, pagenum, total_pages, results}分页信封
type ListBooksResponse struct {
	Items    []BookListItem
	Total    int64
	Page     int
	PageSize int
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, page int) (*ListBooksResponse, error) {
	if page < 1 {
		page = 1
	}

	books, total, err := uc.bookService.ListBooks(ctx, page, uc.pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]BookListItem, len(books))
	for i, b := range books {
		authors := make([]string, 0, len(b.Authors))
		for _, a := range b.Authors {
			authors = append(authors, a.FullName())
		}
		items[i] = BookListItem{
			ID:      b.ID,
			Title:   b.Title,
			Year:    b.Year,
			Authors: authors,
		}
	}

	if metrics.Enabled() {
		metrics.BooksTotal.Set(float64(total))
	}

	return &ListBooksResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: uc.pageSize,
	}, nil
}
