package author

import (
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/pkg/metrics"
)

// BookRefInput 嵌套图书引用（自然键：书名+年份）
type BookRefInput struct {
	Title string
	Year  *uint16
}

// toBookRefs 输入 → 调和引擎的引用类型
func toBookRefs(inputs []BookRefInput) []catalog.BookRef {
	refs := make([]catalog.BookRef, len(inputs))
	for i, in := range inputs {
		refs[i] = catalog.BookRef{Title: in.Title, Year: in.Year}
	}
	return refs
}

// BookSummaryItem 作者详情中的图书摘要
type BookSummaryItem struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Year  *uint16 `json:"year"`
}

// AuthorResponse 作者读取表示
// full_name为"姓 名 父称"拼接串，books为图书摘要列表
type AuthorResponse struct {
	ID         uint              `json:"id"`
	Surname    string            `json:"surname"`
	Name       string            `json:"name"`
	Patronymic string            `json:"patronymic"`
	Year       *uint16           `json:"year"`
	FullName   string            `json:"full_name"`
	Books      []BookSummaryItem `json:"books"`
}

// toAuthorResponse 领域实体 → 响应DTO
func toAuthorResponse(a *author.Author) *AuthorResponse {
	resp := &AuthorResponse{
		ID:         a.ID,
		Surname:    a.Surname,
		Name:       a.Name,
		Patronymic: a.Patronymic,
		Year:       a.Year,
		FullName:   a.FullName(),
		Books:      make([]BookSummaryItem, 0, len(a.Books)),
	}
	for _, b := range a.Books {
		resp.Books = append(resp.Books, BookSummaryItem{
			ID:    b.ID,
			Title: b.Title,
			Year:  b.Year,
		})
	}
	return resp
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
