package book

import (
	"time"

	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/catalog"
)

// AuthorRefInput 嵌套作者引用（自然键）
// 设计说明：嵌套写入用自然键而不是ID，匹配/新建由调和引擎决定
type AuthorRefInput struct {
	Surname    string
	Name       string
	Patronymic string
	Year       *uint16
}

// toAuthorRefs 输入 → 调和引擎的引用类型
func toAuthorRefs(inputs []AuthorRefInput) []catalog.AuthorRef {
	refs := make([]catalog.AuthorRef, len(inputs))
	for i, in := range inputs {
		refs[i] = catalog.AuthorRef{
			Surname:    in.Surname,
			Name:       in.Name,
			Patronymic: in.Patronymic,
			Year:       in.Year,
		}
	}
	return refs
}

// CommentItem 图书详情中的评论对象
type CommentItem struct {
	ID           uint   `json:"id"`
	TimeCreation string `json:"time_creation"`
	Content      string `json:"content"`
}

// BookResponse 图书读取表示
// 作者展示为"姓 名 父称"拼接串，评论为完整对象、新评论在前
type BookResponse struct {
	ID       uint          `json:"id"`
	Title    string        `json:"title"`
	Year     *uint16       `json:"year"`
	Authors  []string      `json:"authors"`
	Comments []CommentItem `json:"comments"`
}

// toBookResponse 领域实体 → 响应DTO
func toBookResponse(b *book.Book) *BookResponse {
	resp := &BookResponse{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		Authors:  make([]string, 0, len(b.Authors)),
		Comments: make([]CommentItem, 0, len(b.Comments)),
	}
	for _, a := range b.Authors {
		resp.Authors = append(resp.Authors, a.FullName())
	}
	for _, c := range b.Comments {
		resp.Comments = append(resp.Comments, CommentItem{
			ID:           c.ID,
			TimeCreation: c.TimeCreation.Format(time.RFC3339),
			Content:      c.Content,
		})
	}
	return resp
}
