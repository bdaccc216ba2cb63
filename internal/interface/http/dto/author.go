package dto

import (
	"fmt"
	"strings"
)

// BookRefRequest 嵌套图书引用
// 自然键为(书名, 年份)，双方年份都缺省时视为相等
type BookRefRequest struct {
	Title string  `json:"title" binding:"required" example:"Книга 1"`
	Year  *uint16 `json:"year" example:"2013"`
}

// SaveAuthorRequest 创建/更新作者请求
// 空的books列表表示"不建立/不改动图书关系"
type SaveAuthorRequest struct {
	Surname    string           `json:"surname" binding:"required,max=100" example:"Петров"`
	Name       string           `json:"name" binding:"required,max=100" example:"Петр"`
	Patronymic string           `json:"patronymic" binding:"max=100" example:"Петрович"`
	Year       *uint16          `json:"year" example:"1990"`
	Books      []BookRefRequest `json:"books" binding:"omitempty,dive"`
}

// Normalize 去空白并做字段级校验
// 返回"字段名 → 提示"映射，全部通过时返回nil
func (r *SaveAuthorRequest) Normalize() map[string]string {
	fields := make(map[string]string)

	r.Surname = strings.TrimSpace(r.Surname)
	r.Name = strings.TrimSpace(r.Name)
	r.Patronymic = strings.TrimSpace(r.Patronymic)
	if r.Surname == "" {
		fields["surname"] = "姓不能为空"
	}
	if r.Name == "" {
		fields["name"] = "名不能为空"
	}

	for i := range r.Books {
		b := &r.Books[i]
		b.Title = strings.TrimSpace(b.Title)
		if b.Title == "" {
			fields[fmt.Sprintf("books[%d].title", i)] = "书名不能为空"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
