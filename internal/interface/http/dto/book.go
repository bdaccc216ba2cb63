package dto

import (
	"fmt"
	"strings"
)

// AuthorRefRequest 嵌套作者引用
// 自然键为(姓, 名, 父称)，年份只在新建时写入
type AuthorRefRequest struct {
	Surname    string  `json:"surname" binding:"required" example:"Петров"`
	Name       string  `json:"name" binding:"required" example:"Петр"`
	Patronymic string  `json:"patronymic" example:"Петрович"`
	Year       *uint16 `json:"year" example:"1990"`
}

// SaveBookRequest 创建/更新图书请求
// validator tag说明:
// - required: 必填字段
// - omitempty,dive: authors可缺省，给出时逐项校验
// 空的authors列表表示"不建立/不改动作者关系"
type SaveBookRequest struct {
	Title   string             `json:"title" binding:"required,max=200" example:"Книга 1"`
	Year    *uint16            `json:"year" example:"2013"`
	Authors []AuthorRefRequest `json:"authors" binding:"omitempty,dive"`
}

// Normalize 去空白并做字段级校验
// 返回"字段名 → 提示"映射，全部通过时返回nil
// binding tag挡不住纯空白字符串，这里补上trim后的非空检查
func (r *SaveBookRequest) Normalize() map[string]string {
	fields := make(map[string]string)

	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		fields["title"] = "书名不能为空"
	}

	for i := range r.Authors {
		a := &r.Authors[i]
		a.Surname = strings.TrimSpace(a.Surname)
		a.Name = strings.TrimSpace(a.Name)
		a.Patronymic = strings.TrimSpace(a.Patronymic)
		if a.Surname == "" {
			fields[fmt.Sprintf("authors[%d].surname", i)] = "姓不能为空"
		}
		if a.Name == "" {
			fields[fmt.Sprintf("authors[%d].name", i)] = "名不能为空"
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
