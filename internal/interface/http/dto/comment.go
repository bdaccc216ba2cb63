package dto

import "strings"

// CreateCommentRequest 创建评论请求
type CreateCommentRequest struct {
	BookID  uint   `json:"book_id" binding:"required" example:"1"`
	Content string `json:"content" binding:"required,max=5000" example:"Отличная книга"`
}

// Normalize 去空白并做字段级校验
func (r *CreateCommentRequest) Normalize() map[string]string {
	fields := make(map[string]string)

	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		fields["content"] = "评论内容不能为空"
	}
	if r.BookID == 0 {
		fields["book_id"] = "必须指定图书"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
