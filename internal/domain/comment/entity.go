package comment

import "time"

// Comment 评论实体
//
// 设计说明：
// 1. 评论只能挂在已存在的图书上，创建后内容不可修改
// 2. TimeCreation 记录评论发表时间，列表按该字段倒序展示
type Comment struct {
	ID           uint
	BookID       uint
	Content      string
	TimeCreation time.Time

	// Book 所属图书摘要，仅详情查询时填充
	Book *BookSummary
}

// BookSummary 评论视角下的图书摘要
type BookSummary struct {
	ID    uint
	Title string
	Year  *uint16
}

// NewComment 创建评论实体（工厂方法）
func NewComment(bookID uint, content string) *Comment {
	return &Comment{
		BookID:       bookID,
		Content:      content,
		TimeCreation: time.Now(),
	}
}
