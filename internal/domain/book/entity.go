package book

import (
	"strings"
	"time"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Year为出版年份，可缺省（指针为nil表示未知）
// 2. 与作者是多对多关系：一本书可有多位作者，一位作者可有多本书
// 3. 评论归属图书（一对多），删除图书时级联删除评论
// 4. 自然键为(书名, 年份)：嵌套写入时按此二元组做精确匹配
type Book struct {
	ID        uint
	Title     string  // 书名
	Year      *uint16 // 出版年份（可空）
	Authors   []AuthorSummary
	Comments  []CommentSummary
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 仅填充自然键字段；关联作者由调和流程另行建立
func NewBook(title string, year *uint16) *Book {
	now := time.Now()
	return &Book{
		Title:     title,
		Year:      year,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateInfo 直接覆盖图书基本信息
// 业务规则：更新即覆盖，不做字段级合并
func (b *Book) UpdateInfo(title string, year *uint16) {
	b.Title = title
	b.Year = year
	b.UpdatedAt = time.Now()
}

// AuthorSummary 图书视角下的作者摘要
// 只携带展示与匹配所需字段，避免book↔author两个聚合互相引用
type AuthorSummary struct {
	ID         uint
	Surname    string  // 姓
	Name       string  // 名
	Patronymic string  // 父称（可为空）
	Year       *uint16 // 出生年份（可空）
}

// FullName 姓、名、父称拼接为一行（列表展示用）
func (a AuthorSummary) FullName() string {
	parts := []string{a.Surname, a.Name}
	if a.Patronymic != "" {
		parts = append(parts, a.Patronymic)
	}
	return strings.Join(parts, " ")
}

// CommentSummary 图书视角下的评论摘要
type CommentSummary struct {
	ID           uint
	TimeCreation time.Time
	Content      string
}
