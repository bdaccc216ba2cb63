package author

import (
	"strings"
	"time"
)

// Author 作者实体(聚合根)
// 设计说明:
// 1. 自然键为(姓, 名, 父称)三元组精确匹配——出生年份刻意不参与匹配：
//    嵌套写入命中已有作者时，即使年份不同也保留库中年份
// 2. 父称可为空（空串表示没有）
// 3. 模型允许自然键重复（没有唯一约束），调和时会链接全部命中行
type Author struct {
	ID         uint
	Surname    string  // 姓
	Name       string  // 名
	Patronymic string  // 父称（可为空）
	Year       *uint16 // 出生年份（可空）
	Books      []BookSummary
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewAuthor 创建新作者(工厂方法)
func NewAuthor(surname, name, patronymic string, year *uint16) *Author {
	now := time.Now()
	return &Author{
		Surname:    surname,
		Name:       name,
		Patronymic: patronymic,
		Year:       year,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UpdateInfo 直接覆盖作者基本信息
// 业务规则：更新即覆盖，不做自然键匹配或合并
func (a *Author) UpdateInfo(surname, name, patronymic string, year *uint16) {
	a.Surname = surname
	a.Name = name
	a.Patronymic = patronymic
	a.Year = year
	a.UpdatedAt = time.Now()
}

// FullName 姓、名、父称拼接为一行
// 父称为空时只拼接姓和名，不留尾随空格
func (a *Author) FullName() string {
	parts := []string{a.Surname, a.Name}
	if a.Patronymic != "" {
		parts = append(parts, a.Patronymic)
	}
	return strings.Join(parts, " ")
}

// BookSummary 作者视角下的图书摘要(id、书名、年份)
type BookSummary struct {
	ID    uint
	Title string
	Year  *uint16
}
