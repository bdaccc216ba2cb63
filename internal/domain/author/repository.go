package author

import (
	"context"
)

// Repository 作者仓储接口
// 与图书仓储对称：查询候选快照 + 整体替换关系集合
type Repository interface {
	// Create 创建作者
	Create(ctx context.Context, author *Author) error

	// FindByID 根据ID查找作者（含图书摘要）
	FindByID(ctx context.Context, id uint) (*Author, error)

	// FindBySurname 按姓精确查找所有候选行
	// 名与父称的精确匹配由调和引擎的纯函数完成
	FindBySurname(ctx context.Context, surname string) ([]*Author, error)

	// Update 覆盖作者标量字段（不触碰图书关系）
	Update(ctx context.Context, author *Author) error

	// Delete 删除作者；解除图书关系但不删除图书
	Delete(ctx context.Context, id uint) error

	// List 返回全部作者（插入顺序），不分页
	List(ctx context.Context) ([]*Author, error)

	// ReplaceBooks 用bookIDs整体替换作者的图书关系集合
	ReplaceBooks(ctx context.Context, authorID uint, bookIDs []uint) error
}
