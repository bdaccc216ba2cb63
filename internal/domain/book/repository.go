package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 关系操作(ReplaceAuthors)只做"替换"，"空列表不改动关系"的
//    规则由调用方(调和引擎)把关，仓储层不隐藏该策略
type Repository interface {
	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书（含作者、评论）
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByTitle 按书名精确查找所有候选行
	// 年份的匹配（含NULL=NULL语义）由调和引擎的纯函数完成，
	// 仓储只负责给出书名命中的快照
	FindByTitle(ctx context.Context, title string) ([]*Book, error)

	// Update 覆盖图书标量字段（不触碰作者关系与评论）
	Update(ctx context.Context, book *Book) error

	// Delete 删除图书，级联删除其评论；作者关系解除但不删除作者
	Delete(ctx context.Context, id uint) error

	// List 分页查询图书列表（按书名升序），返回当前页与总数
	List(ctx context.Context, page, pageSize int) ([]*Book, int64, error)

	// ReplaceAuthors 用authorIDs整体替换图书的作者关系集合
	ReplaceAuthors(ctx context.Context, bookID uint, authorIDs []uint) error
}
