package comment

import "context"

// Repository 评论仓储接口
type Repository interface {
	// Create 持久化新评论
	Create(ctx context.Context, c *Comment) error

	// FindByID 根据ID查询评论（含所属图书摘要）
	FindByID(ctx context.Context, id uint) (*Comment, error)

	// ListByBookID 查询某本图书的全部评论，按发表时间倒序
	ListByBookID(ctx context.Context, bookID uint) ([]*Comment, error)

	// List 查询全部评论（含图书摘要），按发表时间倒序
	List(ctx context.Context) ([]*Comment, error)
}
