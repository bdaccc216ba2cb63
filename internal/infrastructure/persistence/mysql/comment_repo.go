package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/comment"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// commentRepository 评论仓储实现(MySQL)
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓储
func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &commentRepository{db: db}
}

// Create 持久化新评论
func (r *commentRepository) Create(ctx context.Context, c *comment.Comment) error {
	model := &CommentModel{
		BookID:       c.BookID,
		Content:      c.Content,
		TimeCreation: c.TimeCreation,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建评论失败")
	}

	c.ID = model.ID
	return nil
}

// FindByID 根据ID查询评论（含所属图书摘要）
func (r *commentRepository) FindByID(ctx context.Context, id uint) (*comment.Comment, error) {
	var model CommentModel
	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	c := toCommentEntity(&model)

	// 所属图书摘要单独查询（评论模型上没有belongs to关联）
	var bookModel BookModel
	if err := r.db.WithContext(ctx).First(&bookModel, model.BookID).Error; err == nil {
		c.Book = &comment.BookSummary{
			ID:    bookModel.ID,
			Title: bookModel.Title,
			Year:  bookModel.Year,
		}
	}

	return c, nil
}

// ListByBookID 查询某本图书的全部评论
// 按发表时间倒序，同一时刻的按ID倒序，新评论在前
func (r *commentRepository) ListByBookID(ctx context.Context, bookID uint) ([]*comment.Comment, error) {
	var models []CommentModel
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("time_creation DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论列表失败")
	}

	comments := make([]*comment.Comment, len(models))
	for i := range models {
		comments[i] = toCommentEntity(&models[i])
	}
	return comments, nil
}

// List 查询全部评论，按发表时间倒序
// 图书摘要批量补齐：先取评论，再用一次IN查询取全部关联图书
func (r *commentRepository) List(ctx context.Context) ([]*comment.Comment, error) {
	var models []CommentModel
	err := r.db.WithContext(ctx).
		Order("time_creation DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论列表失败")
	}

	bookIDs := make([]uint, 0, len(models))
	seen := make(map[uint]struct{}, len(models))
	for _, m := range models {
		if _, ok := seen[m.BookID]; ok {
			continue
		}
		seen[m.BookID] = struct{}{}
		bookIDs = append(bookIDs, m.BookID)
	}

	booksByID := make(map[uint]*BookModel, len(bookIDs))
	if len(bookIDs) > 0 {
		var bookModels []BookModel
		if err := r.db.WithContext(ctx).Where("id IN ?", bookIDs).Find(&bookModels).Error; err != nil {
			return nil, apperrors.Wrap(err, "查询评论关联图书失败")
		}
		for i := range bookModels {
			booksByID[bookModels[i].ID] = &bookModels[i]
		}
	}

	comments := make([]*comment.Comment, len(models))
	for i := range models {
		c := toCommentEntity(&models[i])
		if b, ok := booksByID[c.BookID]; ok {
			c.Book = &comment.BookSummary{ID: b.ID, Title: b.Title, Year: b.Year}
		}
		comments[i] = c
	}
	return comments, nil
}

// toCommentEntity GORM模型 → 领域实体
func toCommentEntity(model *CommentModel) *comment.Comment {
	return &comment.Comment{
		ID:           model.ID,
		BookID:       model.BookID,
		Content:      model.Content,
		TimeCreation: model.TimeCreation,
	}
}
