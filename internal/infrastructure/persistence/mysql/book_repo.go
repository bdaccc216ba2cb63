package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/book"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 所有方法通过getDB(ctx)取连接，调和流程开事务时自动参与
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := &BookModel{
		Title: b.Title,
		Year:  b.Year,
	}

	// 2. 插入数据库
	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 3. 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找图书（含作者与评论）
// 评论按发表时间倒序预加载，新评论在前
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.getDB(ctx).
		Preload("Authors").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("time_creation DESC, id DESC")
		}).
		First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// FindByTitle 按书名精确查找候选行
// 年份匹配由调和引擎在内存中完成，这里不预加载关联
func (r *bookRepository) FindByTitle(ctx context.Context, title string) ([]*book.Book, error) {
	var models []BookModel
	err := r.getDB(ctx).Where("title = ?", title).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书候选失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

// Update 覆盖图书标量字段
// 用map而不是struct做Updates：Year为nil时也要写入NULL
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := r.getDB(ctx).Model(&BookModel{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"title": b.Title,
			"year":  b.Year,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Delete 删除图书
// 业务规则：级联删除评论、解除作者关系，但不删除作者本身
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		var model BookModel
		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return book.ErrBookNotFound
			}
			return apperrors.Wrap(err, "查询图书失败")
		}

		if err := tx.Where("book_id = ?", id).Delete(&CommentModel{}).Error; err != nil {
			return apperrors.Wrap(err, "删除图书评论失败")
		}

		if err := tx.Model(&model).Association("Authors").Clear(); err != nil {
			return apperrors.Wrap(err, "解除作者关系失败")
		}

		if err := tx.Delete(&model).Error; err != nil {
			return apperrors.Wrap(err, "删除图书失败")
		}
		return nil
	})
}

// List 分页查询图书列表
// 按书名升序排列，返回当前页数据与总数
func (r *bookRepository) List(ctx context.Context, page, pageSize int) ([]*book.Book, int64, error) {
	var models []BookModel
	var total int64

	query := r.getDB(ctx).Model(&BookModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.
		Preload("Authors").
		Order("title ASC, id ASC").
		Limit(pageSize).Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, total, nil
}

// ReplaceAuthors 整体替换图书的作者关系集合
// 教学要点:Association.Replace只改联结表，不触碰authors表本身
func (r *bookRepository) ReplaceAuthors(ctx context.Context, bookID uint, authorIDs []uint) error {
	authors := make([]*AuthorModel, len(authorIDs))
	for i, id := range authorIDs {
		authors[i] = &AuthorModel{ID: id}
	}

	err := r.getDB(ctx).Model(&BookModel{ID: bookID}).
		Association("Authors").Replace(authors)
	if err != nil {
		return apperrors.Wrap(err, "替换图书作者关系失败")
	}
	return nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	b := &book.Book{
		ID:        model.ID,
		Title:     model.Title,
		Year:      model.Year,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	for _, a := range model.Authors {
		b.Authors = append(b.Authors, book.AuthorSummary{
			ID:         a.ID,
			Surname:    a.Surname,
			Name:       a.Name,
			Patronymic: a.Patronymic,
			Year:       a.Year,
		})
	}

	for _, c := range model.Comments {
		b.Comments = append(b.Comments, book.CommentSummary{
			ID:           c.ID,
			TimeCreation: c.TimeCreation,
			Content:      c.Content,
		})
	}

	return b
}

// getDB 从context获取事务DB,如果没有则使用默认DB
// 教学要点:事务传递机制
func (r *bookRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
