package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/author"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// authorRepository 作者仓储实现(MySQL)
// 与图书仓储结构对称
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

// Create 创建作者
func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{
		Surname:    a.Surname,
		Name:       a.Name,
		Patronymic: a.Patronymic,
		Year:       a.Year,
	}

	if err := r.getDB(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建作者失败")
	}

	a.ID = model.ID
	a.CreatedAt = model.CreatedAt
	a.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找作者（含图书摘要）
func (r *authorRepository) FindByID(ctx context.Context, id uint) (*author.Author, error) {
	var model AuthorModel
	err := r.getDB(ctx).Preload("Books").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, apperrors.Wrap(err, "查询作者失败")
	}

	return toAuthorEntity(&model), nil
}

// FindBySurname 按姓精确查找候选行
// 名与父称的比较由调和引擎在内存中完成
func (r *authorRepository) FindBySurname(ctx context.Context, surname string) ([]*author.Author, error) {
	var models []AuthorModel
	err := r.getDB(ctx).Where("surname = ?", surname).Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者候选失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// Update 覆盖作者标量字段
// Year为nil时同样要写入NULL，所以用map做Updates
func (r *authorRepository) Update(ctx context.Context, a *author.Author) error {
	result := r.getDB(ctx).Model(&AuthorModel{}).
		Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"surname":    a.Surname,
			"name":       a.Name,
			"patronymic": a.Patronymic,
			"year":       a.Year,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新作者失败")
	}
	if result.RowsAffected == 0 {
		return author.ErrAuthorNotFound
	}
	return nil
}

// Delete 删除作者
// 业务规则：解除图书关系但不删除图书
func (r *authorRepository) Delete(ctx context.Context, id uint) error {
	return r.getDB(ctx).Transaction(func(tx *gorm.DB) error {
		var model AuthorModel
		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return author.ErrAuthorNotFound
			}
			return apperrors.Wrap(err, "查询作者失败")
		}

		if err := tx.Model(&model).Association("Books").Clear(); err != nil {
			return apperrors.Wrap(err, "解除图书关系失败")
		}

		if err := tx.Delete(&model).Error; err != nil {
			return apperrors.Wrap(err, "删除作者失败")
		}
		return nil
	})
}

// List 返回全部作者（插入顺序）
func (r *authorRepository) List(ctx context.Context) ([]*author.Author, error) {
	var models []AuthorModel
	err := r.getDB(ctx).Preload("Books").Order("id ASC").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询作者列表失败")
	}

	authors := make([]*author.Author, len(models))
	for i := range models {
		authors[i] = toAuthorEntity(&models[i])
	}
	return authors, nil
}

// ReplaceBooks 整体替换作者的图书关系集合
func (r *authorRepository) ReplaceBooks(ctx context.Context, authorID uint, bookIDs []uint) error {
	books := make([]*BookModel, len(bookIDs))
	for i, id := range bookIDs {
		books[i] = &BookModel{ID: id}
	}

	err := r.getDB(ctx).Model(&AuthorModel{ID: authorID}).
		Association("Books").Replace(books)
	if err != nil {
		return apperrors.Wrap(err, "替换作者图书关系失败")
	}
	return nil
}

// toAuthorEntity GORM模型 → 领域实体
func toAuthorEntity(model *AuthorModel) *author.Author {
	a := &author.Author{
		ID:         model.ID,
		Surname:    model.Surname,
		Name:       model.Name,
		Patronymic: model.Patronymic,
		Year:       model.Year,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}

	for _, b := range model.Books {
		a.Books = append(a.Books, author.BookSummary{
			ID:    b.ID,
			Title: b.Title,
			Year:  b.Year,
		})
	}

	return a
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func (r *authorRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value("tx").(*gorm.DB); ok {
		return tx
	}
	return r.db.WithContext(ctx)
}
