package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 教学要点：
// 1. AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 2. many2many标签会自动建出book_authors联结表（复合主键）
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&BookModel{},
		&CommentModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/book/entity.go是领域实体，不依赖GORM
// 3. (title, year)是业务自然键但刻意不加唯一索引：允许重名行并存
// 4. Year用指针映射可空列，NULL表示年份未知
type BookModel struct {
	ID        uint           `gorm:"primaryKey"`
	Title     string         `gorm:"index;size:200;not null;comment:书名"`
	Year      *uint16        `gorm:"comment:出版年份(可空)"`
	Authors   []*AuthorModel `gorm:"many2many:book_authors"`
	Comments  []CommentModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// AuthorModel GORM作者模型
// 设计说明:
// 1. (surname, name, patronymic)是业务自然键，同样不加唯一索引
// 2. 父称空串表示没有，列上加default:''避免NULL/''两种空值并存
type AuthorModel struct {
	ID         uint         `gorm:"primaryKey"`
	Surname    string       `gorm:"index;size:100;not null;comment:姓"`
	Name       string       `gorm:"size:100;not null;comment:名"`
	Patronymic string       `gorm:"size:100;not null;default:'';comment:父称"`
	Year       *uint16      `gorm:"comment:出生年份(可空)"`
	Books      []*BookModel `gorm:"many2many:book_authors"`
	CreatedAt  time.Time    `gorm:"comment:创建时间"`
	UpdatedAt  time.Time    `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CommentModel GORM评论模型
// 教学要点:
// 1. BookID外键带OnDelete:CASCADE，删书时评论随之删除
// 2. time_creation加索引支撑"新评论在前"的排序查询
type CommentModel struct {
	ID           uint      `gorm:"primaryKey"`
	BookID       uint      `gorm:"index;not null;comment:所属图书ID"`
	Content      string    `gorm:"type:text;not null;comment:评论内容"`
	TimeCreation time.Time `gorm:"index;not null;comment:发表时间"`
}

// TableName 指定表名
func (CommentModel) TableName() string {
	return "comments"
}
