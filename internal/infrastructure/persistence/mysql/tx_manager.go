package mysql

import (
	"context"

	"gorm.io/gorm"
)

// TxManager 事务管理器
// 教学要点:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 仓储的getDB方法从context提取事务DB，自动参与事务
//
// 调和流程默认不开事务（与database.reconcile_in_tx开关配合），
// 开启后"查候选-新建-替换关系"序列在同一事务内执行，
// 并发写入相同自然键时可避免重复创建
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    b, err := bookService.CreateBook(ctx, title, year)
//	    if err != nil {
//	        return err
//	    }
//	    _, err = reconciler.ReconcileBookAuthors(ctx, b.ID, refs)
//	    return err // nil则提交,非nil则回滚
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return fn(txCtx)
	})
}
