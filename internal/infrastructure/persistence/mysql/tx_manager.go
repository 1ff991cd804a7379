package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-api/internal/domain/shared"
)

// txKey context中事务DB的key(非导出类型,避免与其他包冲突)
type txKey struct{}

// TxManager 事务管理器
// 1. 通过context传递事务DB,不使用全局变量
// 2. ctx中已有事务时复用该事务(GORM使用SAVEPOINT),不会另开连接
type TxManager struct {
	db *gorm.DB
}

var _ shared.Transactor = (*TxManager)(nil)

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn返回error时ROLLBACK,返回nil时COMMIT;fn内的Repository操作通过ctx参与同一事务
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := bookRepo.Create(ctx, b); err != nil {
//	        return err
//	    }
//	    return tagRepo.AttachToBook(ctx, b.ID, tagID)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return getDB(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// getDB 从context获取事务DB,没有则使用默认DB
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
