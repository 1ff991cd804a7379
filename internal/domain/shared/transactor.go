// Package shared 各领域共用的抽象
package shared

import "context"

// Transactor 事务边界
// fn内通过txCtx调用的Repository方法都在同一事务中执行,fn返回error时回滚。
// 已处于事务中的ctx再次调用时使用Savepoint嵌套。
type Transactor interface {
	Transaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
