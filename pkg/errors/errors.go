package errors

import "errors"

// ErrForeignKeyViolation 外键约束被拒绝：引用的记录不存在
// 由 Repository 层在 Postgres 返回 SQLSTATE 23503 时抛出
var ErrForeignKeyViolation = errors.New("引用的记录不存在")
