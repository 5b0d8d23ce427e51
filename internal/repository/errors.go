package repository

import (
	"errors"
)

// ErrStaleRecord 条件更新未命中任何行：记录已被并发修改或已不存在。
// 由服务层重查存在性后折算为 404 或 409。
var ErrStaleRecord = errors.New("record was modified or removed concurrently")
