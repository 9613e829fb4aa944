package memory

import "errors"

// ErrDuplicateID は同じ ID のエンティティが既に存在する場合のエラーです。
var ErrDuplicateID = errors.New("memory: duplicate id")
