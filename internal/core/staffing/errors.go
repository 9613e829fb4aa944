package staffing

import "errors"

// ErrInvalidID は社員またはプロジェクトの ID が空の場合のエラーです。
var ErrInvalidID = errors.New("staffing: invalid id")
