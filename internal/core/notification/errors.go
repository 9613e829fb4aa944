package notification

import "errors"

var (
	// ErrNotificationNotFound は通知が存在しない場合に返却されます。状態は変更されません。
	ErrNotificationNotFound = errors.New("notification: not found")
	// ErrInvalidID は ID が不正な場合に返却されます。
	ErrInvalidID = errors.New("notification: invalid id")
	// ErrInvalidTitle はタイトルが空の場合に返却されます。
	ErrInvalidTitle = errors.New("notification: invalid title")
	// ErrInvalidType は通知種別が不正な場合に返却されます。
	ErrInvalidType = errors.New("notification: invalid type")
)
