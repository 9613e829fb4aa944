package project

import "errors"

var (
	// ErrProjectNotFound はプロジェクトが存在しない場合のエラーです。
	ErrProjectNotFound = errors.New("project: not found")
	// ErrTaskNotFound はタスクが存在しない場合のエラーです。
	ErrTaskNotFound = errors.New("project: task not found")
	// ErrInvalidID は ID が不正な場合のエラーです。
	ErrInvalidID = errors.New("project: invalid id")
	// ErrInvalidName はプロジェクト名が不正な場合のエラーです。
	ErrInvalidName = errors.New("project: invalid name")
	// ErrInvalidTitle はタスク名が不正な場合のエラーです。
	ErrInvalidTitle = errors.New("project: invalid task title")
	// ErrInvalidStatus はタスク状態が不正な場合のエラーです。
	ErrInvalidStatus = errors.New("project: invalid task status")
)
