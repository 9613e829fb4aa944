package project

import "context"

// Repository はプロジェクトコレクションの保持を抽象化します。List は挿入順を保ちます。
type Repository interface {
	Create(ctx context.Context, project *Project) (*Project, error)
	Update(ctx context.Context, project *Project) (*Project, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
}
