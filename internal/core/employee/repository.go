package employee

import "context"

// Repository は社員コレクションの保持を抽象化します。
// List は挿入順を保ち、DeleteAt の位置はこの順序に対するインデックスです。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	DeleteAt(ctx context.Context, indexes []int) ([]*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	List(ctx context.Context) ([]*Employee, error)
}
