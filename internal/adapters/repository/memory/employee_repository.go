package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/ogurasousui/workforce/internal/core/employee"
)

// EmployeeRepository はプロセス内メモリを利用した社員コレクションの実装です。
// 読み書きともに複製を受け渡すため、呼び出し側から保存内容を変更できません。
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []*employee.Employee
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

// Create は社員を末尾に追加します。
func (r *EmployeeRepository) Create(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(e.ID) >= 0 {
		return nil, fmt.Errorf("employee %s: %w", e.ID, ErrDuplicateID)
	}
	r.employees = append(r.employees, e.Clone())
	return e.Clone(), nil
}

// Update は同じ ID の社員を置き換えます。
func (r *EmployeeRepository) Update(_ context.Context, e *employee.Employee) (*employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(e.ID)
	if idx < 0 {
		return nil, fmt.Errorf("employee %s: %w", e.ID, employee.ErrEmployeeNotFound)
	}
	r.employees[idx] = e.Clone()
	return e.Clone(), nil
}

// DeleteAt は挿入順の位置で社員を削除し、削除した社員を元の順序で返します。
// 重複した位置は一度だけ扱います。範囲外の位置が含まれる場合は何も削除しません。
func (r *EmployeeRepository) DeleteAt(_ context.Context, indexes []int) ([]*employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	positions := slices.Clone(indexes)
	slices.Sort(positions)
	positions = slices.Compact(positions)
	for _, idx := range positions {
		if idx < 0 || idx >= len(r.employees) {
			return nil, fmt.Errorf("index %d: %w", idx, employee.ErrInvalidIndex)
		}
	}

	removed := make([]*employee.Employee, 0, len(positions))
	for _, idx := range positions {
		removed = append(removed, r.employees[idx])
	}
	for i := len(positions) - 1; i >= 0; i-- {
		idx := positions[i]
		r.employees = slices.Delete(r.employees, idx, idx+1)
	}
	return removed, nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(_ context.Context, id string) (*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("employee %s: %w", id, employee.ErrEmployeeNotFound)
	}
	return r.employees[idx].Clone(), nil
}

// List は挿入順に社員を返します。
func (r *EmployeeRepository) List(_ context.Context) ([]*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		list = append(list, e.Clone())
	}
	return list, nil
}

func (r *EmployeeRepository) indexOf(id string) int {
	return slices.IndexFunc(r.employees, func(e *employee.Employee) bool { return e.ID == id })
}
