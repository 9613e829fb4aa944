package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/ogurasousui/workforce/internal/core/project"
)

// ProjectRepository はプロセス内メモリを利用したプロジェクトコレクションの実装です。
type ProjectRepository struct {
	mu       sync.RWMutex
	projects []*project.Project
}

// NewProjectRepository は ProjectRepository を生成します。
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// Create はプロジェクトを末尾に追加します。
func (r *ProjectRepository) Create(_ context.Context, p *project.Project) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(p.ID) >= 0 {
		return nil, fmt.Errorf("project %s: %w", p.ID, ErrDuplicateID)
	}
	r.projects = append(r.projects, p.Clone())
	return p.Clone(), nil
}

// Update は同じ ID のプロジェクトを置き換えます。
func (r *ProjectRepository) Update(_ context.Context, p *project.Project) (*project.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(p.ID)
	if idx < 0 {
		return nil, fmt.Errorf("project %s: %w", p.ID, project.ErrProjectNotFound)
	}
	r.projects[idx] = p.Clone()
	return p.Clone(), nil
}

// Delete は ID でプロジェクトを削除します。
func (r *ProjectRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("project %s: %w", id, project.ErrProjectNotFound)
	}
	r.projects = slices.Delete(r.projects, idx, idx+1)
	return nil
}

// FindByID は ID でプロジェクトを取得します。
func (r *ProjectRepository) FindByID(_ context.Context, id string) (*project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("project %s: %w", id, project.ErrProjectNotFound)
	}
	return r.projects[idx].Clone(), nil
}

// List は挿入順にプロジェクトを返します。
func (r *ProjectRepository) List(_ context.Context) ([]*project.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*project.Project, 0, len(r.projects))
	for _, p := range r.projects {
		list = append(list, p.Clone())
	}
	return list, nil
}

func (r *ProjectRepository) indexOf(id string) int {
	return slices.IndexFunc(r.projects, func(p *project.Project) bool { return p.ID == id })
}
