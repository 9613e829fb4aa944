package project

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/workforce/internal/core/change"
	"github.com/sirupsen/logrus"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Service はプロジェクトとタスクに関するユースケースをまとめます。
type Service struct {
	repo      Repository
	clock     Clock
	tx        TransactionManager
	publisher change.Publisher
	logger    logrus.FieldLogger
}

// UseCase はプロジェクトユースケースの公開インターフェースです。
type UseCase interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (*Project, error)
	UpdateProject(ctx context.Context, p *Project) (*Project, error)
	DeleteProject(ctx context.Context, id string) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	AddTask(ctx context.Context, projectID string, in CreateTaskInput) (*Project, error)
	UpdateTask(ctx context.Context, projectID string, task Task) (*Project, error)
	RemoveTask(ctx context.Context, projectID, taskID string) (*Project, error)
	SetTaskStatus(ctx context.Context, projectID, taskID string, status TaskStatus) (*Project, error)
	ReassignTask(ctx context.Context, in ReassignTaskInput) (*Project, error)
	CalculateEmployeeWorkload(ctx context.Context, employeeID string) (Workload, error)
}

// NewService は Service を生成します。nil 引数には既定値を使います。
func NewService(repo Repository, clock Clock, tx TransactionManager, publisher change.Publisher, logger logrus.FieldLogger) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if publisher == nil {
		publisher = change.NopPublisher{}
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Service{repo: repo, clock: clock, tx: tx, publisher: publisher, logger: logger}
}

// CreateProjectInput はプロジェクト作成時の入力です。
type CreateProjectInput struct {
	Name        string
	Description string
	StartDate   time.Time
	DueDate     time.Time
	Tasks       []CreateTaskInput
}

// CreateTaskInput はタスク作成時の入力です。Status が空の場合は Pending です。
type CreateTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
	AssignedTo  string
	DueDate     time.Time
}

// ReassignTaskInput はタスク担当者の付け替え入力です。
// FromEmployeeID は参考情報であり、現在の担当者との一致は確認しません。
type ReassignTaskInput struct {
	ProjectID      string
	TaskID         string
	FromEmployeeID string
	ToEmployeeID   string
}

// CreateProject はプロジェクトを末尾に追加します。
func (s *Service) CreateProject(ctx context.Context, in CreateProjectInput) (*Project, error) {
	p := &Project{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		StartDate:   s.dateOrToday(in.StartDate),
		DueDate:     s.dateOrToday(in.DueDate),
	}
	for _, ti := range in.Tasks {
		task, err := s.buildTask(ti)
		if err != nil {
			return nil, err
		}
		p.Tasks = append(p.Tasks, task)
	}
	if err := normalizeProject(p); err != nil {
		return nil, err
	}

	var created *Project
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Create(txCtx, p)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publish(ctx, change.EntityProject, change.OperationCreate, created.ID, "")
	s.logger.WithFields(logrus.Fields{"project_id": created.ID, "tasks": len(created.Tasks)}).Info("project created")
	return created, nil
}

// UpdateProject は同じ ID のプロジェクトを置き換えます。Progress はタスクから再計算されます。
// AssignedEmployees は保存済みの値が維持され、変更は staffing を経由します。
// 存在しない場合は何もせず ErrProjectNotFound を返します。
func (s *Service) UpdateProject(ctx context.Context, p *Project) (*Project, error) {
	if p == nil || strings.TrimSpace(p.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	next := p.Clone()
	for i := range next.Tasks {
		if err := normalizeTask(&next.Tasks[i]); err != nil {
			return nil, err
		}
		if next.Tasks[i].ID == "" {
			next.Tasks[i].ID = uuid.NewString()
		}
	}
	if err := normalizeProject(next); err != nil {
		return nil, err
	}

	var updated *Project
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, next.ID)
		if err != nil {
			return err
		}
		next.AssignedEmployees = existing.AssignedEmployees

		result, err := s.repo.Update(txCtx, next)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publish(ctx, change.EntityProject, change.OperationUpdate, updated.ID, "")
	return updated, nil
}

// DeleteProject は ID でプロジェクトを削除します。
func (s *Service) DeleteProject(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		return s.repo.Delete(txCtx, id)
	}); err != nil {
		return err
	}

	s.publish(ctx, change.EntityProject, change.OperationDelete, id, "")
	s.logger.WithField("project_id", id).Info("project deleted")
	return nil
}

// GetProject は ID でプロジェクトを取得します。
func (s *Service) GetProject(ctx context.Context, id string) (*Project, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Project
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		result = found
		return nil
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// ListProjects は登録順にプロジェクトを返します。
func (s *Service) ListProjects(ctx context.Context) ([]*Project, error) {
	var list []*Project
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		list = found
		return nil
	}); err != nil {
		return nil, err
	}
	if list == nil {
		list = []*Project{}
	}
	return list, nil
}

func (s *Service) publish(ctx context.Context, entity change.Entity, op change.Operation, id, parentID string) {
	s.publisher.Publish(ctx, change.Event{
		Entity:     entity,
		Operation:  op,
		ID:         id,
		ParentID:   parentID,
		OccurredAt: s.clock.Now(),
	})
}

func (s *Service) dateOrToday(t time.Time) time.Time {
	if t.IsZero() {
		t = s.clock.Now()
	}
	return normalizeDate(t)
}

func (s *Service) buildTask(in CreateTaskInput) (Task, error) {
	task := Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		AssignedTo:  in.AssignedTo,
		DueDate:     s.dateOrToday(in.DueDate),
	}
	if err := normalizeTask(&task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func normalizeProject(p *Project) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrInvalidName
	}
	p.StartDate = normalizeDate(p.StartDate)
	p.DueDate = normalizeDate(p.DueDate)
	p.AssignedEmployees = dedupe(p.AssignedEmployees)
	if p.Tasks == nil {
		p.Tasks = []Task{}
	}
	p.RecomputeProgress()
	return nil
}

func normalizeTask(t *Task) error {
	t.Title = strings.TrimSpace(t.Title)
	if t.Title == "" {
		return ErrInvalidTitle
	}
	t.Description = strings.TrimSpace(t.Description)
	t.AssignedTo = strings.TrimSpace(t.AssignedTo)
	if t.Status == "" {
		t.Status = TaskStatusPending
	}
	if !t.Status.Valid() {
		return fmt.Errorf("status %q: %w", t.Status, ErrInvalidStatus)
	}
	t.DueDate = normalizeDate(t.DueDate)
	return nil
}

func normalizeDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
