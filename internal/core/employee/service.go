package employee

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/workforce/internal/core/change"
	"github.com/ogurasousui/workforce/internal/core/notification"
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

// Notifier は通知レジストリへの書き込み口です。
type Notifier interface {
	AddNotification(ctx context.Context, in notification.AddNotificationInput) (*notification.Notification, error)
}

type nopNotifier struct{}

func (nopNotifier) AddNotification(context.Context, notification.AddNotificationInput) (*notification.Notification, error) {
	return nil, nil
}

// Service は社員に関するユースケースをまとめます。
type Service struct {
	repo      Repository
	notifier  Notifier
	clock     Clock
	tx        TransactionManager
	publisher change.Publisher
	logger    logrus.FieldLogger
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	AddEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error)
	UpdateEmployee(ctx context.Context, e *Employee) (*Employee, error)
	DeleteEmployees(ctx context.Context, indexes []int) ([]*Employee, error)
	GetEmployee(ctx context.Context, id string) (*Employee, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) ([]*Employee, error)
	Departments(ctx context.Context) ([]string, error)
	DepartmentStats(ctx context.Context) ([]DepartmentCount, error)
	AveragePerformance(ctx context.Context) (float64, error)
	PerformanceSummary(ctx context.Context) (*PerformanceSummary, error)
	UpdatePerformanceRating(ctx context.Context, id string, rating int) (*Employee, error)
	RequestVacation(ctx context.Context, id string, days int) (*Employee, error)
	SendNotification(ctx context.Context, id string, in SendNotificationInput) (*notification.Notification, error)
}

// NewService は Service を生成します。nil 引数には既定値を使います。
func NewService(repo Repository, notifier Notifier, clock Clock, tx TransactionManager, publisher change.Publisher, logger logrus.FieldLogger) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
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
	return &Service{repo: repo, notifier: notifier, clock: clock, tx: tx, publisher: publisher, logger: logger}
}

// CreateEmployeeInput は社員作成時の入力です。nil のフィールドには既定値が入ります。
type CreateEmployeeInput struct {
	Name                  string
	Position              string
	Department            string
	Email                 string
	Phone                 string
	StartDate             *time.Time
	IsActive              *bool
	PerformanceRating     float64
	RemainingVacationDays *int
	Skills                []string
}

// ListEmployeesInput は一覧取得時の絞り込み条件です。
// Department が空または AllDepartments の場合は全部署が対象です。
type ListEmployeesInput struct {
	SearchText      string
	Department      string
	IncludeInactive bool
}

// AddEmployee は社員を末尾に追加し、新入社員通知を送ります。
func (s *Service) AddEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	emp, err := s.buildEmployee(in)
	if err != nil {
		return nil, err
	}

	var created *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		result, err := s.repo.Create(txCtx, emp)
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publish(ctx, change.OperationCreate, created.ID)
	s.logger.WithFields(logrus.Fields{"employee_id": created.ID, "department": created.Department}).Info("employee added")

	if _, err := s.notifier.AddNotification(ctx, notification.AddNotificationInput{
		Type:         notification.TypeNewEmployee,
		Title:        "Yeni Çalışan",
		Message:      "Ekibe katıldı",
		EmployeeName: created.Name,
	}); err != nil {
		s.logger.WithError(err).WithField("employee_id", created.ID).Warn("new employee notification failed")
	}

	return created, nil
}

// UpdateEmployee は同じ ID の社員を置き換えます。
// ProjectIDs は保存済みの値が維持され、変更は staffing を経由します。
// 存在しない場合は何もせず ErrEmployeeNotFound を返します。
func (s *Service) UpdateEmployee(ctx context.Context, e *Employee) (*Employee, error) {
	if e == nil || strings.TrimSpace(e.ID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	next, err := normalizeEmployee(e.Clone())
	if err != nil {
		return nil, err
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, next.ID)
		if err != nil {
			return err
		}
		next.ProjectIDs = existing.ProjectIDs

		result, err := s.repo.Update(txCtx, next)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publish(ctx, change.OperationUpdate, updated.ID)
	return updated, nil
}

// DeleteEmployees はフィルタ前のコレクションにおける位置で社員を削除します。
// 範囲外の位置が含まれる場合は何も削除せず ErrInvalidIndex を返します。
func (s *Service) DeleteEmployees(ctx context.Context, indexes []int) ([]*Employee, error) {
	var removed []*Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		current, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}
		for _, idx := range indexes {
			if idx < 0 || idx >= len(current) {
				return fmt.Errorf("index %d: %w", idx, ErrInvalidIndex)
			}
		}

		result, err := s.repo.DeleteAt(txCtx, indexes)
		if err != nil {
			return err
		}
		removed = result
		return nil
	}); err != nil {
		return nil, err
	}

	for _, emp := range removed {
		s.publish(ctx, change.OperationDelete, emp.ID)
	}
	return removed, nil
}

// GetEmployee は ID で社員を取得します。
func (s *Service) GetEmployee(ctx context.Context, id string) (*Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var result *Employee
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

// FilterEmployees は条件に一致する社員を遅延評価で列挙します。
// 呼び出し時点のスナップショットを対象とし、コレクション自体は変更しません。
func (s *Service) FilterEmployees(ctx context.Context, in ListEmployeesInput) (iter.Seq[*Employee], error) {
	snapshot, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	match := newMatcher(in)
	return func(yield func(*Employee) bool) {
		for _, emp := range snapshot {
			if !match(emp) {
				continue
			}
			if !yield(emp) {
				return
			}
		}
	}, nil
}

// ListEmployees は FilterEmployees の結果をスライスで返します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) ([]*Employee, error) {
	seq, err := s.FilterEmployees(ctx, in)
	if err != nil {
		return nil, err
	}
	result := slices.Collect(seq)
	if result == nil {
		result = []*Employee{}
	}
	return result, nil
}

func (s *Service) snapshot(ctx context.Context) ([]*Employee, error) {
	var list []*Employee
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
	return list, nil
}

func (s *Service) publish(ctx context.Context, op change.Operation, id string) {
	s.publisher.Publish(ctx, change.Event{
		Entity:     change.EntityEmployee,
		Operation:  op,
		ID:         id,
		OccurredAt: s.clock.Now(),
	})
}

func (s *Service) buildEmployee(in CreateEmployeeInput) (*Employee, error) {
	startDate := s.clock.Now()
	if in.StartDate != nil {
		startDate = *in.StartDate
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	vacation := defaultVacationDays
	if in.RemainingVacationDays != nil {
		vacation = *in.RemainingVacationDays
	}

	return normalizeEmployee(&Employee{
		ID:                    uuid.NewString(),
		Name:                  in.Name,
		Position:              in.Position,
		Department:            in.Department,
		Email:                 in.Email,
		Phone:                 in.Phone,
		StartDate:             startDate,
		IsActive:              active,
		PerformanceRating:     in.PerformanceRating,
		RemainingVacationDays: vacation,
		Skills:                slices.Clone(in.Skills),
	})
}

func normalizeEmployee(e *Employee) (*Employee, error) {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return nil, ErrInvalidName
	}

	e.Position = strings.TrimSpace(e.Position)
	if e.Position == "" {
		return nil, ErrInvalidPosition
	}

	e.Department = strings.TrimSpace(e.Department)
	e.Phone = strings.TrimSpace(e.Phone)

	email, err := normalizeEmail(e.Email)
	if err != nil {
		return nil, err
	}
	e.Email = email

	if e.PerformanceRating < 0 || e.PerformanceRating > 5 {
		return nil, ErrInvalidPerformanceRating
	}
	if e.RemainingVacationDays < 0 {
		return nil, ErrInvalidVacationDays
	}

	e.StartDate = normalizeDate(e.StartDate)
	e.ProjectIDs = dedupe(e.ProjectIDs)
	if e.Skills == nil {
		e.Skills = []string{}
	}
	return e, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}

func normalizeDate(t time.Time) time.Time {
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
