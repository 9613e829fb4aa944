package staffing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/ogurasousui/workforce/internal/core/employee"
	"github.com/ogurasousui/workforce/internal/core/project"
	"github.com/sirupsen/logrus"
)

// TransactionManager はトランザクション制御の抽象化です。
// 社員側とプロジェクト側の両方をひとつの読み書きトランザクションで更新するために使います。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// EmployeeStore は staffing が利用する社員側の操作です。
type EmployeeStore interface {
	GetEmployee(ctx context.Context, id string) (*employee.Employee, error)
	ListEmployees(ctx context.Context, in employee.ListEmployeesInput) ([]*employee.Employee, error)
	AddProject(ctx context.Context, id, projectID string) (*employee.Employee, error)
	RemoveProject(ctx context.Context, id, projectID string) (*employee.Employee, error)
}

// ProjectStore は staffing が利用するプロジェクト側の操作です。
type ProjectStore interface {
	GetProject(ctx context.Context, id string) (*project.Project, error)
	AssignEmployee(ctx context.Context, projectID, employeeID string) (*project.Project, error)
	HandleEmployeeRemoval(ctx context.Context, projectID, employeeID string) (*project.Project, error)
}

// Assignment は割り当て操作後の双方の状態です。Employee は社員が既に存在しない場合 nil です。
type Assignment struct {
	Employee *employee.Employee
	Project  *project.Project
}

// UseCase は社員とプロジェクトをまたぐ操作の公開インターフェースです。
type UseCase interface {
	AssignEmployee(ctx context.Context, employeeID, projectID string) (*Assignment, error)
	RemoveEmployee(ctx context.Context, employeeID, projectID string) (*Assignment, error)
	ProjectMembers(ctx context.Context, projectID string) ([]*employee.Employee, error)
	AvailableEmployees(ctx context.Context, projectID string) ([]*employee.Employee, error)
	EmployeeProjects(ctx context.Context, employeeID string) ([]*project.Project, error)
}

// Service は社員とプロジェクトの相互参照を一貫して更新する唯一の入口です。
type Service struct {
	employees EmployeeStore
	projects  ProjectStore
	tx        TransactionManager
	logger    logrus.FieldLogger
}

// NewService は Service を生成します。
func NewService(employees EmployeeStore, projects ProjectStore, tx TransactionManager, logger logrus.FieldLogger) *Service {
	if tx == nil {
		tx = noopTransactionManager{}
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Service{employees: employees, projects: projects, tx: tx, logger: logger}
}

// AssignEmployee は社員をプロジェクトに割り当て、双方の集合を更新します。
// どちらかが存在しない場合は何も変更しません。
func (s *Service) AssignEmployee(ctx context.Context, employeeID, projectID string) (*Assignment, error) {
	if err := validateIDs(employeeID, projectID); err != nil {
		return nil, err
	}

	result := &Assignment{}
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if _, err := s.employees.GetEmployee(txCtx, employeeID); err != nil {
			return err
		}
		if _, err := s.projects.GetProject(txCtx, projectID); err != nil {
			return err
		}

		p, err := s.projects.AssignEmployee(txCtx, projectID, employeeID)
		if err != nil {
			return err
		}
		e, err := s.employees.AddProject(txCtx, employeeID, projectID)
		if err != nil {
			return err
		}
		result.Project, result.Employee = p, e
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "project_id": projectID}).Info("employee assigned to project")
	return result, nil
}

// RemoveEmployee は社員をプロジェクトから外し、その社員のタスクを未割り当てに戻します。
// 社員が既に削除されている場合はプロジェクト側のみ更新します。
func (s *Service) RemoveEmployee(ctx context.Context, employeeID, projectID string) (*Assignment, error) {
	if err := validateIDs(employeeID, projectID); err != nil {
		return nil, err
	}

	result := &Assignment{}
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		if _, err := s.projects.GetProject(txCtx, projectID); err != nil {
			return err
		}

		var employeeExists bool
		if _, err := s.employees.GetEmployee(txCtx, employeeID); err == nil {
			employeeExists = true
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}

		p, err := s.projects.HandleEmployeeRemoval(txCtx, projectID, employeeID)
		if err != nil {
			return err
		}
		result.Project = p

		if employeeExists {
			e, err := s.employees.RemoveProject(txCtx, employeeID, projectID)
			if err != nil {
				return err
			}
			result.Employee = e
		}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"employee_id": employeeID, "project_id": projectID}).Info("employee removed from project")
	return result, nil
}

// ProjectMembers はプロジェクトに割り当てられた社員を割り当て順に返します。
// 既に存在しない社員の ID は読み飛ばします。
func (s *Service) ProjectMembers(ctx context.Context, projectID string) ([]*employee.Employee, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("project id: %w", ErrInvalidID)
	}

	members := []*employee.Employee{}
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		p, err := s.projects.GetProject(txCtx, projectID)
		if err != nil {
			return err
		}
		for _, id := range p.AssignedEmployees {
			e, err := s.employees.GetEmployee(txCtx, id)
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			members = append(members, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}

// AvailableEmployees はプロジェクトにまだ割り当てられていない社員を返します。
func (s *Service) AvailableEmployees(ctx context.Context, projectID string) ([]*employee.Employee, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("project id: %w", ErrInvalidID)
	}

	var available []*employee.Employee
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		p, err := s.projects.GetProject(txCtx, projectID)
		if err != nil {
			return err
		}
		all, err := s.employees.ListEmployees(txCtx, employee.ListEmployeesInput{IncludeInactive: true})
		if err != nil {
			return err
		}
		available = slices.DeleteFunc(all, func(e *employee.Employee) bool {
			return p.HasEmployee(e.ID)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return available, nil
}

// EmployeeProjects は社員が所属するプロジェクトを返します。既に存在しないプロジェクトは読み飛ばします。
func (s *Service) EmployeeProjects(ctx context.Context, employeeID string) ([]*project.Project, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, fmt.Errorf("employee id: %w", ErrInvalidID)
	}

	projects := []*project.Project{}
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		e, err := s.employees.GetEmployee(txCtx, employeeID)
		if err != nil {
			return err
		}
		for _, id := range e.ProjectIDs {
			p, err := s.projects.GetProject(txCtx, id)
			if errors.Is(err, project.ErrProjectNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			projects = append(projects, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projects, nil
}

func validateIDs(employeeID, projectID string) error {
	if strings.TrimSpace(employeeID) == "" {
		return fmt.Errorf("employee id: %w", ErrInvalidID)
	}
	if strings.TrimSpace(projectID) == "" {
		return fmt.Errorf("project id: %w", ErrInvalidID)
	}
	return nil
}
