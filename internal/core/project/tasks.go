package project

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ogurasousui/workforce/internal/core/change"
	"github.com/sirupsen/logrus"
)

// AddTask はタスクをプロジェクト末尾に追加し、進捗を再計算します。
func (s *Service) AddTask(ctx context.Context, projectID string, in CreateTaskInput) (*Project, error) {
	task, err := s.buildTask(in)
	if err != nil {
		return nil, err
	}

	updated, err := s.mutate(ctx, projectID, func(p *Project) error {
		p.Tasks = append(p.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, change.EntityTask, change.OperationCreate, task.ID, projectID)
	return updated, nil
}

// UpdateTask は同じ ID のタスクを置き換え、進捗を再計算します。
func (s *Service) UpdateTask(ctx context.Context, projectID string, task Task) (*Project, error) {
	if strings.TrimSpace(task.ID) == "" {
		return nil, fmt.Errorf("task id: %w", ErrInvalidID)
	}
	if err := normalizeTask(&task); err != nil {
		return nil, err
	}

	updated, err := s.mutateTask(ctx, projectID, task.ID, func(t *Task) error {
		*t = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, change.EntityTask, change.OperationUpdate, task.ID, projectID)
	return updated, nil
}

// RemoveTask はタスクを削除し、進捗を再計算します。
func (s *Service) RemoveTask(ctx context.Context, projectID, taskID string) (*Project, error) {
	updated, err := s.mutate(ctx, projectID, func(p *Project) error {
		idx := p.taskIndex(taskID)
		if idx < 0 {
			return fmt.Errorf("task %s: %w", taskID, ErrTaskNotFound)
		}
		p.Tasks = slices.Delete(p.Tasks, idx, idx+1)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, change.EntityTask, change.OperationDelete, taskID, projectID)
	return updated, nil
}

// SetTaskStatus はタスクの状態を変更し、進捗を再計算します。
func (s *Service) SetTaskStatus(ctx context.Context, projectID, taskID string, status TaskStatus) (*Project, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, ErrInvalidStatus)
	}

	updated, err := s.mutateTask(ctx, projectID, taskID, func(t *Task) error {
		t.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, change.EntityTask, change.OperationUpdate, taskID, projectID)
	return updated, nil
}

// ReassignTask はタスクの担当者を付け替えます。状態は変更しません。
func (s *Service) ReassignTask(ctx context.Context, in ReassignTaskInput) (*Project, error) {
	to := strings.TrimSpace(in.ToEmployeeID)
	if to == "" {
		return nil, fmt.Errorf("employee id: %w", ErrInvalidID)
	}

	updated, err := s.mutateTask(ctx, in.ProjectID, in.TaskID, func(t *Task) error {
		if in.FromEmployeeID != "" && t.AssignedTo != in.FromEmployeeID {
			s.logger.WithFields(logrus.Fields{
				"task_id":  t.ID,
				"expected": in.FromEmployeeID,
				"actual":   t.AssignedTo,
			}).Debug("reassigning task from a different assignee")
		}
		t.AssignedTo = to
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, change.EntityTask, change.OperationUpdate, in.TaskID, in.ProjectID)
	return updated, nil
}

// AssignEmployee はプロジェクト側の割り当て集合に社員を加えます。
// 社員側の所属は更新しないため、通常は staffing 経由で呼び出します。
func (s *Service) AssignEmployee(ctx context.Context, projectID, employeeID string) (*Project, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, fmt.Errorf("employee id: %w", ErrInvalidID)
	}
	return s.mutate(ctx, projectID, func(p *Project) error {
		if !p.HasEmployee(employeeID) {
			p.AssignedEmployees = append(p.AssignedEmployees, employeeID)
		}
		return nil
	})
}

// HandleEmployeeRemoval は社員をプロジェクトから外し、その社員のタスクを未割り当ての Pending に戻します。
func (s *Service) HandleEmployeeRemoval(ctx context.Context, projectID, employeeID string) (*Project, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, fmt.Errorf("employee id: %w", ErrInvalidID)
	}

	reset := 0
	updated, err := s.mutate(ctx, projectID, func(p *Project) error {
		for i := range p.Tasks {
			if p.Tasks[i].AssignedTo == employeeID {
				p.Tasks[i].AssignedTo = ""
				p.Tasks[i].Status = TaskStatusPending
				reset++
			}
		}
		p.AssignedEmployees = slices.DeleteFunc(p.AssignedEmployees, func(id string) bool { return id == employeeID })
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"project_id":  projectID,
		"employee_id": employeeID,
		"tasks_reset": reset,
	}).Info("employee removed from project")
	return updated, nil
}

// CalculateEmployeeWorkload は全プロジェクトを通じて社員に割り当てられたタスク数を集計します。
func (s *Service) CalculateEmployeeWorkload(ctx context.Context, employeeID string) (Workload, error) {
	list, err := s.ListProjects(ctx)
	if err != nil {
		return Workload{}, err
	}

	var w Workload
	if employeeID == "" {
		return w, nil
	}
	for _, p := range list {
		for _, t := range p.Tasks {
			if t.AssignedTo != employeeID {
				continue
			}
			w.Total++
			switch t.Status {
			case TaskStatusPending:
				w.Pending++
			case TaskStatusInProgress:
				w.InProgress++
			}
		}
	}
	return w, nil
}

// mutate は読み書きトランザクション内でプロジェクトを取得し、fn で変更して進捗を再計算し保存します。
func (s *Service) mutate(ctx context.Context, projectID string, fn func(*Project) error) (*Project, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	var updated *Project
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByID(txCtx, projectID)
		if err != nil {
			return err
		}
		if err := fn(existing); err != nil {
			return err
		}
		existing.RecomputeProgress()
		result, err := s.repo.Update(txCtx, existing)
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

func (s *Service) mutateTask(ctx context.Context, projectID, taskID string, fn func(*Task) error) (*Project, error) {
	return s.mutate(ctx, projectID, func(p *Project) error {
		idx := p.taskIndex(taskID)
		if idx < 0 {
			return fmt.Errorf("task %s: %w", taskID, ErrTaskNotFound)
		}
		return fn(&p.Tasks[idx])
	})
}
