package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/workforce/internal/adapters/grpc/rpc"
	"github.com/ogurasousui/workforce/internal/core/employee"
	"github.com/ogurasousui/workforce/internal/core/notification"
	"github.com/ogurasousui/workforce/internal/core/project"
)

func parseDateValue(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(rpc.DateLayout, trimmed, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid format, expected YYYY-MM-DD")
	}
	return &t, nil
}

func parseDateOrZero(value string) (time.Time, error) {
	t, err := parseDateValue(value)
	if err != nil || t == nil {
		return time.Time{}, err
	}
	return *t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(rpc.DateLayout)
}

func toRPCEmployee(e *employee.Employee) rpc.Employee {
	if e == nil {
		return rpc.Employee{}
	}
	return rpc.Employee{
		ID:                    e.ID,
		Name:                  e.Name,
		Position:              e.Position,
		Department:            e.Department,
		Email:                 e.Email,
		Phone:                 e.Phone,
		StartDate:             formatDate(e.StartDate),
		IsActive:              e.IsActive,
		PerformanceRating:     e.PerformanceRating,
		RemainingVacationDays: e.RemainingVacationDays,
		Skills:                nonNil(e.Skills),
		ProjectIDs:            nonNil(e.ProjectIDs),
	}
}

func toRPCEmployees(list []*employee.Employee) []rpc.Employee {
	out := make([]rpc.Employee, 0, len(list))
	for _, e := range list {
		out = append(out, toRPCEmployee(e))
	}
	return out
}

func toDomainEmployee(e rpc.Employee) (*employee.Employee, error) {
	start, err := parseDateOrZero(e.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	return &employee.Employee{
		ID:                    e.ID,
		Name:                  e.Name,
		Position:              e.Position,
		Department:            e.Department,
		Email:                 e.Email,
		Phone:                 e.Phone,
		StartDate:             start,
		IsActive:              e.IsActive,
		PerformanceRating:     e.PerformanceRating,
		RemainingVacationDays: e.RemainingVacationDays,
		Skills:                e.Skills,
		ProjectIDs:            e.ProjectIDs,
	}, nil
}

func toRPCTask(t project.Task) rpc.Task {
	return rpc.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		AssignedTo:  t.AssignedTo,
		DueDate:     formatDate(t.DueDate),
	}
}

func toRPCProject(p *project.Project) rpc.Project {
	if p == nil {
		return rpc.Project{}
	}
	tasks := make([]rpc.Task, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		tasks = append(tasks, toRPCTask(t))
	}
	return rpc.Project{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		StartDate:         formatDate(p.StartDate),
		DueDate:           formatDate(p.DueDate),
		Progress:          p.Progress,
		Tasks:             tasks,
		AssignedEmployees: nonNil(p.AssignedEmployees),
	}
}

func toRPCProjects(list []*project.Project) []rpc.Project {
	out := make([]rpc.Project, 0, len(list))
	for _, p := range list {
		out = append(out, toRPCProject(p))
	}
	return out
}

func toDomainTask(t rpc.Task) (project.Task, error) {
	due, err := parseDateOrZero(t.DueDate)
	if err != nil {
		return project.Task{}, fmt.Errorf("due_date: %w", err)
	}
	return project.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      project.TaskStatus(t.Status),
		AssignedTo:  t.AssignedTo,
		DueDate:     due,
	}, nil
}

func toTaskInput(t rpc.TaskInput) (project.CreateTaskInput, error) {
	due, err := parseDateOrZero(t.DueDate)
	if err != nil {
		return project.CreateTaskInput{}, fmt.Errorf("due_date: %w", err)
	}
	return project.CreateTaskInput{
		Title:       t.Title,
		Description: t.Description,
		Status:      project.TaskStatus(t.Status),
		AssignedTo:  t.AssignedTo,
		DueDate:     due,
	}, nil
}

func toDomainProject(p rpc.Project) (*project.Project, error) {
	start, err := parseDateOrZero(p.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start_date: %w", err)
	}
	due, err := parseDateOrZero(p.DueDate)
	if err != nil {
		return nil, fmt.Errorf("due_date: %w", err)
	}

	tasks := make([]project.Task, 0, len(p.Tasks))
	for i, t := range p.Tasks {
		task, err := toDomainTask(t)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		tasks = append(tasks, task)
	}

	return &project.Project{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		StartDate:         start,
		DueDate:           due,
		Tasks:             tasks,
		AssignedEmployees: p.AssignedEmployees,
	}, nil
}

func toRPCNotification(n *notification.Notification) rpc.Notification {
	if n == nil {
		return rpc.Notification{}
	}
	return rpc.Notification{
		ID:           n.ID,
		Kind:         string(n.Type.Kind),
		Label:        n.Type.Label,
		Title:        n.Title,
		Message:      n.Message,
		EmployeeName: n.EmployeeName,
		CreatedAt:    n.CreatedAt,
		IsRead:       n.IsRead,
	}
}

func toNotificationType(kind, label string) notification.Type {
	k := notification.Kind(strings.TrimSpace(kind))
	if k == notification.KindCustom {
		return notification.Custom(label)
	}
	return notification.Type{Kind: k}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
