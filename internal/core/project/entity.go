package project

import (
	"slices"
	"time"
)

// TaskStatus はタスクの状態です。値は永続化形式でもそのまま使われます。
type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "Not Started"
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
	TaskStatusCancelled  TaskStatus = "Cancelled"
	TaskStatusDelayed    TaskStatus = "Delayed"
)

// Valid は定義済みの状態かどうかを返します。
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusPending, TaskStatusInProgress,
		TaskStatusCompleted, TaskStatusCancelled, TaskStatusDelayed:
		return true
	default:
		return false
	}
}

// Task はプロジェクトに属するタスクです。AssignedTo が空の場合は未割り当てです。
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	DueDate     time.Time  `json:"due_date"`
}

// Project はプロジェクトエンティティです。Progress は Tasks から導出されます。
type Project struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	StartDate         time.Time `json:"start_date"`
	DueDate           time.Time `json:"due_date"`
	Progress          float64   `json:"progress"`
	Tasks             []Task    `json:"tasks"`
	AssignedEmployees []string  `json:"assigned_employees"`
}

// RecomputeProgress は完了タスクの割合で Progress を更新します。タスクがなければ 0 です。
func (p *Project) RecomputeProgress() {
	if len(p.Tasks) == 0 {
		p.Progress = 0
		return
	}
	completed := 0
	for _, t := range p.Tasks {
		if t.Status == TaskStatusCompleted {
			completed++
		}
	}
	p.Progress = float64(completed) / float64(len(p.Tasks))
}

// Clone はタスクと割り当てを含めた複製を返します。
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	c.Tasks = slices.Clone(p.Tasks)
	c.AssignedEmployees = slices.Clone(p.AssignedEmployees)
	if c.Tasks == nil {
		c.Tasks = []Task{}
	}
	if c.AssignedEmployees == nil {
		c.AssignedEmployees = []string{}
	}
	return &c
}

// HasEmployee は社員が割り当て済みかどうかを返します。
func (p *Project) HasEmployee(employeeID string) bool {
	return slices.Contains(p.AssignedEmployees, employeeID)
}

func (p *Project) taskIndex(taskID string) int {
	return slices.IndexFunc(p.Tasks, func(t Task) bool { return t.ID == taskID })
}

// Workload は社員に割り当てられたタスク数の集計です。
type Workload struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
}
