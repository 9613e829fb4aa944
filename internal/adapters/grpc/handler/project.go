package handler

import (
	"context"
	"fmt"

	"github.com/ogurasousui/workforce/internal/adapters/grpc/rpc"
	"github.com/ogurasousui/workforce/internal/core/project"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ProjectGrpcHandler は ProjectService の gRPC 実装です。
type ProjectGrpcHandler struct {
	svc project.UseCase
}

var _ rpc.ProjectServiceServer = (*ProjectGrpcHandler)(nil)

// NewProjectGrpcHandler は ProjectGrpcHandler を生成します。
func NewProjectGrpcHandler(svc project.UseCase) *ProjectGrpcHandler {
	return &ProjectGrpcHandler{svc: svc}
}

// CreateProject はプロジェクトを作成します。
func (h *ProjectGrpcHandler) CreateProject(ctx context.Context, req *rpc.CreateProjectRequest) (*rpc.ProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	startDate, err := parseDateOrZero(req.StartDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("start_date: %v", err))
	}
	dueDate, err := parseDateOrZero(req.DueDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("due_date: %v", err))
	}

	tasks := make([]project.CreateTaskInput, 0, len(req.Tasks))
	for i, t := range req.Tasks {
		in, err := toTaskInput(t)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("tasks[%d]: %v", i, err))
		}
		tasks = append(tasks, in)
	}

	created, err := h.svc.CreateProject(ctx, project.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		DueDate:     dueDate,
		Tasks:       tasks,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.ProjectResponse{Project: toRPCProject(created)}, nil
}

// UpdateProject はプロジェクトを置き換えます。
func (h *ProjectGrpcHandler) UpdateProject(ctx context.Context, req *rpc.UpdateProjectRequest) (*rpc.ProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	next, err := toDomainProject(req.Project)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updated, err := h.svc.UpdateProject(ctx, next)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.ProjectResponse{Project: toRPCProject(updated)}, nil
}

// DeleteProject はプロジェクトを削除します。
func (h *ProjectGrpcHandler) DeleteProject(ctx context.Context, req *rpc.ProjectIDRequest) (*rpc.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteProject(ctx, req.ID); err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.Empty{}, nil
}

// GetProject は ID でプロジェクトを取得します。
func (h *ProjectGrpcHandler) GetProject(ctx context.Context, req *rpc.ProjectIDRequest) (*rpc.ProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetProject(ctx, req.ID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.ProjectResponse{Project: toRPCProject(found)}, nil
}

// ListProjects はプロジェクト一覧を返します。
func (h *ProjectGrpcHandler) ListProjects(ctx context.Context, _ *rpc.Empty) (*rpc.ProjectsResponse, error) {
	list, err := h.svc.ListProjects(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.ProjectsResponse{Projects: toRPCProjects(list)}, nil
}

// AddTask はタスクを追加します。
func (h *ProjectGrpcHandler) AddTask(ctx context.Context, req *rpc.AddTaskRequest) (*rpc.ProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in, err := toTaskInput(req.Task)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updated, err := h.svc.AddTask(ctx, req.ProjectID, in)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.ProjectResponse{Project: toRPCProject(updated)}, nil
}

// UpdateTask はタスクを置き換えます。
func (h *ProjectGrpcHandler) UpdateTask(ctx context.Context, req *rpc.UpdateTaskRequest) (*rpc.ProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	task, err := toDomainTask(req.Task)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updated, err := h.svc.UpdateTask(ctx, req.ProjectID, task)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.ProjectResponse{Project: toRPCProject(updated)}, nil
}

// RemoveTask はタスクを削除します。
func (h *ProjectGrpcHandler) RemoveTask(ctx context.Context, req *rpc.RemoveTaskRequest) (*rpc.ProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.RemoveTask(ctx, req.ProjectID, req.TaskID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.ProjectResponse{Project: toRPCProject(updated)}, nil
}

// SetTaskStatus はタスクの状態を変更します。
func (h *ProjectGrpcHandler) SetTaskStatus(ctx context.Context, req *rpc.SetTaskStatusRequest) (*rpc.ProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.SetTaskStatus(ctx, req.ProjectID, req.TaskID, project.TaskStatus(req.Status))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.ProjectResponse{Project: toRPCProject(updated)}, nil
}

// ReassignTask はタスクの担当者を付け替えます。
func (h *ProjectGrpcHandler) ReassignTask(ctx context.Context, req *rpc.ReassignTaskRequest) (*rpc.ProjectResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.ReassignTask(ctx, project.ReassignTaskInput{
		ProjectID:      req.ProjectID,
		TaskID:         req.TaskID,
		FromEmployeeID: req.FromEmployeeID,
		ToEmployeeID:   req.ToEmployeeID,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.ProjectResponse{Project: toRPCProject(updated)}, nil
}

// CalculateEmployeeWorkload は社員のタスク数を集計します。
func (h *ProjectGrpcHandler) CalculateEmployeeWorkload(ctx context.Context, req *rpc.WorkloadRequest) (*rpc.WorkloadResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	w, err := h.svc.CalculateEmployeeWorkload(ctx, req.EmployeeID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.WorkloadResponse{Total: w.Total, Pending: w.Pending, InProgress: w.InProgress}, nil
}
