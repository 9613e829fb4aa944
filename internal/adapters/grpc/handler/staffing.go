package handler

import (
	"context"

	"github.com/ogurasousui/workforce/internal/adapters/grpc/rpc"
	"github.com/ogurasousui/workforce/internal/core/staffing"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StaffingGrpcHandler は StaffingService の gRPC 実装です。
type StaffingGrpcHandler struct {
	svc staffing.UseCase
}

var _ rpc.StaffingServiceServer = (*StaffingGrpcHandler)(nil)

// NewStaffingGrpcHandler は StaffingGrpcHandler を生成します。
func NewStaffingGrpcHandler(svc staffing.UseCase) *StaffingGrpcHandler {
	return &StaffingGrpcHandler{svc: svc}
}

// AssignEmployee は社員をプロジェクトに割り当てます。
func (h *StaffingGrpcHandler) AssignEmployee(ctx context.Context, req *rpc.AssignmentRequest) (*rpc.AssignmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.AssignEmployee(ctx, req.EmployeeID, req.ProjectID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toAssignmentResponse(result), nil
}

// RemoveEmployee は社員をプロジェクトから外します。
func (h *StaffingGrpcHandler) RemoveEmployee(ctx context.Context, req *rpc.AssignmentRequest) (*rpc.AssignmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.RemoveEmployee(ctx, req.EmployeeID, req.ProjectID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return toAssignmentResponse(result), nil
}

// ProjectMembers はプロジェクトのメンバーを返します。
func (h *StaffingGrpcHandler) ProjectMembers(ctx context.Context, req *rpc.ProjectMembersRequest) (*rpc.EmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	members, err := h.svc.ProjectMembers(ctx, req.ProjectID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.EmployeesResponse{Employees: toRPCEmployees(members)}, nil
}

// AvailableEmployees はプロジェクトに未割り当ての社員を返します。
func (h *StaffingGrpcHandler) AvailableEmployees(ctx context.Context, req *rpc.ProjectMembersRequest) (*rpc.EmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	available, err := h.svc.AvailableEmployees(ctx, req.ProjectID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.EmployeesResponse{Employees: toRPCEmployees(available)}, nil
}

// EmployeeProjects は社員の所属プロジェクトを返します。
func (h *StaffingGrpcHandler) EmployeeProjects(ctx context.Context, req *rpc.EmployeeProjectsRequest) (*rpc.ProjectsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	projects, err := h.svc.EmployeeProjects(ctx, req.EmployeeID)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.ProjectsResponse{Projects: toRPCProjects(projects)}, nil
}

func toAssignmentResponse(a *staffing.Assignment) *rpc.AssignmentResponse {
	resp := &rpc.AssignmentResponse{Project: toRPCProject(a.Project)}
	if a.Employee != nil {
		e := toRPCEmployee(a.Employee)
		resp.Employee = &e
	}
	return resp
}
