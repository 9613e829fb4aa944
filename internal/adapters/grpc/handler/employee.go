package handler

import (
	"context"
	"fmt"

	"github.com/ogurasousui/workforce/internal/adapters/grpc/rpc"
	"github.com/ogurasousui/workforce/internal/core/employee"
	"github.com/ogurasousui/workforce/internal/core/notification"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
}

var _ rpc.EmployeeServiceServer = (*EmployeeGrpcHandler)(nil)

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// AddEmployee は社員を追加します。
func (h *EmployeeGrpcHandler) AddEmployee(ctx context.Context, req *rpc.AddEmployeeRequest) (*rpc.EmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	startDate, err := parseDateValue(req.StartDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("start_date: %v", err))
	}

	created, err := h.svc.AddEmployee(ctx, employee.CreateEmployeeInput{
		Name:                  req.Name,
		Position:              req.Position,
		Department:            req.Department,
		Email:                 req.Email,
		Phone:                 req.Phone,
		StartDate:             startDate,
		IsActive:              req.IsActive,
		PerformanceRating:     req.PerformanceRating,
		RemainingVacationDays: req.RemainingVacationDays,
		Skills:                req.Skills,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.EmployeeResponse{Employee: toRPCEmployee(created)}, nil
}

// UpdateEmployee は社員を置き換えます。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *rpc.UpdateEmployeeRequest) (*rpc.EmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	next, err := toDomainEmployee(req.Employee)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	updated, err := h.svc.UpdateEmployee(ctx, next)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.EmployeeResponse{Employee: toRPCEmployee(updated)}, nil
}

// DeleteEmployees は一覧上の位置で社員を削除します。
func (h *EmployeeGrpcHandler) DeleteEmployees(ctx context.Context, req *rpc.DeleteEmployeesRequest) (*rpc.EmployeesResponse, error) {
	if req == nil || len(req.Indexes) == 0 {
		return nil, status.Error(codes.InvalidArgument, "indexes are required")
	}

	removed, err := h.svc.DeleteEmployees(ctx, req.Indexes)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.EmployeesResponse{Employees: toRPCEmployees(removed)}, nil
}

// GetEmployee は ID で社員を取得します。
func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *rpc.EmployeeIDRequest) (*rpc.EmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetEmployee(ctx, req.ID)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.EmployeeResponse{Employee: toRPCEmployee(found)}, nil
}

// ListEmployees は条件に一致する社員を返します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, req *rpc.ListEmployeesRequest) (*rpc.EmployeesResponse, error) {
	if req == nil {
		req = &rpc.ListEmployeesRequest{}
	}

	list, err := h.svc.ListEmployees(ctx, employee.ListEmployeesInput{
		SearchText:      req.SearchText,
		Department:      req.Department,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &rpc.EmployeesResponse{Employees: toRPCEmployees(list)}, nil
}

// Departments は部署一覧を返します。
func (h *EmployeeGrpcHandler) Departments(ctx context.Context, _ *rpc.Empty) (*rpc.DepartmentsResponse, error) {
	departments, err := h.svc.Departments(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.DepartmentsResponse{Departments: departments}, nil
}

// DepartmentStats は部署ごとの人数を返します。
func (h *EmployeeGrpcHandler) DepartmentStats(ctx context.Context, _ *rpc.Empty) (*rpc.DepartmentStatsResponse, error) {
	stats, err := h.svc.DepartmentStats(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]rpc.DepartmentCount, 0, len(stats))
	for _, s := range stats {
		out = append(out, rpc.DepartmentCount{Department: s.Department, Count: s.Count})
	}
	return &rpc.DepartmentStatsResponse{Stats: out}, nil
}

// AveragePerformance は評価の平均を返します。
func (h *EmployeeGrpcHandler) AveragePerformance(ctx context.Context, _ *rpc.Empty) (*rpc.AveragePerformanceResponse, error) {
	avg, err := h.svc.AveragePerformance(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.AveragePerformanceResponse{Average: avg}, nil
}

// PerformanceSummary は評価帯ごとの人数を返します。
func (h *EmployeeGrpcHandler) PerformanceSummary(ctx context.Context, _ *rpc.Empty) (*rpc.PerformanceSummaryResponse, error) {
	summary, err := h.svc.PerformanceSummary(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.PerformanceSummaryResponse{
		Average: summary.Average,
		High:    summary.High,
		Medium:  summary.Medium,
		Low:     summary.Low,
		Total:   summary.Total,
	}, nil
}

// UpdatePerformanceRating は評価を更新します。
func (h *EmployeeGrpcHandler) UpdatePerformanceRating(ctx context.Context, req *rpc.UpdatePerformanceRatingRequest) (*rpc.EmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.UpdatePerformanceRating(ctx, req.ID, req.Rating)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.EmployeeResponse{Employee: toRPCEmployee(updated)}, nil
}

// RequestVacation は休暇を申請します。
func (h *EmployeeGrpcHandler) RequestVacation(ctx context.Context, req *rpc.RequestVacationRequest) (*rpc.EmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	updated, err := h.svc.RequestVacation(ctx, req.ID, req.Days)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.EmployeeResponse{Employee: toRPCEmployee(updated)}, nil
}

// SendNotification は社員に関する通知を送ります。
func (h *EmployeeGrpcHandler) SendNotification(ctx context.Context, req *rpc.SendNotificationRequest) (*rpc.NotificationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	sent, err := h.svc.SendNotification(ctx, req.EmployeeID, employee.SendNotificationInput{
		Kind:    notification.Kind(req.Kind),
		Title:   req.Title,
		Message: req.Message,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.NotificationResponse{Notification: toRPCNotification(sent)}, nil
}
