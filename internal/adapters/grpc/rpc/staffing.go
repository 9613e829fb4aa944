package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// StaffingServiceName は社員とプロジェクトの割り当てサービスの完全修飾名です。
const StaffingServiceName = "workforce.v1.StaffingService"

type AssignmentRequest struct {
	EmployeeID string `json:"employee_id"`
	ProjectID  string `json:"project_id"`
}

// AssignmentResponse は割り当て後の双方の状態です。Employee は社員が存在しない場合 nil です。
type AssignmentResponse struct {
	Employee *Employee `json:"employee,omitempty"`
	Project  Project   `json:"project"`
}

type ProjectMembersRequest struct {
	ProjectID string `json:"project_id"`
}

type EmployeeProjectsRequest struct {
	EmployeeID string `json:"employee_id"`
}

// StaffingServiceServer は StaffingService のサーバー側インターフェースです。
type StaffingServiceServer interface {
	AssignEmployee(context.Context, *AssignmentRequest) (*AssignmentResponse, error)
	RemoveEmployee(context.Context, *AssignmentRequest) (*AssignmentResponse, error)
	ProjectMembers(context.Context, *ProjectMembersRequest) (*EmployeesResponse, error)
	AvailableEmployees(context.Context, *ProjectMembersRequest) (*EmployeesResponse, error)
	EmployeeProjects(context.Context, *EmployeeProjectsRequest) (*ProjectsResponse, error)
}

// StaffingServiceDesc は StaffingService のサービス記述子です。
var StaffingServiceDesc = grpc.ServiceDesc{
	ServiceName: StaffingServiceName,
	HandlerType: (*StaffingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(StaffingServiceName, "AssignEmployee", StaffingServiceServer.AssignEmployee),
		unaryMethod(StaffingServiceName, "RemoveEmployee", StaffingServiceServer.RemoveEmployee),
		unaryMethod(StaffingServiceName, "ProjectMembers", StaffingServiceServer.ProjectMembers),
		unaryMethod(StaffingServiceName, "AvailableEmployees", StaffingServiceServer.AvailableEmployees),
		unaryMethod(StaffingServiceName, "EmployeeProjects", StaffingServiceServer.EmployeeProjects),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterStaffingServiceServer は StaffingService をサーバーに登録します。
func RegisterStaffingServiceServer(s grpc.ServiceRegistrar, srv StaffingServiceServer) {
	s.RegisterService(&StaffingServiceDesc, srv)
}

// StaffingServiceClient は StaffingService のクライアントです。
type StaffingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewStaffingServiceClient は StaffingServiceClient を生成します。
func NewStaffingServiceClient(cc grpc.ClientConnInterface) *StaffingServiceClient {
	return &StaffingServiceClient{cc: cc}
}

func (c *StaffingServiceClient) AssignEmployee(ctx context.Context, in *AssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error) {
	return invoke[AssignmentRequest, AssignmentResponse](ctx, c.cc, StaffingServiceName, "AssignEmployee", in, opts...)
}

func (c *StaffingServiceClient) RemoveEmployee(ctx context.Context, in *AssignmentRequest, opts ...grpc.CallOption) (*AssignmentResponse, error) {
	return invoke[AssignmentRequest, AssignmentResponse](ctx, c.cc, StaffingServiceName, "RemoveEmployee", in, opts...)
}

func (c *StaffingServiceClient) ProjectMembers(ctx context.Context, in *ProjectMembersRequest, opts ...grpc.CallOption) (*EmployeesResponse, error) {
	return invoke[ProjectMembersRequest, EmployeesResponse](ctx, c.cc, StaffingServiceName, "ProjectMembers", in, opts...)
}

func (c *StaffingServiceClient) AvailableEmployees(ctx context.Context, in *ProjectMembersRequest, opts ...grpc.CallOption) (*EmployeesResponse, error) {
	return invoke[ProjectMembersRequest, EmployeesResponse](ctx, c.cc, StaffingServiceName, "AvailableEmployees", in, opts...)
}

func (c *StaffingServiceClient) EmployeeProjects(ctx context.Context, in *EmployeeProjectsRequest, opts ...grpc.CallOption) (*ProjectsResponse, error) {
	return invoke[EmployeeProjectsRequest, ProjectsResponse](ctx, c.cc, StaffingServiceName, "EmployeeProjects", in, opts...)
}
