package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// EmployeeServiceName は社員サービスの完全修飾名です。
const EmployeeServiceName = "workforce.v1.EmployeeService"

// Employee は社員のメッセージ表現です。
type Employee struct {
	ID                    string   `json:"id"`
	Name                  string   `json:"name"`
	Position              string   `json:"position"`
	Department            string   `json:"department"`
	Email                 string   `json:"email"`
	Phone                 string   `json:"phone"`
	StartDate             string   `json:"start_date"`
	IsActive              bool     `json:"is_active"`
	PerformanceRating     float64  `json:"performance_rating"`
	RemainingVacationDays int      `json:"remaining_vacation_days"`
	Skills                []string `json:"skills"`
	ProjectIDs            []string `json:"project_ids"`
}

// DepartmentCount は部署ごとの人数です。
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type AddEmployeeRequest struct {
	Name                  string   `json:"name"`
	Position              string   `json:"position"`
	Department            string   `json:"department"`
	Email                 string   `json:"email"`
	Phone                 string   `json:"phone"`
	StartDate             string   `json:"start_date,omitempty"`
	IsActive              *bool    `json:"is_active,omitempty"`
	PerformanceRating     float64  `json:"performance_rating"`
	RemainingVacationDays *int     `json:"remaining_vacation_days,omitempty"`
	Skills                []string `json:"skills"`
}

type UpdateEmployeeRequest struct {
	Employee Employee `json:"employee"`
}

type EmployeeIDRequest struct {
	ID string `json:"id"`
}

type DeleteEmployeesRequest struct {
	Indexes []int `json:"indexes"`
}

type ListEmployeesRequest struct {
	SearchText      string `json:"search_text"`
	Department      string `json:"department"`
	IncludeInactive bool   `json:"include_inactive"`
}

type EmployeeResponse struct {
	Employee Employee `json:"employee"`
}

type EmployeesResponse struct {
	Employees []Employee `json:"employees"`
}

type DepartmentsResponse struct {
	Departments []string `json:"departments"`
}

type DepartmentStatsResponse struct {
	Stats []DepartmentCount `json:"stats"`
}

type AveragePerformanceResponse struct {
	Average float64 `json:"average"`
}

type PerformanceSummaryResponse struct {
	Average float64 `json:"average"`
	High    int     `json:"high"`
	Medium  int     `json:"medium"`
	Low     int     `json:"low"`
	Total   int     `json:"total"`
}

type UpdatePerformanceRatingRequest struct {
	ID     string `json:"id"`
	Rating int    `json:"rating"`
}

type RequestVacationRequest struct {
	ID   string `json:"id"`
	Days int    `json:"days"`
}

type SendNotificationRequest struct {
	EmployeeID string `json:"employee_id"`
	Kind       string `json:"kind"`
	Title      string `json:"title"`
	Message    string `json:"message"`
}

// EmployeeServiceServer は EmployeeService のサーバー側インターフェースです。
type EmployeeServiceServer interface {
	AddEmployee(context.Context, *AddEmployeeRequest) (*EmployeeResponse, error)
	UpdateEmployee(context.Context, *UpdateEmployeeRequest) (*EmployeeResponse, error)
	DeleteEmployees(context.Context, *DeleteEmployeesRequest) (*EmployeesResponse, error)
	GetEmployee(context.Context, *EmployeeIDRequest) (*EmployeeResponse, error)
	ListEmployees(context.Context, *ListEmployeesRequest) (*EmployeesResponse, error)
	Departments(context.Context, *Empty) (*DepartmentsResponse, error)
	DepartmentStats(context.Context, *Empty) (*DepartmentStatsResponse, error)
	AveragePerformance(context.Context, *Empty) (*AveragePerformanceResponse, error)
	PerformanceSummary(context.Context, *Empty) (*PerformanceSummaryResponse, error)
	UpdatePerformanceRating(context.Context, *UpdatePerformanceRatingRequest) (*EmployeeResponse, error)
	RequestVacation(context.Context, *RequestVacationRequest) (*EmployeeResponse, error)
	SendNotification(context.Context, *SendNotificationRequest) (*NotificationResponse, error)
}

// EmployeeServiceDesc は EmployeeService のサービス記述子です。
var EmployeeServiceDesc = grpc.ServiceDesc{
	ServiceName: EmployeeServiceName,
	HandlerType: (*EmployeeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(EmployeeServiceName, "AddEmployee", EmployeeServiceServer.AddEmployee),
		unaryMethod(EmployeeServiceName, "UpdateEmployee", EmployeeServiceServer.UpdateEmployee),
		unaryMethod(EmployeeServiceName, "DeleteEmployees", EmployeeServiceServer.DeleteEmployees),
		unaryMethod(EmployeeServiceName, "GetEmployee", EmployeeServiceServer.GetEmployee),
		unaryMethod(EmployeeServiceName, "ListEmployees", EmployeeServiceServer.ListEmployees),
		unaryMethod(EmployeeServiceName, "Departments", EmployeeServiceServer.Departments),
		unaryMethod(EmployeeServiceName, "DepartmentStats", EmployeeServiceServer.DepartmentStats),
		unaryMethod(EmployeeServiceName, "AveragePerformance", EmployeeServiceServer.AveragePerformance),
		unaryMethod(EmployeeServiceName, "PerformanceSummary", EmployeeServiceServer.PerformanceSummary),
		unaryMethod(EmployeeServiceName, "UpdatePerformanceRating", EmployeeServiceServer.UpdatePerformanceRating),
		unaryMethod(EmployeeServiceName, "RequestVacation", EmployeeServiceServer.RequestVacation),
		unaryMethod(EmployeeServiceName, "SendNotification", EmployeeServiceServer.SendNotification),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterEmployeeServiceServer は EmployeeService をサーバーに登録します。
func RegisterEmployeeServiceServer(s grpc.ServiceRegistrar, srv EmployeeServiceServer) {
	s.RegisterService(&EmployeeServiceDesc, srv)
}

// EmployeeServiceClient は EmployeeService のクライアントです。
type EmployeeServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEmployeeServiceClient は EmployeeServiceClient を生成します。
func NewEmployeeServiceClient(cc grpc.ClientConnInterface) *EmployeeServiceClient {
	return &EmployeeServiceClient{cc: cc}
}

func (c *EmployeeServiceClient) AddEmployee(ctx context.Context, in *AddEmployeeRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[AddEmployeeRequest, EmployeeResponse](ctx, c.cc, EmployeeServiceName, "AddEmployee", in, opts...)
}

func (c *EmployeeServiceClient) UpdateEmployee(ctx context.Context, in *UpdateEmployeeRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[UpdateEmployeeRequest, EmployeeResponse](ctx, c.cc, EmployeeServiceName, "UpdateEmployee", in, opts...)
}

func (c *EmployeeServiceClient) DeleteEmployees(ctx context.Context, in *DeleteEmployeesRequest, opts ...grpc.CallOption) (*EmployeesResponse, error) {
	return invoke[DeleteEmployeesRequest, EmployeesResponse](ctx, c.cc, EmployeeServiceName, "DeleteEmployees", in, opts...)
}

func (c *EmployeeServiceClient) GetEmployee(ctx context.Context, in *EmployeeIDRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeIDRequest, EmployeeResponse](ctx, c.cc, EmployeeServiceName, "GetEmployee", in, opts...)
}

func (c *EmployeeServiceClient) ListEmployees(ctx context.Context, in *ListEmployeesRequest, opts ...grpc.CallOption) (*EmployeesResponse, error) {
	return invoke[ListEmployeesRequest, EmployeesResponse](ctx, c.cc, EmployeeServiceName, "ListEmployees", in, opts...)
}

func (c *EmployeeServiceClient) Departments(ctx context.Context, opts ...grpc.CallOption) (*DepartmentsResponse, error) {
	return invoke[Empty, DepartmentsResponse](ctx, c.cc, EmployeeServiceName, "Departments", &Empty{}, opts...)
}

func (c *EmployeeServiceClient) DepartmentStats(ctx context.Context, opts ...grpc.CallOption) (*DepartmentStatsResponse, error) {
	return invoke[Empty, DepartmentStatsResponse](ctx, c.cc, EmployeeServiceName, "DepartmentStats", &Empty{}, opts...)
}

func (c *EmployeeServiceClient) AveragePerformance(ctx context.Context, opts ...grpc.CallOption) (*AveragePerformanceResponse, error) {
	return invoke[Empty, AveragePerformanceResponse](ctx, c.cc, EmployeeServiceName, "AveragePerformance", &Empty{}, opts...)
}

func (c *EmployeeServiceClient) PerformanceSummary(ctx context.Context, opts ...grpc.CallOption) (*PerformanceSummaryResponse, error) {
	return invoke[Empty, PerformanceSummaryResponse](ctx, c.cc, EmployeeServiceName, "PerformanceSummary", &Empty{}, opts...)
}

func (c *EmployeeServiceClient) UpdatePerformanceRating(ctx context.Context, in *UpdatePerformanceRatingRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[UpdatePerformanceRatingRequest, EmployeeResponse](ctx, c.cc, EmployeeServiceName, "UpdatePerformanceRating", in, opts...)
}

func (c *EmployeeServiceClient) RequestVacation(ctx context.Context, in *RequestVacationRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[RequestVacationRequest, EmployeeResponse](ctx, c.cc, EmployeeServiceName, "RequestVacation", in, opts...)
}

func (c *EmployeeServiceClient) SendNotification(ctx context.Context, in *SendNotificationRequest, opts ...grpc.CallOption) (*NotificationResponse, error) {
	return invoke[SendNotificationRequest, NotificationResponse](ctx, c.cc, EmployeeServiceName, "SendNotification", in, opts...)
}
