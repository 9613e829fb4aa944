package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// ProjectServiceName はプロジェクトサービスの完全修飾名です。
const ProjectServiceName = "workforce.v1.ProjectService"

// Task はタスクのメッセージ表現です。
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	DueDate     string `json:"due_date"`
}

// Project はプロジェクトのメッセージ表現です。
type Project struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	StartDate         string   `json:"start_date"`
	DueDate           string   `json:"due_date"`
	Progress          float64  `json:"progress"`
	Tasks             []Task   `json:"tasks"`
	AssignedEmployees []string `json:"assigned_employees"`
}

// TaskInput はタスク作成時の入力です。
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status,omitempty"`
	AssignedTo  string `json:"assigned_to,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
}

type CreateProjectRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StartDate   string      `json:"start_date,omitempty"`
	DueDate     string      `json:"due_date,omitempty"`
	Tasks       []TaskInput `json:"tasks"`
}

type UpdateProjectRequest struct {
	Project Project `json:"project"`
}

type ProjectIDRequest struct {
	ID string `json:"id"`
}

type AddTaskRequest struct {
	ProjectID string    `json:"project_id"`
	Task      TaskInput `json:"task"`
}

type UpdateTaskRequest struct {
	ProjectID string `json:"project_id"`
	Task      Task   `json:"task"`
}

type RemoveTaskRequest struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
}

type SetTaskStatusRequest struct {
	ProjectID string `json:"project_id"`
	TaskID    string `json:"task_id"`
	Status    string `json:"status"`
}

type ReassignTaskRequest struct {
	ProjectID      string `json:"project_id"`
	TaskID         string `json:"task_id"`
	FromEmployeeID string `json:"from_employee_id,omitempty"`
	ToEmployeeID   string `json:"to_employee_id"`
}

type WorkloadRequest struct {
	EmployeeID string `json:"employee_id"`
}

type WorkloadResponse struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
}

type ProjectResponse struct {
	Project Project `json:"project"`
}

type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}

// ProjectServiceServer は ProjectService のサーバー側インターフェースです。
type ProjectServiceServer interface {
	CreateProject(context.Context, *CreateProjectRequest) (*ProjectResponse, error)
	UpdateProject(context.Context, *UpdateProjectRequest) (*ProjectResponse, error)
	DeleteProject(context.Context, *ProjectIDRequest) (*Empty, error)
	GetProject(context.Context, *ProjectIDRequest) (*ProjectResponse, error)
	ListProjects(context.Context, *Empty) (*ProjectsResponse, error)
	AddTask(context.Context, *AddTaskRequest) (*ProjectResponse, error)
	UpdateTask(context.Context, *UpdateTaskRequest) (*ProjectResponse, error)
	RemoveTask(context.Context, *RemoveTaskRequest) (*ProjectResponse, error)
	SetTaskStatus(context.Context, *SetTaskStatusRequest) (*ProjectResponse, error)
	ReassignTask(context.Context, *ReassignTaskRequest) (*ProjectResponse, error)
	CalculateEmployeeWorkload(context.Context, *WorkloadRequest) (*WorkloadResponse, error)
}

// ProjectServiceDesc は ProjectService のサービス記述子です。
var ProjectServiceDesc = grpc.ServiceDesc{
	ServiceName: ProjectServiceName,
	HandlerType: (*ProjectServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(ProjectServiceName, "CreateProject", ProjectServiceServer.CreateProject),
		unaryMethod(ProjectServiceName, "UpdateProject", ProjectServiceServer.UpdateProject),
		unaryMethod(ProjectServiceName, "DeleteProject", ProjectServiceServer.DeleteProject),
		unaryMethod(ProjectServiceName, "GetProject", ProjectServiceServer.GetProject),
		unaryMethod(ProjectServiceName, "ListProjects", ProjectServiceServer.ListProjects),
		unaryMethod(ProjectServiceName, "AddTask", ProjectServiceServer.AddTask),
		unaryMethod(ProjectServiceName, "UpdateTask", ProjectServiceServer.UpdateTask),
		unaryMethod(ProjectServiceName, "RemoveTask", ProjectServiceServer.RemoveTask),
		unaryMethod(ProjectServiceName, "SetTaskStatus", ProjectServiceServer.SetTaskStatus),
		unaryMethod(ProjectServiceName, "ReassignTask", ProjectServiceServer.ReassignTask),
		unaryMethod(ProjectServiceName, "CalculateEmployeeWorkload", ProjectServiceServer.CalculateEmployeeWorkload),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterProjectServiceServer は ProjectService をサーバーに登録します。
func RegisterProjectServiceServer(s grpc.ServiceRegistrar, srv ProjectServiceServer) {
	s.RegisterService(&ProjectServiceDesc, srv)
}

// ProjectServiceClient は ProjectService のクライアントです。
type ProjectServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewProjectServiceClient は ProjectServiceClient を生成します。
func NewProjectServiceClient(cc grpc.ClientConnInterface) *ProjectServiceClient {
	return &ProjectServiceClient{cc: cc}
}

func (c *ProjectServiceClient) CreateProject(ctx context.Context, in *CreateProjectRequest, opts ...grpc.CallOption) (*ProjectResponse, error) {
	return invoke[CreateProjectRequest, ProjectResponse](ctx, c.cc, ProjectServiceName, "CreateProject", in, opts...)
}

func (c *ProjectServiceClient) UpdateProject(ctx context.Context, in *UpdateProjectRequest, opts ...grpc.CallOption) (*ProjectResponse, error) {
	return invoke[UpdateProjectRequest, ProjectResponse](ctx, c.cc, ProjectServiceName, "UpdateProject", in, opts...)
}

func (c *ProjectServiceClient) DeleteProject(ctx context.Context, in *ProjectIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[ProjectIDRequest, Empty](ctx, c.cc, ProjectServiceName, "DeleteProject", in, opts...)
}

func (c *ProjectServiceClient) GetProject(ctx context.Context, in *ProjectIDRequest, opts ...grpc.CallOption) (*ProjectResponse, error) {
	return invoke[ProjectIDRequest, ProjectResponse](ctx, c.cc, ProjectServiceName, "GetProject", in, opts...)
}

func (c *ProjectServiceClient) ListProjects(ctx context.Context, opts ...grpc.CallOption) (*ProjectsResponse, error) {
	return invoke[Empty, ProjectsResponse](ctx, c.cc, ProjectServiceName, "ListProjects", &Empty{}, opts...)
}

func (c *ProjectServiceClient) AddTask(ctx context.Context, in *AddTaskRequest, opts ...grpc.CallOption) (*ProjectResponse, error) {
	return invoke[AddTaskRequest, ProjectResponse](ctx, c.cc, ProjectServiceName, "AddTask", in, opts...)
}

func (c *ProjectServiceClient) UpdateTask(ctx context.Context, in *UpdateTaskRequest, opts ...grpc.CallOption) (*ProjectResponse, error) {
	return invoke[UpdateTaskRequest, ProjectResponse](ctx, c.cc, ProjectServiceName, "UpdateTask", in, opts...)
}

func (c *ProjectServiceClient) RemoveTask(ctx context.Context, in *RemoveTaskRequest, opts ...grpc.CallOption) (*ProjectResponse, error) {
	return invoke[RemoveTaskRequest, ProjectResponse](ctx, c.cc, ProjectServiceName, "RemoveTask", in, opts...)
}

func (c *ProjectServiceClient) SetTaskStatus(ctx context.Context, in *SetTaskStatusRequest, opts ...grpc.CallOption) (*ProjectResponse, error) {
	return invoke[SetTaskStatusRequest, ProjectResponse](ctx, c.cc, ProjectServiceName, "SetTaskStatus", in, opts...)
}

func (c *ProjectServiceClient) ReassignTask(ctx context.Context, in *ReassignTaskRequest, opts ...grpc.CallOption) (*ProjectResponse, error) {
	return invoke[ReassignTaskRequest, ProjectResponse](ctx, c.cc, ProjectServiceName, "ReassignTask", in, opts...)
}

func (c *ProjectServiceClient) CalculateEmployeeWorkload(ctx context.Context, in *WorkloadRequest, opts ...grpc.CallOption) (*WorkloadResponse, error) {
	return invoke[WorkloadRequest, WorkloadResponse](ctx, c.cc, ProjectServiceName, "CalculateEmployeeWorkload", in, opts...)
}
