package rpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// NotificationServiceName は通知サービスの完全修飾名です。
const NotificationServiceName = "workforce.v1.NotificationService"

// Notification は通知のメッセージ表現です。Label は kind が custom の場合のみ設定されます。
type Notification struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Label        string    `json:"label,omitempty"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	EmployeeName string    `json:"employee_name"`
	CreatedAt    time.Time `json:"created_at"`
	IsRead       bool      `json:"is_read"`
}

type AddNotificationRequest struct {
	Kind         string `json:"kind"`
	Label        string `json:"label,omitempty"`
	Title        string `json:"title"`
	Message      string `json:"message"`
	EmployeeName string `json:"employee_name"`
}

type NotificationIDRequest struct {
	ID string `json:"id"`
}

type NotificationResponse struct {
	Notification Notification `json:"notification"`
}

type ListNotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// NotificationServiceServer は NotificationService のサーバー側インターフェースです。
type NotificationServiceServer interface {
	AddNotification(context.Context, *AddNotificationRequest) (*NotificationResponse, error)
	ListNotifications(context.Context, *Empty) (*ListNotificationsResponse, error)
	MarkRead(context.Context, *NotificationIDRequest) (*Empty, error)
	MarkAllRead(context.Context, *Empty) (*Empty, error)
	DeleteNotification(context.Context, *NotificationIDRequest) (*Empty, error)
}

// NotificationServiceDesc は NotificationService のサービス記述子です。
var NotificationServiceDesc = grpc.ServiceDesc{
	ServiceName: NotificationServiceName,
	HandlerType: (*NotificationServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(NotificationServiceName, "AddNotification", NotificationServiceServer.AddNotification),
		unaryMethod(NotificationServiceName, "ListNotifications", NotificationServiceServer.ListNotifications),
		unaryMethod(NotificationServiceName, "MarkRead", NotificationServiceServer.MarkRead),
		unaryMethod(NotificationServiceName, "MarkAllRead", NotificationServiceServer.MarkAllRead),
		unaryMethod(NotificationServiceName, "DeleteNotification", NotificationServiceServer.DeleteNotification),
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterNotificationServiceServer は NotificationService をサーバーに登録します。
func RegisterNotificationServiceServer(s grpc.ServiceRegistrar, srv NotificationServiceServer) {
	s.RegisterService(&NotificationServiceDesc, srv)
}

// NotificationServiceClient は NotificationService のクライアントです。
type NotificationServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewNotificationServiceClient は NotificationServiceClient を生成します。
func NewNotificationServiceClient(cc grpc.ClientConnInterface) *NotificationServiceClient {
	return &NotificationServiceClient{cc: cc}
}

func (c *NotificationServiceClient) AddNotification(ctx context.Context, in *AddNotificationRequest, opts ...grpc.CallOption) (*NotificationResponse, error) {
	return invoke[AddNotificationRequest, NotificationResponse](ctx, c.cc, NotificationServiceName, "AddNotification", in, opts...)
}

func (c *NotificationServiceClient) ListNotifications(ctx context.Context, opts ...grpc.CallOption) (*ListNotificationsResponse, error) {
	return invoke[Empty, ListNotificationsResponse](ctx, c.cc, NotificationServiceName, "ListNotifications", &Empty{}, opts...)
}

func (c *NotificationServiceClient) MarkRead(ctx context.Context, in *NotificationIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[NotificationIDRequest, Empty](ctx, c.cc, NotificationServiceName, "MarkRead", in, opts...)
}

func (c *NotificationServiceClient) MarkAllRead(ctx context.Context, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty, Empty](ctx, c.cc, NotificationServiceName, "MarkAllRead", &Empty{}, opts...)
}

func (c *NotificationServiceClient) DeleteNotification(ctx context.Context, in *NotificationIDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[NotificationIDRequest, Empty](ctx, c.cc, NotificationServiceName, "DeleteNotification", in, opts...)
}
