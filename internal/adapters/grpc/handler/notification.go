package handler

import (
	"context"

	"github.com/ogurasousui/workforce/internal/adapters/grpc/rpc"
	"github.com/ogurasousui/workforce/internal/core/notification"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NotificationGrpcHandler は NotificationService の gRPC 実装です。
type NotificationGrpcHandler struct {
	svc notification.UseCase
}

var _ rpc.NotificationServiceServer = (*NotificationGrpcHandler)(nil)

// NewNotificationGrpcHandler は NotificationGrpcHandler を生成します。
func NewNotificationGrpcHandler(svc notification.UseCase) *NotificationGrpcHandler {
	return &NotificationGrpcHandler{svc: svc}
}

// AddNotification は通知を先頭に追加します。
func (h *NotificationGrpcHandler) AddNotification(ctx context.Context, req *rpc.AddNotificationRequest) (*rpc.NotificationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	added, err := h.svc.AddNotification(ctx, notification.AddNotificationInput{
		Type:         toNotificationType(req.Kind, req.Label),
		Title:        req.Title,
		Message:      req.Message,
		EmployeeName: req.EmployeeName,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.NotificationResponse{Notification: toRPCNotification(added)}, nil
}

// ListNotifications は通知一覧と未読数を返します。
func (h *NotificationGrpcHandler) ListNotifications(ctx context.Context, _ *rpc.Empty) (*rpc.ListNotificationsResponse, error) {
	result, err := h.svc.ListNotifications(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}

	out := make([]rpc.Notification, 0, len(result.Notifications))
	for _, n := range result.Notifications {
		out = append(out, toRPCNotification(n))
	}
	return &rpc.ListNotificationsResponse{Notifications: out, UnreadCount: result.UnreadCount}, nil
}

// MarkRead は通知を既読にします。
func (h *NotificationGrpcHandler) MarkRead(ctx context.Context, req *rpc.NotificationIDRequest) (*rpc.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.MarkRead(ctx, req.ID); err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.Empty{}, nil
}

// MarkAllRead はすべての通知を既読にします。
func (h *NotificationGrpcHandler) MarkAllRead(ctx context.Context, _ *rpc.Empty) (*rpc.Empty, error) {
	if err := h.svc.MarkAllRead(ctx); err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.Empty{}, nil
}

// DeleteNotification は通知を削除します。
func (h *NotificationGrpcHandler) DeleteNotification(ctx context.Context, req *rpc.NotificationIDRequest) (*rpc.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.DeleteNotification(ctx, req.ID); err != nil {
		return nil, toStatusError(err)
	}
	return &rpc.Empty{}, nil
}
