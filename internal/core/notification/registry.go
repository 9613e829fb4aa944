package notification

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/workforce/internal/core/change"
	"github.com/sirupsen/logrus"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// UseCase は通知レジストリの公開インターフェースです。
type UseCase interface {
	AddNotification(ctx context.Context, in AddNotificationInput) (*Notification, error)
	ListNotifications(ctx context.Context) (*ListNotificationsResult, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
}

// AddNotificationInput は通知追加時の入力です。
type AddNotificationInput struct {
	Type         Type
	Title        string
	Message      string
	EmployeeName string
}

// ListNotificationsResult は通知一覧と未読件数です。
type ListNotificationsResult struct {
	Notifications []*Notification
	UnreadCount   int
}

// Registry はプロセス内で唯一の通知ストアです。
// 構築はコンポジションルートで一度だけ行い、必要なコンポーネントへ注入します。
// notifications は常に新しい順に並びます。
type Registry struct {
	mu            sync.RWMutex
	notifications []*Notification
	unread        int

	clock     Clock
	publisher change.Publisher
	logger    logrus.FieldLogger
}

// NewRegistry は空の Registry を生成します。
func NewRegistry(clock Clock, publisher change.Publisher, logger logrus.FieldLogger) *Registry {
	if clock == nil {
		clock = realClock{}
	}
	if publisher == nil {
		publisher = change.NopPublisher{}
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Registry{clock: clock, publisher: publisher, logger: logger}
}

// LoadSampleNotifications は初回起動用のサンプル通知 3 件を登録します。
// すでに通知が存在する場合は何もしません。
func (r *Registry) LoadSampleNotifications(ctx context.Context) {
	r.mu.Lock()
	if len(r.notifications) > 0 {
		r.mu.Unlock()
		return
	}

	now := r.clock.Now()
	r.notifications = []*Notification{
		{
			ID:           uuid.NewString(),
			Type:         TypePerformanceReview,
			Title:        "Performans Değerlendirmesi",
			Message:      "Performans değerlendirmesi zamanı geldi",
			EmployeeName: "Ahmet Yılmaz",
			CreatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			Type:         TypeVacationRequest,
			Title:        "İzin Talebi",
			Message:      "5 günlük izin talep etti",
			EmployeeName: "Ayşe Kara",
			CreatedAt:    now.Add(-time.Hour),
		},
		{
			ID:           uuid.NewString(),
			Type:         TypeNewEmployee,
			Title:        "Yeni Çalışan",
			Message:      "Ekibe katıldı",
			EmployeeName: "Mehmet Demir",
			CreatedAt:    now.Add(-2 * time.Hour),
		},
	}
	r.recountUnread()
	ids := make([]string, 0, len(r.notifications))
	for _, n := range r.notifications {
		ids = append(ids, n.ID)
	}
	r.mu.Unlock()

	for _, id := range ids {
		r.publish(ctx, change.OperationCreate, id, now)
	}
	r.logger.WithField("count", len(ids)).Info("sample notifications loaded")
}

// AddNotification は通知を作成し、一覧の先頭に追加します。
func (r *Registry) AddNotification(ctx context.Context, in AddNotificationInput) (*Notification, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidTitle
	}
	if !isValidType(in.Type) {
		return nil, fmt.Errorf("type %q: %w", in.Type.Kind, ErrInvalidType)
	}

	n := &Notification{
		ID:           uuid.NewString(),
		Type:         in.Type,
		Title:        title,
		Message:      in.Message,
		EmployeeName: in.EmployeeName,
		CreatedAt:    r.clock.Now(),
	}

	r.mu.Lock()
	r.notifications = append([]*Notification{n}, r.notifications...)
	r.recountUnread()
	r.mu.Unlock()

	r.publish(ctx, change.OperationCreate, n.ID, n.CreatedAt)
	r.logger.WithFields(logrus.Fields{"notification_id": n.ID, "kind": n.Type.Kind}).Debug("notification added")

	return cloneNotification(n), nil
}

// MarkRead は通知を既読にします。存在しない場合は何もせず ErrNotificationNotFound を返します。
func (r *Registry) MarkRead(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	r.mu.Lock()
	idx := r.indexOf(id)
	if idx >= 0 {
		r.notifications[idx].IsRead = true
	}
	r.recountUnread()
	r.mu.Unlock()

	if idx < 0 {
		return ErrNotificationNotFound
	}

	r.publish(ctx, change.OperationUpdate, id, r.clock.Now())
	return nil
}

// MarkAllRead はすべての通知を既読にします。
func (r *Registry) MarkAllRead(ctx context.Context) error {
	r.mu.Lock()
	for _, n := range r.notifications {
		n.IsRead = true
	}
	r.recountUnread()
	r.mu.Unlock()

	r.publish(ctx, change.OperationUpdate, "", r.clock.Now())
	return nil
}

// DeleteNotification は通知を削除します。存在しない場合は何もせず ErrNotificationNotFound を返します。
func (r *Registry) DeleteNotification(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("id: %w", ErrInvalidID)
	}

	r.mu.Lock()
	idx := r.indexOf(id)
	if idx >= 0 {
		r.notifications = append(r.notifications[:idx], r.notifications[idx+1:]...)
	}
	r.recountUnread()
	r.mu.Unlock()

	if idx < 0 {
		return ErrNotificationNotFound
	}

	r.publish(ctx, change.OperationDelete, id, r.clock.Now())
	return nil
}

// ListNotifications は通知一覧 (新しい順) と未読件数を返します。
func (r *Registry) ListNotifications(_ context.Context) (*ListNotificationsResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]*Notification, 0, len(r.notifications))
	for _, n := range r.notifications {
		list = append(list, cloneNotification(n))
	}
	return &ListNotificationsResult{Notifications: list, UnreadCount: r.unread}, nil
}

// UnreadCount は未読件数を返します。
func (r *Registry) UnreadCount(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.unread
}

func (r *Registry) indexOf(id string) int {
	for i, n := range r.notifications {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// recountUnread は mu を保持した状態で呼び出します。
func (r *Registry) recountUnread() {
	count := 0
	for _, n := range r.notifications {
		if !n.IsRead {
			count++
		}
	}
	r.unread = count
}

func (r *Registry) publish(ctx context.Context, op change.Operation, id string, at time.Time) {
	r.publisher.Publish(ctx, change.Event{
		Entity:     change.EntityNotification,
		Operation:  op,
		ID:         id,
		OccurredAt: at,
	})
}

func isValidType(t Type) bool {
	switch t.Kind {
	case KindPerformanceReview, KindVacationRequest, KindVacationApproval, KindNewEmployee:
		return true
	case KindCustom:
		return strings.TrimSpace(t.Label) != ""
	default:
		return false
	}
}

func cloneNotification(n *Notification) *Notification {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
