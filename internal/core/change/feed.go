package change

import (
	"context"
	"sync"
	"time"
)

// Entity は変更対象のエンティティ種別です。
type Entity string

const (
	EntityEmployee     Entity = "employee"
	EntityProject      Entity = "project"
	EntityTask         Entity = "task"
	EntityNotification Entity = "notification"
)

// Operation は変更操作の種別です。
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationDelete Operation = "delete"
)

// Event は 1 件の状態変更を表します。
// ParentID はタスクの場合に所属プロジェクトの ID を保持します。
type Event struct {
	Entity     Entity    `json:"entity"`
	Operation  Operation `json:"operation"`
	ID         string    `json:"id"`
	ParentID   string    `json:"parent_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher は変更イベントの発行先です。
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher は何もしない Publisher です。
type NopPublisher struct{}

// Publish はイベントを破棄します。
func (NopPublisher) Publish(context.Context, Event) {}

// Feed は購読者へ変更イベントを同期的に配信します。
// 購読者は配信中にストアへ同期的に書き込んではいけません。
type Feed struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]func(Event)
	order  []int
}

// NewFeed は空の Feed を生成します。
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]func(Event))}
}

// Subscribe は購読者を登録し、解除用の関数を返します。
func (f *Feed) Subscribe(fn func(Event)) func() {
	if fn == nil {
		return func() {}
	}

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = fn
	f.order = append(f.order, id)
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			delete(f.subs, id)
			for i, existing := range f.order {
				if existing == id {
					f.order = append(f.order[:i], f.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Publish は登録順に購読者へイベントを配信します。
func (f *Feed) Publish(_ context.Context, event Event) {
	f.mu.RLock()
	handlers := make([]func(Event), 0, len(f.order))
	for _, id := range f.order {
		handlers = append(handlers, f.subs[id])
	}
	f.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}
