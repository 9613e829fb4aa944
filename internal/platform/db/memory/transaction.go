package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrReadOnlyTransaction は読み取り専用トランザクション内で書き込みを開始しようとした場合のエラーです。
var ErrReadOnlyTransaction = errors.New("memory: write inside read-only transaction")

type accessMode int

const (
	readOnly accessMode = iota + 1
	readWrite
)

// transactionContextKey はコンテキストにトランザクションを格納するためのキーです。
type transactionContextKey struct{}

var txContextKey = transactionContextKey{}

type txState struct {
	manager *TransactionManager
	mode    accessMode
}

// TransactionManager はプロセス内ストア向けのトランザクション制御を提供します。
// 書き込みは一つずつ、読み取りは並行に実行されます。ロールバックは行いません。
type TransactionManager struct {
	mu sync.RWMutex
}

// NewTransactionManager は TransactionManager を生成します。
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// WithinReadOnly は読み取りロックを取得し、fn を実行します。
func (m *TransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.within(ctx, readOnly, fn)
}

// WithinReadWrite は書き込みロックを取得し、fn を実行します。
func (m *TransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if m == nil {
		return fn(ctx)
	}
	return m.within(ctx, readWrite, fn)
}

func (m *TransactionManager) within(ctx context.Context, mode accessMode, fn func(context.Context) error) error {
	if fn == nil {
		return fmt.Errorf("memory: transaction function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if state, ok := txFromContext(ctx); ok && state.manager == m {
		if mode == readWrite && state.mode == readOnly {
			return ErrReadOnlyTransaction
		}
		return fn(ctx)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if mode == readWrite {
		m.mu.Lock()
		defer m.mu.Unlock()
	} else {
		m.mu.RLock()
		defer m.mu.RUnlock()
	}

	return fn(contextWithTx(ctx, &txState{manager: m, mode: mode}))
}

func contextWithTx(ctx context.Context, state *txState) context.Context {
	return context.WithValue(ctx, txContextKey, state)
}

func txFromContext(ctx context.Context) (*txState, bool) {
	if ctx == nil {
		return nil, false
	}
	state, ok := ctx.Value(txContextKey).(*txState)
	return state, ok
}

// InTransaction はコンテキストがこのマネージャのトランザクション内かどうかを返します。
func (m *TransactionManager) InTransaction(ctx context.Context) bool {
	state, ok := txFromContext(ctx)
	return ok && state.manager == m
}
