// Package store persists the ledger and catalog as two JSON documents in
// a key-value backend (SQLite, bbolt, Redis or memory).
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theirongolddev/fintrack/internal/model"
)

// Keys under which the two collections are stored.
const (
	KeyTransactions = "finance_tracker_transactions"
	KeyCategories   = "finance_tracker_categories"
)

// ErrCorruptState is returned when a stored value is not a JSON array of
// the expected shape. It is always wrapped in *CorruptStateError.
var ErrCorruptState = errors.New("corrupt stored state")

// CorruptStateError names the key whose value failed to decode.
type CorruptStateError struct {
	Key string
	Err error
}

func (e *CorruptStateError) Error() string {
	return fmt.Sprintf("%s: key %q: %v", ErrCorruptState, e.Key, e.Err)
}

// Unwrap exposes both the sentinel and the decode error.
func (e *CorruptStateError) Unwrap() []error {
	return []error{ErrCorruptState, e.Err}
}

// KV is a string key-value backend. Get reports ok=false for absent keys.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Adapter reads and writes whole collections through a KV.
type Adapter struct {
	kv KV
}

// NewAdapter wraps kv.
func NewAdapter(kv KV) *Adapter {
	return &Adapter{kv: kv}
}

// Close closes the underlying backend.
func (a *Adapter) Close() error {
	return a.kv.Close()
}

// LoadTransactions returns the stored ledger; an absent key yields an
// empty ledger.
func (a *Adapter) LoadTransactions(ctx context.Context) ([]model.Transaction, error) {
	return load[model.Transaction](ctx, a.kv, KeyTransactions)
}

// SaveTransactions replaces the stored ledger with txns.
func (a *Adapter) SaveTransactions(ctx context.Context, txns []model.Transaction) error {
	return save(ctx, a.kv, KeyTransactions, txns)
}

// LoadCategories returns the stored catalog; an absent key yields an
// empty catalog.
func (a *Adapter) LoadCategories(ctx context.Context) ([]model.Category, error) {
	return load[model.Category](ctx, a.kv, KeyCategories)
}

// SaveCategories replaces the stored catalog with cats.
func (a *Adapter) SaveCategories(ctx context.Context, cats []model.Category) error {
	return save(ctx, a.kv, KeyCategories, cats)
}

// Raw returns the stored JSON for key, or "[]" when absent.
func (a *Adapter) Raw(ctx context.Context, key string) (json.RawMessage, error) {
	v, ok, err := a.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return json.RawMessage("[]"), nil
	}
	return json.RawMessage(v), nil
}

func load[T any](ctx context.Context, kv KV, key string) ([]T, error) {
	v, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	if !ok {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(v), &items); err != nil {
		return nil, &CorruptStateError{Key: key, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func save[T any](ctx context.Context, kv KV, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
