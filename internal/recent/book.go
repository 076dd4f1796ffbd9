package recent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// StorageKey is the single key under which the list is persisted.
const StorageKey = "recent_searches"

// ErrUnknownID is returned by Update when no entry has the given id.
var ErrUnknownID = errors.New("unknown recent search id")

// KV is the persistence the Book needs. Get reports found=false for a
// missing key.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Book is the persisted recent-search list. It is safe for concurrent use.
type Book struct {
	mu    sync.Mutex
	kv    KV
	limit int
}

// NewBook creates a Book over kv holding at most Limit entries.
func NewBook(kv KV) *Book {
	return &Book{kv: kv, limit: Limit}
}

// Add records s as the most recent search.
func (b *Book) Add(ctx context.Context, s Search) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list, err := b.load(ctx)
	if err != nil {
		return err
	}
	return b.save(ctx, Push(list, s, b.limit))
}

// List returns the entries, most recent first.
func (b *Book) List(ctx context.Context) ([]Search, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load(ctx)
}

// Update replaces the quick-weather summary of one entry without changing
// its position or timestamp.
func (b *Book) Update(ctx context.Context, id string, qw QuickWeather) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	list, err := b.load(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].QuickWeather = &qw
			return b.save(ctx, list)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownID, id)
}

// Clear forgets every entry.
func (b *Book) Clear(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.kv.Delete(ctx, StorageKey)
}

func (b *Book) load(ctx context.Context) ([]Search, error) {
	raw, found, err := b.kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load recent searches: %w", err)
	}
	if !found || len(raw) == 0 {
		return []Search{}, nil
	}

	var list []Search
	if err := json.Unmarshal(raw, &list); err != nil {
		slog.Warn("discarding unreadable recent searches", "err", err)
		return []Search{}, nil
	}
	if len(list) > b.limit {
		list = list[:b.limit]
	}
	return list, nil
}

func (b *Book) save(ctx context.Context, list []Search) error {
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode recent searches: %w", err)
	}
	if err := b.kv.Put(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("save recent searches: %w", err)
	}
	return nil
}
