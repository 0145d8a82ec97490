package catalog

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	domcatalog "venue-desk/internal/domain/catalog"
	"venue-desk/internal/pkg/errs"
	"venue-desk/internal/usecase/shared"
)

var (
	ErrIndexOutOfRange = errs.New("catalog index out of range")
	ErrRemovalDeclined = shared.ErrNotConfirmed
)

// List keeps an ordered in-memory sequence of uniquely named items in
// lockstep with a store. A mutation is validated against memory first,
// applied to the store second and reflected in memory only on success.
type List struct {
	mu    sync.Mutex
	store shared.CatalogStore
	items []domcatalog.Item
}

func Load(ctx context.Context, store shared.CatalogStore) (*List, error) {
	items, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	return &List{store: store, items: items}, nil
}

func (l *List) Items() []domcatalog.Item {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domcatalog.Item, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// IndexOf returns -1 when id is not in the list.
func (l *List) IndexOf(id uuid.UUID) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Add appends an item named "Object (N)" where N is the current length.
func (l *List) Add(ctx context.Context) (domcatalog.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.insertLocked(ctx, domcatalog.PlaceholderName(len(l.items)))
}

func (l *List) AddNamed(ctx context.Context, name string) (domcatalog.Item, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.insertLocked(ctx, name)
}

func (l *List) insertLocked(ctx context.Context, name string) (domcatalog.Item, error) {
	name, err := domcatalog.NormalizeName(name)
	if err != nil {
		return domcatalog.Item{}, err
	}
	if l.hasNameLocked(name, -1) {
		return domcatalog.Item{}, domcatalog.ErrDuplicateName
	}

	item, err := l.store.Insert(ctx, name)
	if err != nil {
		return domcatalog.Item{}, err
	}
	l.items = append(l.items, item)
	return item, nil
}

// Remove deletes the item at index once confirm approves its name.
func (l *List) Remove(ctx context.Context, index int, confirm shared.ConfirmFunc) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	item := l.items[index]
	if confirm == nil || !confirm(item.Name) {
		return ErrRemovalDeclined
	}

	if err := l.store.Delete(ctx, item.ID); err != nil {
		return err
	}
	l.items = slices.Delete(l.items, index, index+1)
	return nil
}

// Rename is a no-op when the name is unchanged.
func (l *List) Rename(ctx context.Context, index int, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	name, err := domcatalog.NormalizeName(name)
	if err != nil {
		return err
	}
	if l.items[index].Name == name {
		return nil
	}
	if l.hasNameLocked(name, index) {
		return domcatalog.ErrDuplicateName
	}

	if err := l.store.Rename(ctx, l.items[index].ID, name); err != nil {
		return err
	}
	l.items[index].Name = name
	return nil
}

func (l *List) hasNameLocked(name string, skip int) bool {
	for i, it := range l.items {
		if i != skip && it.Name == name {
			return true
		}
	}
	return false
}
