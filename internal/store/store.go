// Package store holds the catalog state. All mutations go through intents
// that replace the current snapshot; snapshots are never modified in place.
package store

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"file-catalog/internal/model/catalogInfo"

	"github.com/google/uuid"
)

var ErrDuplicateID = errors.New("id already in use")

// Change describes a committed intent. Item is nil when the item was removed.
type Change struct {
	Intent string
	ItemID string
	Item   *catalogInfo.Item
}

// Listener runs after a commit, outside the store lock.
type Listener func(prev, next *Snapshot, change Change)

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithURLBuilder(urls catalogInfo.URLBuilder) Option {
	return func(s *Store) { s.urls = urls }
}

type Store struct {
	mu        sync.Mutex
	current   atomic.Pointer[Snapshot]
	listeners []Listener

	urls  catalogInfo.URLBuilder
	now   func() time.Time
	newID func() string
}

func New(items []catalogInfo.Item, opts ...Option) *Store {
	s := &Store{
		urls:  catalogInfo.NewURLBuilder(""),
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(&Snapshot{items: cloneAll(items)})
	return s
}

func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

func (s *Store) URLs() catalogInfo.URLBuilder {
	return s.urls
}

func (s *Store) OnChange(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Store) today() catalogInfo.Date {
	return catalogInfo.DateOf(s.now())
}

// NewID returns a fresh identifier for an item or version. Callers that
// store content before committing reserve ids with it.
func (s *Store) NewID() string {
	return s.newID()
}

func (s *Store) AddItem(itemID, versionID, name string, vis catalogInfo.Visibility, users []string, file catalogInfo.FileUpload) (catalogInfo.Item, error) {
	var created catalogInfo.Item
	err := s.commit(func(cur *Snapshot) (*Snapshot, Change, error) {
		if cur.indexOf(itemID) >= 0 {
			return nil, Change{}, fmt.Errorf("item %s: %w", itemID, ErrDuplicateID)
		}
		it, err := catalogInfo.NewItem(itemID, versionID, name, vis, users, file, s.today(), s.urls)
		if err != nil {
			return nil, Change{}, err
		}
		created = it
		items := make([]catalogInfo.Item, 0, len(cur.items)+1)
		items = append(items, cur.items...)
		items = append(items, it)
		return &Snapshot{items: items, ui: cur.ui}, itemChange("add_item", it), nil
	})
	return created.Clone(), err
}

func (s *Store) DeleteItem(itemID string) (catalogInfo.Item, error) {
	var removed catalogInfo.Item
	err := s.commit(func(cur *Snapshot) (*Snapshot, Change, error) {
		idx := cur.indexOf(itemID)
		if idx < 0 {
			return nil, Change{}, fmt.Errorf("item %s: %w", itemID, catalogInfo.ErrItemNotFound)
		}
		removed = cur.items[idx]
		items := make([]catalogInfo.Item, 0, len(cur.items)-1)
		items = append(items, cur.items[:idx]...)
		items = append(items, cur.items[idx+1:]...)
		ui := cur.ui
		if ui.SelectedItemID == itemID {
			ui.SelectedItemID = ""
			ui.VersionSheetOpen = false
		}
		return &Snapshot{items: items, ui: ui}, Change{Intent: "delete_item", ItemID: itemID}, nil
	})
	return removed.Clone(), err
}

func (s *Store) Rename(itemID, name string) (catalogInfo.Item, error) {
	return s.updateItem("rename", itemID, func(it catalogInfo.Item) (catalogInfo.Item, bool, error) {
		return catalogInfo.Rename(it, name, s.urls)
	})
}

func (s *Store) SetVisibility(itemID string, vis catalogInfo.Visibility, users []string) (catalogInfo.Item, error) {
	return s.updateItem("set_visibility", itemID, func(it catalogInfo.Item) (catalogInfo.Item, bool, error) {
		next, err := catalogInfo.SetVisibility(it, vis, users)
		return next, err == nil, err
	})
}

func (s *Store) SetSubscribed(itemID string, subscribed bool) (catalogInfo.Item, error) {
	return s.updateItem("set_subscribed", itemID, func(it catalogInfo.Item) (catalogInfo.Item, bool, error) {
		return catalogInfo.SetSubscribed(it, subscribed), it.Subscribed != subscribed, nil
	})
}

func (s *Store) ToggleSubscription(itemID string) (catalogInfo.Item, error) {
	return s.updateItem("toggle_subscription", itemID, func(it catalogInfo.Item) (catalogInfo.Item, bool, error) {
		return catalogInfo.SetSubscribed(it, !it.Subscribed), true, nil
	})
}

func (s *Store) RecordDownload(itemID string) (catalogInfo.Item, error) {
	return s.updateItem("record_download", itemID, func(it catalogInfo.Item) (catalogInfo.Item, bool, error) {
		return catalogInfo.RecordDownload(it, s.today()), true, nil
	})
}

func (s *Store) AddVersion(itemID, versionID string, file catalogInfo.FileUpload) (catalogInfo.Item, catalogInfo.Version, error) {
	var added catalogInfo.Version
	it, err := s.updateItem("add_version", itemID, func(it catalogInfo.Item) (catalogInfo.Item, bool, error) {
		if it.VersionIndex(versionID) >= 0 {
			return it, false, fmt.Errorf("version %s: %w", versionID, ErrDuplicateID)
		}
		next, v := catalogInfo.AddVersion(it, versionID, file, s.today())
		added = v
		return next, true, nil
	})
	return it, added, err
}

func (s *Store) SetCurrentVersion(itemID, versionID string) (catalogInfo.Item, error) {
	return s.updateItem("set_current_version", itemID, func(it catalogInfo.Item) (catalogInfo.Item, bool, error) {
		next, err := catalogInfo.SetCurrentVersion(it, versionID, s.urls)
		return next, err == nil, err
	})
}

func (s *Store) DeleteVersion(itemID, versionID string) (catalogInfo.Item, catalogInfo.Version, error) {
	var removed catalogInfo.Version
	it, err := s.updateItem("delete_version", itemID, func(it catalogInfo.Item) (catalogInfo.Item, bool, error) {
		next, v, err := catalogInfo.DeleteVersion(it, versionID)
		removed = v
		return next, err == nil, err
	})
	return it, removed, err
}

// SelectItem selects an item for the version sheet; an empty id clears the
// selection.
func (s *Store) SelectItem(itemID string) error {
	return s.updateUI("select_item", func(cur *Snapshot, ui *UIState) error {
		if itemID != "" && cur.indexOf(itemID) < 0 {
			return fmt.Errorf("item %s: %w", itemID, catalogInfo.ErrItemNotFound)
		}
		ui.SelectedItemID = itemID
		return nil
	})
}

func (s *Store) SetAddDialogOpen(open bool) {
	_ = s.updateUI("set_add_dialog_open", func(_ *Snapshot, ui *UIState) error {
		ui.AddDialogOpen = open
		return nil
	})
}

// SetVersionSheetOpen closes the sheet together with the selection.
func (s *Store) SetVersionSheetOpen(open bool) {
	_ = s.updateUI("set_version_sheet_open", func(_ *Snapshot, ui *UIState) error {
		ui.VersionSheetOpen = open
		if !open {
			ui.SelectedItemID = ""
		}
		return nil
	})
}

func (s *Store) SetAdmin(admin bool) {
	_ = s.updateUI("set_admin", func(_ *Snapshot, ui *UIState) error {
		ui.IsAdmin = admin
		return nil
	})
}

type mutator func(catalogInfo.Item) (catalogInfo.Item, bool, error)

// updateItem applies fn to one item. When fn reports no change the current
// snapshot is kept and no listener fires.
func (s *Store) updateItem(intent, itemID string, fn mutator) (catalogInfo.Item, error) {
	var result catalogInfo.Item
	err := s.commit(func(cur *Snapshot) (*Snapshot, Change, error) {
		idx := cur.indexOf(itemID)
		if idx < 0 {
			return nil, Change{}, fmt.Errorf("item %s: %w", itemID, catalogInfo.ErrItemNotFound)
		}
		next, changed, err := fn(cur.items[idx])
		if err != nil {
			return nil, Change{}, err
		}
		result = next
		if !changed {
			return cur, Change{}, nil
		}
		items := make([]catalogInfo.Item, len(cur.items))
		copy(items, cur.items)
		items[idx] = next
		return &Snapshot{items: items, ui: cur.ui}, itemChange(intent, next), nil
	})
	return result.Clone(), err
}

func (s *Store) updateUI(intent string, fn func(cur *Snapshot, ui *UIState) error) error {
	return s.commit(func(cur *Snapshot) (*Snapshot, Change, error) {
		ui := cur.ui
		if err := fn(cur, &ui); err != nil {
			return nil, Change{}, err
		}
		if ui == cur.ui {
			return cur, Change{}, nil
		}
		return &Snapshot{items: cur.items, ui: ui}, Change{Intent: intent}, nil
	})
}

// commit runs build under the lock and publishes its snapshot. Returning
// the current snapshot means nothing changed.
func (s *Store) commit(build func(cur *Snapshot) (*Snapshot, Change, error)) error {
	s.mu.Lock()
	cur := s.current.Load()
	next, change, err := build(cur)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if next == cur {
		s.mu.Unlock()
		return nil
	}
	next.revision = cur.revision + 1
	s.current.Store(next)
	listeners := append([]Listener{}, s.listeners...)
	s.mu.Unlock()

	for _, l := range listeners {
		l(cur, next, change)
	}
	return nil
}

func itemChange(intent string, it catalogInfo.Item) Change {
	c := it.Clone()
	return Change{Intent: intent, ItemID: it.ID, Item: &c}
}

func cloneAll(items []catalogInfo.Item) []catalogInfo.Item {
	out := make([]catalogInfo.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
