package store

import "file-catalog/internal/model/catalogInfo"

type Tab string

const (
	TabAll     Tab = "all"
	TabUpdates Tab = "updates"
)

// UIState is the selection and dialog state of the catalog page.
type UIState struct {
	IsAdmin          bool   `json:"isAdmin"`
	SelectedItemID   string `json:"selectedItemId,omitempty"`
	AddDialogOpen    bool   `json:"addDialogOpen"`
	VersionSheetOpen bool   `json:"versionSheetOpen"`
}

// Snapshot is an immutable view of the catalog. Every committed intent
// produces a new snapshot with a higher revision.
type Snapshot struct {
	revision uint64
	items    []catalogInfo.Item
	ui       UIState
}

func (s *Snapshot) Revision() uint64 { return s.revision }

func (s *Snapshot) UI() UIState { return s.ui }

func (s *Snapshot) Len() int { return len(s.items) }

func (s *Snapshot) Items() []catalogInfo.Item {
	out := make([]catalogInfo.Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

func (s *Snapshot) Item(id string) (catalogInfo.Item, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.items[i].Clone(), true
	}
	return catalogInfo.Item{}, false
}

// SelectedItem resolves the selection against this snapshot, so it always
// reflects the latest state of the selected item.
func (s *Snapshot) SelectedItem() (catalogInfo.Item, bool) {
	if s.ui.SelectedItemID == "" {
		return catalogInfo.Item{}, false
	}
	return s.Item(s.ui.SelectedItemID)
}

func (s *Snapshot) UpdatedCount() int {
	n := 0
	for _, it := range s.items {
		if it.HasUpdate() {
			n++
		}
	}
	return n
}

func (s *Snapshot) SubscribedCount() int {
	n := 0
	for _, it := range s.items {
		if it.Subscribed {
			n++
		}
	}
	return n
}

// DefaultTab opens on the updates tab while anything is pending.
func (s *Snapshot) DefaultTab() Tab {
	if s.UpdatedCount() > 0 {
		return TabUpdates
	}
	return TabAll
}

func (s *Snapshot) Filter(tab Tab) []catalogInfo.Item {
	if tab != TabUpdates {
		return s.Items()
	}
	out := make([]catalogInfo.Item, 0, len(s.items))
	for _, it := range s.items {
		if it.HasUpdate() {
			out = append(out, it.Clone())
		}
	}
	return out
}

// View returns a snapshot holding only the items keep accepts. It shares
// the revision and UI state, so the derived counts and tabs describe what a
// single caller can see.
func (s *Snapshot) View(keep func(catalogInfo.Item) bool) *Snapshot {
	items := make([]catalogInfo.Item, 0, len(s.items))
	for _, it := range s.items {
		if keep(it) {
			items = append(items, it)
		}
	}
	return &Snapshot{revision: s.revision, items: items, ui: s.ui}
}

func (s *Snapshot) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
