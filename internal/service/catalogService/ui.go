package catalogService

import (
	"context"

	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/store"
)

// UIView is the page state together with the item the version sheet shows.
type UIView struct {
	store.UIState
	SelectedItem *catalogInfo.Item `json:"selectedItem,omitempty"`
}

// UIState resolves the selection against the current snapshot. A selected
// item the caller may not see is left out.
func (s *CatalogService) UIState(ctx context.Context) (UIView, error) {
	p, err := principal(ctx)
	if err != nil {
		return UIView{}, err
	}
	snap := s.store.Snapshot()
	view := UIView{UIState: snap.UI()}
	if it, ok := snap.SelectedItem(); ok && canSee(p, it) {
		view.SelectedItem = &it
	}
	return view, nil
}

// SelectItem opens the version sheet for an item; an empty id closes it.
func (s *CatalogService) SelectItem(ctx context.Context, itemID string) (ui store.UIState, err error) {
	defer s.observe("select_item", &err)
	p, err := principal(ctx)
	if err != nil {
		return store.UIState{}, err
	}
	if itemID == "" {
		s.store.SetVersionSheetOpen(false)
		return s.store.Snapshot().UI(), nil
	}
	if _, err = s.visibleItem(p, itemID); err != nil {
		return store.UIState{}, err
	}
	if err = s.store.SelectItem(itemID); err != nil {
		return store.UIState{}, err
	}
	s.store.SetVersionSheetOpen(true)
	return s.store.Snapshot().UI(), nil
}

func (s *CatalogService) SetAddDialogOpen(ctx context.Context, open bool) (ui store.UIState, err error) {
	defer s.observe("set_add_dialog_open", &err)
	if _, err = requireAdmin(ctx); err != nil {
		return store.UIState{}, err
	}
	s.store.SetAddDialogOpen(open)
	return s.store.Snapshot().UI(), nil
}

func (s *CatalogService) SetAdmin(ctx context.Context, admin bool) (ui store.UIState, err error) {
	defer s.observe("set_admin", &err)
	if _, err = requireAdmin(ctx); err != nil {
		return store.UIState{}, err
	}
	s.store.SetAdmin(admin)
	return s.store.Snapshot().UI(), nil
}
