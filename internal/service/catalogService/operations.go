package catalogService

import (
	"context"
	"fmt"
	"io"

	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/model/user"
	"file-catalog/internal/store"
	"file-catalog/pkg/logger"

	"go.uber.org/zap"
)

// Listing is one page of the catalog table as the caller sees it.
type Listing struct {
	Revision        uint64             `json:"revision"`
	Tab             store.Tab          `json:"tab"`
	DefaultTab      store.Tab          `json:"defaultTab"`
	UpdatedCount    int                `json:"updatedCount"`
	SubscribedCount int                `json:"subscribedCount"`
	Items           []catalogInfo.Item `json:"items"`
}

// ListItems returns the items visible to the caller. An empty tab selects
// the default tab.
func (s *CatalogService) ListItems(ctx context.Context, tab store.Tab) (l Listing, err error) {
	defer s.observe("list_items", &err)
	p, err := principal(ctx)
	if err != nil {
		return Listing{}, err
	}
	view := s.store.Snapshot().View(func(it catalogInfo.Item) bool { return canSee(p, it) })

	switch tab {
	case "":
		tab = view.DefaultTab()
	case store.TabAll, store.TabUpdates:
	default:
		return Listing{}, fmt.Errorf("%w: unknown tab %q", ErrInvalidArgument, tab)
	}
	return Listing{
		Revision:        view.Revision(),
		Tab:             tab,
		DefaultTab:      view.DefaultTab(),
		UpdatedCount:    view.UpdatedCount(),
		SubscribedCount: view.SubscribedCount(),
		Items:           view.Filter(tab),
	}, nil
}

func (s *CatalogService) GetItem(ctx context.Context, itemID string) (it catalogInfo.Item, err error) {
	defer s.observe("get_item", &err)
	p, err := principal(ctx)
	if err != nil {
		return catalogInfo.Item{}, err
	}
	return s.visibleItem(p, itemID)
}

type NewItem struct {
	Name       string
	Visibility catalogInfo.Visibility
	Users      []string
	File       catalogInfo.FileUpload
	// Content is optional; nil creates a placeholder version.
	Content io.Reader
}

func (s *CatalogService) AddItem(ctx context.Context, in NewItem) (it catalogInfo.Item, err error) {
	defer s.observe("add_item", &err)
	if _, err = requireAdmin(ctx); err != nil {
		return catalogInfo.Item{}, err
	}
	users, err := s.checkUsers(ctx, in.Visibility, in.Users)
	if err != nil {
		return catalogInfo.Item{}, err
	}

	itemID, versionID := s.store.NewID(), s.store.NewID()
	key := catalogInfo.StorageKey(itemID, versionID)
	stored, err := s.uploadBlob(ctx, key, in.File, in.Content)
	if err != nil {
		return catalogInfo.Item{}, err
	}
	it, err = s.store.AddItem(itemID, versionID, in.Name, in.Visibility, users, in.File)
	if err != nil {
		if stored {
			s.removeBlob(ctx, key)
		}
		return catalogInfo.Item{}, err
	}
	logger.GetLogger(ctx).Info("item added", zap.String("item", it.ID), zap.String("name", it.Name))
	return it, nil
}

func (s *CatalogService) DeleteItem(ctx context.Context, itemID string) (err error) {
	defer s.observe("delete_item", &err)
	if _, err = requireAdmin(ctx); err != nil {
		return err
	}
	removed, err := s.store.DeleteItem(itemID)
	if err != nil {
		return err
	}
	for _, v := range removed.Versions {
		s.removeBlob(ctx, catalogInfo.StorageKey(removed.ID, v.ID))
	}
	logger.GetLogger(ctx).Info("item deleted", zap.String("item", itemID))
	return nil
}

func (s *CatalogService) RenameItem(ctx context.Context, itemID, name string) (it catalogInfo.Item, err error) {
	defer s.observe("rename", &err)
	if _, err = requireAdmin(ctx); err != nil {
		return catalogInfo.Item{}, err
	}
	return s.store.Rename(itemID, name)
}

func (s *CatalogService) SetVisibility(ctx context.Context, itemID string, vis catalogInfo.Visibility, users []string) (it catalogInfo.Item, err error) {
	defer s.observe("set_visibility", &err)
	if _, err = requireAdmin(ctx); err != nil {
		return catalogInfo.Item{}, err
	}
	if !vis.Valid() {
		return catalogInfo.Item{}, catalogInfo.ErrInvalidVisibility
	}
	if users, err = s.checkUsers(ctx, vis, users); err != nil {
		return catalogInfo.Item{}, err
	}
	return s.store.SetVisibility(itemID, vis, users)
}

func (s *CatalogService) SetSubscribed(ctx context.Context, itemID string, subscribed bool) (it catalogInfo.Item, err error) {
	defer s.observe("set_subscribed", &err)
	p, err := principal(ctx)
	if err != nil {
		return catalogInfo.Item{}, err
	}
	if _, err = s.visibleItem(p, itemID); err != nil {
		return catalogInfo.Item{}, err
	}
	return s.store.SetSubscribed(itemID, subscribed)
}

func (s *CatalogService) ToggleSubscription(ctx context.Context, itemID string) (it catalogInfo.Item, err error) {
	defer s.observe("toggle_subscription", &err)
	p, err := principal(ctx)
	if err != nil {
		return catalogInfo.Item{}, err
	}
	if _, err = s.visibleItem(p, itemID); err != nil {
		return catalogInfo.Item{}, err
	}
	return s.store.ToggleSubscription(itemID)
}

// RecordDownload marks the item downloaded today and returns it so the
// caller can redirect to its distribution URL.
func (s *CatalogService) RecordDownload(ctx context.Context, itemID string) (it catalogInfo.Item, err error) {
	defer s.observe("record_download", &err)
	p, err := principal(ctx)
	if err != nil {
		return catalogInfo.Item{}, err
	}
	if _, err = s.visibleItem(p, itemID); err != nil {
		return catalogInfo.Item{}, err
	}
	return s.store.RecordDownload(itemID)
}

func (s *CatalogService) AddVersion(ctx context.Context, itemID string, file catalogInfo.FileUpload, content io.Reader) (it catalogInfo.Item, v catalogInfo.Version, err error) {
	defer s.observe("add_version", &err)
	if _, err = requireAdmin(ctx); err != nil {
		return catalogInfo.Item{}, catalogInfo.Version{}, err
	}
	cur, ok := s.store.Snapshot().Item(itemID)
	if !ok {
		return catalogInfo.Item{}, catalogInfo.Version{}, fmt.Errorf("item %s: %w", itemID, catalogInfo.ErrItemNotFound)
	}
	versionID := s.store.NewID()
	key := catalogInfo.StorageKey(cur.ID, versionID)
	stored, err := s.uploadBlob(ctx, key, file, content)
	if err != nil {
		return catalogInfo.Item{}, catalogInfo.Version{}, err
	}
	it, v, err = s.store.AddVersion(itemID, versionID, file)
	if err != nil {
		if stored {
			s.removeBlob(ctx, key)
		}
		return catalogInfo.Item{}, catalogInfo.Version{}, err
	}
	if it.Subscribed {
		s.notify(ctx, it, v)
	}
	return it, v, nil
}

func (s *CatalogService) notify(ctx context.Context, it catalogInfo.Item, v catalogInfo.Version) {
	if s.notifier == nil {
		return
	}
	n := catalogInfo.UpdateNotification{
		ItemID:     it.ID,
		ItemName:   it.Name,
		VersionID:  v.ID,
		Filename:   v.Filename,
		UploadDate: v.UploadDate,
	}
	if err := s.notifier.Publish(ctx, n); err != nil {
		logger.GetLogger(ctx).Warn("failed to publish update notification", zap.String("item", it.ID), zap.Error(err))
	}
}

func (s *CatalogService) SetCurrentVersion(ctx context.Context, itemID, versionID string) (it catalogInfo.Item, err error) {
	defer s.observe("set_current_version", &err)
	if _, err = requireAdmin(ctx); err != nil {
		return catalogInfo.Item{}, err
	}
	return s.store.SetCurrentVersion(itemID, versionID)
}

func (s *CatalogService) DeleteVersion(ctx context.Context, itemID, versionID string) (it catalogInfo.Item, err error) {
	defer s.observe("delete_version", &err)
	if _, err = requireAdmin(ctx); err != nil {
		return catalogInfo.Item{}, err
	}
	it, removed, err := s.store.DeleteVersion(itemID, versionID)
	if err != nil {
		return catalogInfo.Item{}, err
	}
	s.removeBlob(ctx, catalogInfo.StorageKey(it.ID, removed.ID))
	return it, nil
}

// OpenVersion streams the stored content of a version.
func (s *CatalogService) OpenVersion(ctx context.Context, itemID, versionID string) (rc io.ReadCloser, v catalogInfo.Version, err error) {
	defer s.observe("open_version", &err)
	p, err := principal(ctx)
	if err != nil {
		return nil, catalogInfo.Version{}, err
	}
	it, err := s.visibleItem(p, itemID)
	if err != nil {
		return nil, catalogInfo.Version{}, err
	}
	idx := it.VersionIndex(versionID)
	if idx < 0 {
		return nil, catalogInfo.Version{}, fmt.Errorf("version %s: %w", versionID, catalogInfo.ErrVersionNotFound)
	}
	v = it.Versions[idx]
	if s.blobs == nil {
		return nil, v, ErrNoBlobStore
	}
	rc, err = s.blobs.Download(ctx, catalogInfo.StorageKey(it.ID, v.ID))
	if err != nil {
		return nil, v, fmt.Errorf("download %s: %w", v.Filename, err)
	}
	return rc, v, nil
}

func (s *CatalogService) ListUsers(ctx context.Context) (users []user.User, err error) {
	defer s.observe("list_users", &err)
	if _, err = principal(ctx); err != nil {
		return nil, err
	}
	return s.users.ListUsers(ctx)
}

func (s *CatalogService) Notifications(ctx context.Context, limit int64) (ns []catalogInfo.UpdateNotification, err error) {
	defer s.observe("notifications", &err)
	if _, err = principal(ctx); err != nil {
		return nil, err
	}
	if s.notifier == nil {
		return []catalogInfo.UpdateNotification{}, nil
	}
	return s.notifier.Recent(ctx, limit)
}
