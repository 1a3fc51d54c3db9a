package catalogService_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/model/user"
	"file-catalog/internal/repository/notifyRepo"
	"file-catalog/internal/service/catalogService"
	"file-catalog/internal/store"
	"file-catalog/pkg/logger"
	"file-catalog/pkg/metrics"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memRepo struct {
	mu      sync.Mutex
	items   map[string]catalogInfo.Item
	order   []string
	deleted []string
}

func newMemRepo() *memRepo {
	return &memRepo{items: map[string]catalogInfo.Item{}}
}

func (r *memRepo) LoadItems(_ context.Context) ([]catalogInfo.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]catalogInfo.Item, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *memRepo) SaveItem(_ context.Context, it catalogInfo.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; !ok {
		r.order = append(r.order, it.ID)
	}
	r.items[it.ID] = it.Clone()
	return nil
}

func (r *memRepo) DeleteItem(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, itemID)
	r.deleted = append(r.deleted, itemID)
	return nil
}

func (r *memRepo) get(id string) (catalogInfo.Item, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	return it, ok
}

type memBlobs struct {
	mu         sync.Mutex
	objects    map[string][]byte
	failUpload bool
	failDelete bool
}

func newMemBlobs() *memBlobs {
	return &memBlobs{objects: map[string][]byte{}}
}

func (b *memBlobs) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if b.failUpload {
		return errors.New("bucket unavailable")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = data
	return nil
}

func (b *memBlobs) Download(_ context.Context, key string) (io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[key]
	if !ok {
		return nil, fmt.Errorf("no such key %s", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *memBlobs) Delete(_ context.Context, key string) error {
	if b.failDelete {
		return errors.New("bucket unavailable")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	return nil
}

func (b *memBlobs) has(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.objects[key]
	return ok
}

type fixture struct {
	svc      *catalogService.CatalogService
	store    *store.Store
	repo     *memRepo
	blobs    *memBlobs
	notifier *notifyRepo.NotifyRepo
	registry *prometheus.Registry
}

func newStore() *store.Store {
	n := 0
	return store.New(
		catalogInfo.SeedItems(catalogInfo.NewURLBuilder("")),
		store.WithClock(func() time.Time { return time.Date(2026, 2, 15, 12, 0, 0, 0, time.UTC) }),
		store.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("gen-%d", n)
		}),
	)
}

func setup(t *testing.T) fixture {
	t.Helper()
	st := newStore()
	mr := miniredis.RunT(t)
	notifier := notifyRepo.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 10)
	reg := prometheus.NewRegistry()
	f := fixture{
		store:    st,
		repo:     newMemRepo(),
		blobs:    newMemBlobs(),
		notifier: notifier,
		registry: reg,
	}
	f.svc = catalogService.New(catalogService.Deps{
		Store:    st,
		Users:    user.NewDirectory(user.DemoUsers()),
		Repo:     f.repo,
		Blobs:    f.blobs,
		Notifier: notifier,
		Metrics:  metrics.New(metrics.WithRegistry(reg)),
	})
	return f
}

func as(userID string, admin bool) context.Context {
	return user.WithPrincipal(context.Background(), user.Principal{UserID: userID, Admin: admin})
}

var (
	admin = as("jdavis", true)
	klee  = as("klee", false)
	smith = as("jsmith", false)
)

func ids(items []catalogInfo.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestListItems(t *testing.T) {
	f := setup(t)

	t.Run("admin sees everything", func(t *testing.T) {
		l, err := f.svc.ListItems(admin, store.TabAll)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(l.Items))
		assert.Equal(t, 3, l.UpdatedCount)
		assert.Equal(t, 3, l.SubscribedCount)
	})

	t.Run("restricted items are scoped", func(t *testing.T) {
		l, err := f.svc.ListItems(klee, store.TabAll)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, ids(l.Items))

		l, err = f.svc.ListItems(smith, store.TabAll)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3", "4"}, ids(l.Items))
	})

	t.Run("default tab is updates", func(t *testing.T) {
		l, err := f.svc.ListItems(klee, "")
		require.NoError(t, err)
		assert.Equal(t, store.TabUpdates, l.Tab)
		assert.Equal(t, store.TabUpdates, l.DefaultTab)
		assert.Equal(t, []string{"1", "2"}, ids(l.Items))
		assert.Equal(t, 2, l.UpdatedCount)
	})

	t.Run("unknown tab", func(t *testing.T) {
		_, err := f.svc.ListItems(klee, "starred")
		assert.ErrorIs(t, err, catalogService.ErrInvalidArgument)
	})

	t.Run("no principal", func(t *testing.T) {
		_, err := f.svc.ListItems(context.Background(), store.TabAll)
		assert.ErrorIs(t, err, catalogService.ErrUnauthenticated)
	})
}

func TestGetItem_HiddenReportsNotFound(t *testing.T) {
	f := setup(t)

	_, err := f.svc.GetItem(klee, "4")
	assert.ErrorIs(t, err, catalogInfo.ErrItemNotFound)

	it, err := f.svc.GetItem(smith, "4")
	require.NoError(t, err)
	assert.Equal(t, "Compliance Audit Trail", it.Name)
}

func TestAdminOnlyIntents(t *testing.T) {
	f := setup(t)
	before := f.store.Snapshot().Revision()

	_, err := f.svc.RenameItem(klee, "1", "Hijacked")
	assert.ErrorIs(t, err, catalogService.ErrForbidden)
	assert.ErrorIs(t, f.svc.DeleteItem(klee, "1"), catalogService.ErrForbidden)
	_, _, err = f.svc.AddVersion(klee, "1", catalogInfo.FileUpload{}, nil)
	assert.ErrorIs(t, err, catalogService.ErrForbidden)
	_, err = f.svc.SetVisibility(klee, "1", catalogInfo.VisibilityRestricted, []string{"klee"})
	assert.ErrorIs(t, err, catalogService.ErrForbidden)
	_, err = f.svc.SetCurrentVersion(klee, "1", "1-v1")
	assert.ErrorIs(t, err, catalogService.ErrForbidden)
	_, err = f.svc.DeleteVersion(klee, "1", "1-v1")
	assert.ErrorIs(t, err, catalogService.ErrForbidden)
	_, err = f.svc.AddItem(klee, catalogService.NewItem{Name: "x", Visibility: catalogInfo.VisibilityAll})
	assert.ErrorIs(t, err, catalogService.ErrForbidden)
	_, err = f.svc.SetAdmin(klee, true)
	assert.ErrorIs(t, err, catalogService.ErrForbidden)

	assert.Equal(t, before, f.store.Snapshot().Revision())
}

func TestAddItem(t *testing.T) {
	t.Run("with content", func(t *testing.T) {
		f := setup(t)
		it, err := f.svc.AddItem(admin, catalogService.NewItem{
			Name:       "  Weekly Sales ",
			Visibility: catalogInfo.VisibilityRestricted,
			Users:      []string{"klee", "klee", "mwilson"},
			File:       catalogInfo.FileUpload{Name: "sales.csv", Size: 3 * 1024 * 1024, ContentType: "text/csv"},
			Content:    strings.NewReader("a,b,c"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Weekly Sales", it.Name)
		assert.Equal(t, []string{"klee", "mwilson"}, it.RestrictedTo)
		assert.Equal(t, "3.0 MB", it.Versions[0].FileSize)
		assert.Equal(t, catalogInfo.DefaultDistributionBase+"/weekly-sales/sales.csv", it.DistributionURL)
		assert.Equal(t, "gen-1", it.ID)
		assert.True(t, f.blobs.has("gen-1/gen-2"))

		saved, ok := f.repo.get(it.ID)
		require.True(t, ok)
		assert.Equal(t, it, saved)

		visible, err := f.svc.GetItem(klee, it.ID)
		require.NoError(t, err)
		assert.Equal(t, it.ID, visible.ID)
	})

	t.Run("user ids are trimmed before lookup", func(t *testing.T) {
		f := setup(t)
		it, err := f.svc.AddItem(admin, catalogService.NewItem{
			Name:       "Vendor Review",
			Visibility: catalogInfo.VisibilityRestricted,
			Users:      []string{" mwilson ", "mwilson", ""},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"mwilson"}, it.RestrictedTo)

		it, err = f.svc.SetVisibility(admin, it.ID, catalogInfo.VisibilityRestricted, []string{"klee ", " jsmith"})
		require.NoError(t, err)
		assert.Equal(t, []string{"klee", "jsmith"}, it.RestrictedTo)
	})

	t.Run("unknown restricted user", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.AddItem(admin, catalogService.NewItem{
			Name:       "Secret",
			Visibility: catalogInfo.VisibilityRestricted,
			Users:      []string{"ghost"},
		})
		assert.ErrorIs(t, err, catalogService.ErrUnknownUser)
		assert.Equal(t, 5, f.store.Snapshot().Len())
	})

	t.Run("upload failure leaves catalog untouched", func(t *testing.T) {
		f := setup(t)
		f.blobs.failUpload = true
		_, err := f.svc.AddItem(admin, catalogService.NewItem{
			Name:       "Broken",
			Visibility: catalogInfo.VisibilityAll,
			File:       catalogInfo.FileUpload{Name: "broken.bin", Size: 10},
			Content:    strings.NewReader("0123456789"),
		})
		assert.Error(t, err)
		assert.Equal(t, 5, f.store.Snapshot().Len())
	})

	t.Run("rejected item removes its uploaded content", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.AddItem(admin, catalogService.NewItem{
			Name:       "   ",
			Visibility: catalogInfo.VisibilityAll,
			File:       catalogInfo.FileUpload{Name: "orphan.csv", Size: 4},
			Content:    strings.NewReader("data"),
		})
		assert.ErrorIs(t, err, catalogInfo.ErrInvalidName)
		assert.False(t, f.blobs.has("gen-1/gen-2"))
	})

	t.Run("failed cleanup is logged", func(t *testing.T) {
		f := setup(t)
		f.blobs.failDelete = true
		core, logs := observer.New(zap.WarnLevel)
		ctx := logger.WithLogger(admin, logger.Wrap(zap.New(core)))

		_, err := f.svc.AddItem(ctx, catalogService.NewItem{
			Name:       "   ",
			Visibility: catalogInfo.VisibilityAll,
			File:       catalogInfo.FileUpload{Name: "orphan.csv", Size: 4},
			Content:    strings.NewReader("data"),
		})
		assert.ErrorIs(t, err, catalogInfo.ErrInvalidName)
		assert.True(t, f.blobs.has("gen-1/gen-2"))

		entries := logs.FilterMessage("failed to delete blob").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "gen-1/gen-2", entries[0].ContextMap()["key"])
	})

	t.Run("content without file name", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.AddItem(admin, catalogService.NewItem{
			Name:       "Nameless",
			Visibility: catalogInfo.VisibilityAll,
			Content:    strings.NewReader("data"),
		})
		assert.ErrorIs(t, err, catalogService.ErrInvalidUpload)
	})

	t.Run("empty name", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.AddItem(admin, catalogService.NewItem{Name: "   ", Visibility: catalogInfo.VisibilityAll})
		assert.ErrorIs(t, err, catalogInfo.ErrInvalidName)
	})
}

func TestAddVersion_NotifiesSubscribers(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	it, v, err := f.svc.AddVersion(admin, "1", catalogInfo.FileUpload{Name: "q4_revenue_v4.xlsx", Size: 1024 * 1024}, strings.NewReader("v4"))
	require.NoError(t, err)
	assert.Len(t, it.Versions, 4)
	assert.False(t, v.IsCurrent)
	assert.Equal(t, "v3", it.CurrentVersion)
	assert.True(t, f.blobs.has(catalogInfo.StorageKey("1", v.ID)))

	recent, err := f.notifier.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, catalogInfo.UpdateNotification{
		ItemID:     "1",
		ItemName:   "Q4 Revenue Report",
		VersionID:  v.ID,
		Filename:   "q4_revenue_v4.xlsx",
		UploadDate: "2026-02-15",
	}, recent[0])

	// item 3 has no subscription
	_, _, err = f.svc.AddVersion(admin, "3", catalogInfo.FileUpload{}, nil)
	require.NoError(t, err)
	recent, err = f.svc.Notifications(klee, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	_, _, err = f.svc.AddVersion(admin, "missing", catalogInfo.FileUpload{}, nil)
	assert.ErrorIs(t, err, catalogInfo.ErrItemNotFound)
}

func TestVersionLifecycle(t *testing.T) {
	f := setup(t)

	_, v, err := f.svc.AddVersion(admin, "2", catalogInfo.FileUpload{Name: "segmentation_v3.csv", Size: 1}, strings.NewReader("v3"))
	require.NoError(t, err)

	it, err := f.svc.SetCurrentVersion(admin, "2", v.ID)
	require.NoError(t, err)
	assert.Equal(t, "v3", it.CurrentVersion)
	assert.True(t, strings.HasSuffix(it.DistributionURL, "/customer-segmentation-data/segmentation_v3.csv"))

	rc, opened, err := f.svc.OpenVersion(klee, "2", v.ID)
	require.NoError(t, err)
	body, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "v3", string(body))
	assert.Equal(t, "segmentation_v3.csv", opened.Filename)

	it, err = f.svc.DeleteVersion(admin, "2", v.ID)
	require.NoError(t, err)
	assert.Len(t, it.Versions, 2)
	assert.False(t, f.blobs.has(catalogInfo.StorageKey("2", v.ID)))
	_, _, hasCurrent := it.Current()
	assert.False(t, hasCurrent)

	saved, ok := f.repo.get("2")
	require.True(t, ok)
	assert.Len(t, saved.Versions, 2)

	_, err = f.svc.DeleteVersion(admin, "2", v.ID)
	assert.ErrorIs(t, err, catalogInfo.ErrVersionNotFound)
}

func TestDeleteItem(t *testing.T) {
	f := setup(t)
	_, v, err := f.svc.AddVersion(admin, "3", catalogInfo.FileUpload{Name: "kpi_export_mar2026.xlsx", Size: 1}, strings.NewReader("x"))
	require.NoError(t, err)
	_, err = f.svc.SelectItem(admin, "3")
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteItem(admin, "3"))
	assert.False(t, f.blobs.has(catalogInfo.StorageKey("3", v.ID)))
	assert.Equal(t, []string{"3"}, f.repo.deleted)

	ui, err := f.svc.UIState(admin)
	require.NoError(t, err)
	assert.Empty(t, ui.SelectedItemID)
	assert.False(t, ui.VersionSheetOpen)

	assert.ErrorIs(t, f.svc.DeleteItem(admin, "3"), catalogInfo.ErrItemNotFound)
}

func TestVersionContent_FollowsIdentity(t *testing.T) {
	f := setup(t)

	read := func(t *testing.T, itemID, versionID string) string {
		t.Helper()
		rc, _, err := f.svc.OpenVersion(klee, itemID, versionID)
		require.NoError(t, err)
		defer rc.Close()
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(body)
	}

	file := catalogInfo.FileUpload{Name: "report.csv", Size: 5}
	_, first, err := f.svc.AddVersion(admin, "1", file, strings.NewReader("first"))
	require.NoError(t, err)
	_, second, err := f.svc.AddVersion(admin, "1", file, strings.NewReader("second"))
	require.NoError(t, err)

	t.Run("same filename keeps separate content", func(t *testing.T) {
		assert.Equal(t, "first", read(t, "1", first.ID))
		assert.Equal(t, "second", read(t, "1", second.ID))
	})

	t.Run("rename keeps content reachable", func(t *testing.T) {
		_, err := f.svc.RenameItem(admin, "1", "Q4 Revenue (final)")
		require.NoError(t, err)
		assert.Equal(t, "first", read(t, "1", first.ID))
	})

	t.Run("deleting one version leaves the other", func(t *testing.T) {
		_, err := f.svc.DeleteVersion(admin, "1", first.ID)
		require.NoError(t, err)
		assert.False(t, f.blobs.has(catalogInfo.StorageKey("1", first.ID)))
		assert.Equal(t, "second", read(t, "1", second.ID))
	})

	t.Run("deleting the item removes all content", func(t *testing.T) {
		require.NoError(t, f.svc.DeleteItem(admin, "1"))
		assert.False(t, f.blobs.has(catalogInfo.StorageKey("1", second.ID)))
	})
}

func TestRenameAndVisibility(t *testing.T) {
	f := setup(t)

	it, err := f.svc.RenameItem(admin, "5", "Supplier Scorecard")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(it.DistributionURL, "/supplier-scorecard/vendor_metrics_q4.xlsx"))

	_, err = f.svc.SetVisibility(admin, "5", catalogInfo.VisibilityRestricted, []string{"ghost"})
	assert.ErrorIs(t, err, catalogService.ErrUnknownUser)

	_, err = f.svc.SetVisibility(admin, "5", "public", nil)
	assert.ErrorIs(t, err, catalogInfo.ErrInvalidVisibility)

	it, err = f.svc.SetVisibility(admin, "5", catalogInfo.VisibilityAll, []string{"ghost"})
	require.NoError(t, err)
	assert.Empty(t, it.RestrictedTo)

	_, err = f.svc.GetItem(klee, "5")
	assert.NoError(t, err)
}

func TestSubscriptionAndDownload(t *testing.T) {
	f := setup(t)

	it, err := f.svc.ToggleSubscription(klee, "3")
	require.NoError(t, err)
	assert.True(t, it.Subscribed)

	it, err = f.svc.SetSubscribed(klee, "3", false)
	require.NoError(t, err)
	assert.False(t, it.Subscribed)

	_, err = f.svc.ToggleSubscription(klee, "4")
	assert.ErrorIs(t, err, catalogInfo.ErrItemNotFound)

	it, err = f.svc.RecordDownload(klee, "1")
	require.NoError(t, err)
	require.NotNil(t, it.LastDownloaded)
	assert.Equal(t, catalogInfo.Date("2026-02-15"), *it.LastDownloaded)
	assert.False(t, it.HasUpdate())

	_, err = f.svc.RecordDownload(klee, "5")
	assert.ErrorIs(t, err, catalogInfo.ErrItemNotFound)
}

// gatedRepo holds the first SaveItem call until release is closed.
type gatedRepo struct {
	*memRepo
	gated   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (r *gatedRepo) SaveItem(ctx context.Context, it catalogInfo.Item) error {
	if r.gated.CompareAndSwap(false, true) {
		close(r.entered)
		<-r.release
	}
	return r.memRepo.SaveItem(ctx, it)
}

func TestPersistence_KeepsNewestState(t *testing.T) {
	downloadedToday := func(it catalogInfo.Item) bool {
		return it.LastDownloaded != nil && *it.LastDownloaded == "2026-02-15"
	}

	t.Run("slow save does not overwrite a newer one", func(t *testing.T) {
		st := newStore()
		repo := &gatedRepo{memRepo: newMemRepo(), entered: make(chan struct{}), release: make(chan struct{})}
		svc := catalogService.New(catalogService.Deps{Store: st, Users: user.NewDirectory(user.DemoUsers()), Repo: repo})

		toggled := make(chan error, 1)
		go func() {
			_, err := svc.ToggleSubscription(klee, "3")
			toggled <- err
		}()
		<-repo.entered

		downloaded := make(chan error, 1)
		go func() {
			_, err := svc.RecordDownload(klee, "3")
			downloaded <- err
		}()
		require.Eventually(t, func() bool {
			it, _ := st.Snapshot().Item("3")
			return downloadedToday(it)
		}, time.Second, time.Millisecond)

		close(repo.release)
		require.NoError(t, <-toggled)
		require.NoError(t, <-downloaded)

		saved, ok := repo.get("3")
		require.True(t, ok)
		assert.True(t, saved.Subscribed)
		assert.True(t, downloadedToday(saved))
	})

	t.Run("late listener for an older revision is dropped", func(t *testing.T) {
		st := newStore()
		hold := make(chan struct{})
		held := make(chan struct{})
		// registered before the service, so it delays the toggle's persistence
		st.OnChange(func(_, _ *store.Snapshot, c store.Change) {
			if c.Intent == "toggle_subscription" {
				close(held)
				<-hold
			}
		})
		repo := newMemRepo()
		svc := catalogService.New(catalogService.Deps{Store: st, Users: user.NewDirectory(user.DemoUsers()), Repo: repo})

		toggled := make(chan error, 1)
		go func() {
			_, err := svc.ToggleSubscription(klee, "3")
			toggled <- err
		}()
		<-held

		_, err := svc.RecordDownload(klee, "3")
		require.NoError(t, err)
		saved, ok := repo.get("3")
		require.True(t, ok)
		require.True(t, saved.Subscribed)
		require.True(t, downloadedToday(saved))

		close(hold)
		require.NoError(t, <-toggled)

		saved, _ = repo.get("3")
		assert.True(t, downloadedToday(saved), "the older toggle state must not be written back")
		current, _ := st.Snapshot().Item("3")
		assert.Equal(t, current, saved)
	})

	t.Run("deleted item stays deleted", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.ToggleSubscription(klee, "3")
		require.NoError(t, err)
		require.NoError(t, f.svc.DeleteItem(admin, "3"))

		_, ok := f.repo.get("3")
		assert.False(t, ok)
		assert.Equal(t, []string{"3"}, f.repo.deleted)
	})

	t.Run("ui intents are not persisted", func(t *testing.T) {
		f := setup(t)
		_, err := f.svc.SelectItem(klee, "1")
		require.NoError(t, err)
		_, ok := f.repo.get("1")
		assert.False(t, ok)
	})
}

func TestSelectItem(t *testing.T) {
	f := setup(t)

	_, err := f.svc.SelectItem(klee, "4")
	assert.ErrorIs(t, err, catalogInfo.ErrItemNotFound)

	ui, err := f.svc.SelectItem(klee, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", ui.SelectedItemID)
	assert.True(t, ui.VersionSheetOpen)

	view, err := f.svc.UIState(klee)
	require.NoError(t, err)
	require.NotNil(t, view.SelectedItem)
	assert.Equal(t, "Q4 Revenue Report", view.SelectedItem.Name)

	// a selection the caller may not see is not resolved for them
	_, err = f.svc.SelectItem(smith, "4")
	require.NoError(t, err)
	view, err = f.svc.UIState(klee)
	require.NoError(t, err)
	assert.Equal(t, "4", view.SelectedItemID)
	assert.Nil(t, view.SelectedItem)

	ui, err = f.svc.SelectItem(klee, "")
	require.NoError(t, err)
	assert.Empty(t, ui.SelectedItemID)
	assert.False(t, ui.VersionSheetOpen)

	ui, err = f.svc.SetAddDialogOpen(admin, true)
	require.NoError(t, err)
	assert.True(t, ui.AddDialogOpen)

	ui, err = f.svc.SetAdmin(admin, true)
	require.NoError(t, err)
	assert.True(t, ui.IsAdmin)
}

func TestListUsers(t *testing.T) {
	f := setup(t)
	users, err := f.svc.ListUsers(klee)
	require.NoError(t, err)
	assert.Len(t, users, 12)
}

func TestMetricsTrackIntents(t *testing.T) {
	f := setup(t)

	_, err := f.svc.AddItem(admin, catalogService.NewItem{Name: "Metrics", Visibility: catalogInfo.VisibilityAll})
	require.NoError(t, err)
	_, err = f.svc.RenameItem(klee, "1", "nope")
	require.Error(t, err)

	families, err := f.registry.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			key := fam.GetName()
			for _, l := range m.GetLabel() {
				key += "," + l.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				values[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[key] = m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, 6.0, values["catalog_items"])
	assert.Equal(t, 1.0, values["catalog_intents_total,add_item,ok"])
	assert.Equal(t, 1.0, values["catalog_intents_total,rename,error"])
}

func TestLoadInitialItems(t *testing.T) {
	urls := catalogInfo.NewURLBuilder("")
	ctx := context.Background()

	t.Run("seeds an empty repository", func(t *testing.T) {
		repo := newMemRepo()
		items, err := catalogService.LoadInitialItems(ctx, repo, urls)
		require.NoError(t, err)
		assert.Len(t, items, 5)

		stored, _ := repo.LoadItems(ctx)
		assert.Equal(t, items, stored)
	})

	t.Run("prefers persisted items", func(t *testing.T) {
		repo := newMemRepo()
		require.NoError(t, repo.SaveItem(ctx, catalogInfo.SeedItems(urls)[2]))
		items, err := catalogService.LoadInitialItems(ctx, repo, urls)
		require.NoError(t, err)
		assert.Equal(t, []string{"3"}, ids(items))
	})

	t.Run("no repository", func(t *testing.T) {
		items, err := catalogService.LoadInitialItems(ctx, nil, urls)
		require.NoError(t, err)
		assert.Len(t, items, 5)
	})
}
