package catalogService

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/model/user"
	"file-catalog/internal/store"
	"file-catalog/pkg/logger"
	"file-catalog/pkg/metrics"

	"go.uber.org/zap"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("admin rights required")
	ErrUnknownUser     = errors.New("unknown user")
	ErrInvalidUpload   = errors.New("file content without a file name")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoBlobStore     = errors.New("blob storage is not configured")
)

type CatalogRepository interface {
	LoadItems(ctx context.Context) ([]catalogInfo.Item, error)
	SaveItem(ctx context.Context, it catalogInfo.Item) error
	DeleteItem(ctx context.Context, itemID string) error
}

type UserSource interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	GetUser(ctx context.Context, id string) (user.User, error)
}

type BlobStore interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type Notifier interface {
	Publish(ctx context.Context, n catalogInfo.UpdateNotification) error
	Recent(ctx context.Context, limit int64) ([]catalogInfo.UpdateNotification, error)
}

// Deps wires the service. Store and Users are required; the rest are
// optional and skipped when nil.
type Deps struct {
	Store    *store.Store
	Users    UserSource
	Repo     CatalogRepository
	Blobs    BlobStore
	Notifier Notifier
	Metrics  *metrics.Metrics
	// Logger receives persistence failures, which happen outside any request.
	Logger *logger.Logger
}

type CatalogService struct {
	store    *store.Store
	users    UserSource
	repo     CatalogRepository
	blobs    BlobStore
	notifier Notifier
	metrics  *metrics.Metrics
	log      *logger.Logger

	// persistMu orders repository writes; saved holds the newest revision
	// written per item so a late listener never overwrites newer state.
	persistMu sync.Mutex
	saved     map[string]uint64
}

func New(deps Deps) *CatalogService {
	s := &CatalogService{
		store:    deps.Store,
		users:    deps.Users,
		repo:     deps.Repo,
		blobs:    deps.Blobs,
		notifier: deps.Notifier,
		metrics:  deps.Metrics,
		log:      deps.Logger,
		saved:    make(map[string]uint64),
	}
	if s.log == nil {
		s.log = logger.GetLogger(context.Background())
	}
	s.metrics.SetItems(s.store.Snapshot().Len())
	s.store.OnChange(func(_, next *store.Snapshot, change store.Change) {
		s.metrics.SetItems(next.Len())
		s.persist(next.Revision(), change)
	})
	return s
}

// LoadInitialItems reads persisted items, seeding the demo catalog into an
// empty repository.
func LoadInitialItems(ctx context.Context, repo CatalogRepository, urls catalogInfo.URLBuilder) ([]catalogInfo.Item, error) {
	if repo == nil {
		return catalogInfo.SeedItems(urls), nil
	}
	items, err := repo.LoadItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(items) > 0 {
		return items, nil
	}
	items = catalogInfo.SeedItems(urls)
	for _, it := range items {
		if err := repo.SaveItem(ctx, it); err != nil {
			return nil, fmt.Errorf("seed item %s: %w", it.ID, err)
		}
	}
	logger.GetLogger(ctx).Info("seeded demo catalog", zap.Int("items", len(items)))
	return items, nil
}

func principal(ctx context.Context) (user.Principal, error) {
	p, ok := user.PrincipalFromContext(ctx)
	if !ok {
		return user.Principal{}, ErrUnauthenticated
	}
	return p, nil
}

func requireAdmin(ctx context.Context) (user.Principal, error) {
	p, err := principal(ctx)
	if err != nil {
		return p, err
	}
	if !p.Admin {
		return p, ErrForbidden
	}
	return p, nil
}

func canSee(p user.Principal, it catalogInfo.Item) bool {
	return p.Admin || it.VisibleTo(p.UserID)
}

// visibleItem reports hidden items as missing so their existence does not leak.
func (s *CatalogService) visibleItem(p user.Principal, itemID string) (catalogInfo.Item, error) {
	it, ok := s.store.Snapshot().Item(itemID)
	if !ok || !canSee(p, it) {
		return catalogInfo.Item{}, fmt.Errorf("item %s: %w", itemID, catalogInfo.ErrItemNotFound)
	}
	return it, nil
}

// checkUsers normalizes the user list and makes sure every id exists.
func (s *CatalogService) checkUsers(ctx context.Context, vis catalogInfo.Visibility, users []string) ([]string, error) {
	users = catalogInfo.NormalizeUsers(users)
	if vis != catalogInfo.VisibilityRestricted {
		return users, nil
	}
	for _, id := range users {
		if _, err := s.users.GetUser(ctx, id); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUnknownUser, id)
			}
			return nil, fmt.Errorf("lookup user %s: %w", id, err)
		}
	}
	return users, nil
}

// persist writes one committed change to the repository. Writes run one at
// a time and a change older than the last one written for the same item is
// dropped, so the repository always ends at the newest committed state.
func (s *CatalogService) persist(rev uint64, change store.Change) {
	if s.repo == nil || change.ItemID == "" {
		return
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if rev <= s.saved[change.ItemID] {
		return
	}
	s.saved[change.ItemID] = rev

	ctx := context.Background()
	if change.Item == nil {
		if err := s.repo.DeleteItem(ctx, change.ItemID); err != nil {
			s.log.Error("failed to delete persisted item", zap.String("item", change.ItemID), zap.Error(err))
		}
		return
	}
	if err := s.repo.SaveItem(ctx, *change.Item); err != nil {
		s.log.Error("failed to persist item", zap.String("item", change.ItemID), zap.Uint64("revision", rev), zap.Error(err))
	}
}

func (s *CatalogService) removeBlob(ctx context.Context, key string) {
	if s.blobs == nil {
		return
	}
	if err := s.blobs.Delete(ctx, key); err != nil {
		logger.GetLogger(ctx).Warn("failed to delete blob", zap.String("key", key), zap.Error(err))
	}
}

// uploadBlob stores content under the key of a version that is about to be
// committed. A nil content is a placeholder version with nothing to store.
func (s *CatalogService) uploadBlob(ctx context.Context, key string, file catalogInfo.FileUpload, content io.Reader) (bool, error) {
	if content == nil || s.blobs == nil {
		return false, nil
	}
	if !file.Attached() {
		return false, ErrInvalidUpload
	}
	if err := s.blobs.Upload(ctx, key, content, file.Size, file.ContentType); err != nil {
		return false, fmt.Errorf("upload %s: %w", key, err)
	}
	return true, nil
}

func (s *CatalogService) observe(intent string, err *error) {
	s.metrics.ObserveIntent(intent, *err)
}
