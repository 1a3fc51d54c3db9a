package catalogHandler_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	catalogproto "file-catalog/api/catalogproto/proto-generate"
	"file-catalog/internal/handler/catalogHandler"
	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/model/user"
	"file-catalog/internal/service/authService"
	"file-catalog/internal/service/catalogService"
	"file-catalog/internal/store"
	"file-catalog/pkg/logger"
	"file-catalog/pkg/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

type blobs struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (b *blobs) Upload(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = data
	return nil
}

func (b *blobs) Download(_ context.Context, key string) (io.ReadCloser, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (b *blobs) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	return nil
}

type env struct {
	client catalogproto.CatalogServiceClient
	admin  context.Context
	user   context.Context
}

func setup(t *testing.T) env {
	t.Helper()
	st := store.New(
		catalogInfo.SeedItems(catalogInfo.NewURLBuilder("")),
		store.WithClock(func() time.Time { return time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC) }),
	)
	svc := catalogService.New(catalogService.Deps{
		Store: st,
		Users: user.NewDirectory(user.DemoUsers()),
		Blobs: &blobs{objects: map[string][]byte{}},
	})
	auth := authService.New("secret", time.Hour, nil)

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.LoggingInterceptor(logger.Wrap(zap.NewNop()), nil),
			middleware.AuthInterceptor(auth),
		),
		grpc.ChainStreamInterceptor(middleware.StreamAuthInterceptor(auth)),
	)
	catalogproto.RegisterCatalogServiceServer(srv, catalogHandler.New(svc))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	withToken := func(userID string, admin bool) context.Context {
		token, err := auth.IssueToken(userID, admin)
		require.NoError(t, err)
		return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
	}
	return env{
		client: catalogproto.NewCatalogServiceClient(conn),
		admin:  withToken("jdavis", true),
		user:   withToken("klee", false),
	}
}

// download drains a DownloadVersion stream into its metadata and content.
func download(t *testing.T, stream grpc.ServerStreamingClient[catalogproto.VersionChunk]) (*catalogproto.Version, []byte, error) {
	t.Helper()
	var (
		meta *catalogproto.Version
		data []byte
	)
	for {
		chunk, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return meta, data, nil
		}
		if err != nil {
			return nil, nil, err
		}
		if chunk.GetVersion() != nil {
			meta = chunk.GetVersion()
		}
		data = append(data, chunk.GetData()...)
	}
}

func TestCatalogHandler_ListItems(t *testing.T) {
	e := setup(t)

	resp, err := e.client.ListItems(e.admin, &catalogproto.ListItemsRequest{Tab: "all"})
	require.NoError(t, err)
	assert.Len(t, resp.GetItems(), 5)
	assert.Equal(t, int32(3), resp.GetUpdatedCount())
	assert.Equal(t, "updates", resp.GetDefaultTab())

	resp, err = e.client.ListItems(e.user, &catalogproto.ListItemsRequest{Tab: "all"})
	require.NoError(t, err)
	assert.Len(t, resp.GetItems(), 3)

	_, err = e.client.ListItems(context.Background(), &catalogproto.ListItemsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = e.client.ListItems(e.user, &catalogproto.ListItemsRequest{Tab: "starred"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCatalogHandler_ErrorCodes(t *testing.T) {
	e := setup(t)

	_, err := e.client.GetItem(e.user, &catalogproto.ItemRequest{ItemId: "4"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = e.client.RenameItem(e.user, &catalogproto.RenameItemRequest{ItemId: "1", Name: "Mine"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = e.client.RenameItem(e.admin, &catalogproto.RenameItemRequest{ItemId: "1", Name: "  "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = e.client.SetCurrentVersion(e.admin, &catalogproto.VersionRequest{ItemId: "1", VersionId: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = e.client.AddItem(e.admin, &catalogproto.AddItemRequest{Name: "X", Visibility: "public"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCatalogHandler_VersionFlow(t *testing.T) {
	e := setup(t)

	added, err := e.client.AddVersion(e.admin, &catalogproto.AddVersionRequest{
		ItemId: "1",
		File:   &catalogproto.Upload{Filename: "q4_revenue_v4.xlsx", Content: []byte("payload")},
	})
	require.NoError(t, err)
	assert.Equal(t, "q4_revenue_v4.xlsx", added.GetVersion().GetFilename())
	assert.Equal(t, "0.0 MB", added.GetVersion().GetFileSize())
	assert.Equal(t, "v3", added.GetItem().GetCurrentVersion())

	cur, err := e.client.SetCurrentVersion(e.admin, &catalogproto.VersionRequest{ItemId: "1", VersionId: added.GetVersion().GetId()})
	require.NoError(t, err)
	assert.Equal(t, "v4", cur.GetItem().GetCurrentVersion())
	assert.Contains(t, cur.GetItem().GetDistributionUrl(), "q4_revenue_v4.xlsx")

	del, err := e.client.DeleteVersion(e.admin, &catalogproto.VersionRequest{ItemId: "1", VersionId: "1-v1"})
	require.NoError(t, err)
	assert.Len(t, del.GetItem().GetVersions(), 3)
}

func TestCatalogHandler_ItemFlow(t *testing.T) {
	e := setup(t)

	created, err := e.client.AddItem(e.admin, &catalogproto.AddItemRequest{
		Name:       "Churn Model",
		Visibility: "restricted",
		Users:      []string{"klee"},
	})
	require.NoError(t, err)
	itemID := created.GetItem().GetId()
	assert.Equal(t, "churn_model_v1", created.GetItem().GetVersions()[0].GetFilename())
	assert.Equal(t, []string{"klee"}, created.GetItem().GetRestrictedTo())
	assert.Empty(t, created.GetItem().GetLastDownloaded())

	got, err := e.client.GetItem(e.user, &catalogproto.ItemRequest{ItemId: itemID})
	require.NoError(t, err)
	assert.Equal(t, "Churn Model", got.GetItem().GetName())

	toggled, err := e.client.ToggleSubscription(e.user, &catalogproto.ItemRequest{ItemId: itemID})
	require.NoError(t, err)
	assert.True(t, toggled.GetItem().GetSubscribed())

	downloaded, err := e.client.RecordDownload(e.user, &catalogproto.ItemRequest{ItemId: itemID})
	require.NoError(t, err)
	assert.Equal(t, "2026-02-15", downloaded.GetItem().GetLastDownloaded())

	vis, err := e.client.SetVisibility(e.admin, &catalogproto.SetVisibilityRequest{ItemId: itemID, Visibility: "all"})
	require.NoError(t, err)
	assert.Empty(t, vis.GetItem().GetRestrictedTo())

	_, err = e.client.DeleteItem(e.admin, &catalogproto.ItemRequest{ItemId: itemID})
	require.NoError(t, err)

	_, err = e.client.GetItem(e.admin, &catalogproto.ItemRequest{ItemId: itemID})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestCatalogHandler_DownloadVersion(t *testing.T) {
	e := setup(t)

	content := bytes.Repeat([]byte("0123456789abcdef"), 5000)
	added, err := e.client.AddVersion(e.admin, &catalogproto.AddVersionRequest{
		ItemId: "2",
		File:   &catalogproto.Upload{Filename: "report.csv", ContentType: "text/csv", Content: content},
	})
	require.NoError(t, err)
	versionID := added.GetVersion().GetId()

	t.Run("content arrives in order after the metadata", func(t *testing.T) {
		stream, err := e.client.DownloadVersion(e.user, &catalogproto.VersionRequest{ItemId: "2", VersionId: versionID})
		require.NoError(t, err)
		meta, data, err := download(t, stream)
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, "report.csv", meta.GetFilename())
		assert.Equal(t, versionID, meta.GetId())
		assert.Equal(t, content, data)
	})

	t.Run("hidden items are not found", func(t *testing.T) {
		stream, err := e.client.DownloadVersion(e.user, &catalogproto.VersionRequest{ItemId: "4", VersionId: "4-v1"})
		require.NoError(t, err)
		_, _, err = download(t, stream)
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("stream requires a token", func(t *testing.T) {
		stream, err := e.client.DownloadVersion(context.Background(), &catalogproto.VersionRequest{ItemId: "2", VersionId: versionID})
		require.NoError(t, err)
		_, _, err = download(t, stream)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	})
}

func TestCatalogHandler_ListUsers(t *testing.T) {
	e := setup(t)

	resp, err := e.client.ListUsers(e.user, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, resp.GetUsers(), 12)
	assert.Equal(t, "jsmith", resp.GetUsers()[0].GetId())
}
