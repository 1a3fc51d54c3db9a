package catalogHandler

import (
	"context"
	"errors"
	"fmt"
	"io"

	catalogproto "file-catalog/api/catalogproto/proto-generate"
	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/service/authService"
	"file-catalog/internal/service/catalogService"
	"file-catalog/internal/store"
	"file-catalog/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// chunkSize bounds the data carried by one DownloadVersion message.
const chunkSize = 32 << 10

type CatalogHandler struct {
	catalogproto.UnimplementedCatalogServiceServer
	service *catalogService.CatalogService
}

func New(service *catalogService.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// toStatus maps domain errors onto gRPC codes.
func toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, catalogInfo.ErrItemNotFound), errors.Is(err, catalogInfo.ErrVersionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, catalogInfo.ErrInvalidName),
		errors.Is(err, catalogInfo.ErrInvalidVisibility),
		errors.Is(err, catalogService.ErrUnknownUser),
		errors.Is(err, catalogService.ErrInvalidUpload),
		errors.Is(err, catalogService.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, store.ErrDuplicateID):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, catalogService.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, catalogService.ErrUnauthenticated),
		errors.Is(err, authService.ErrInvalidToken),
		errors.Is(err, authService.ErrTokenRevoked):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, catalogService.ErrNoBlobStore):
		return status.Error(codes.Unimplemented, err.Error())
	}
	logger.GetLogger(ctx).Error("catalog request failed", zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

func (h *CatalogHandler) ListItems(ctx context.Context, req *catalogproto.ListItemsRequest) (*catalogproto.ListItemsResponse, error) {
	l, err := h.service.ListItems(ctx, store.Tab(req.GetTab()))
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ListItemsResponse{
		Revision:        l.Revision,
		Tab:             string(l.Tab),
		DefaultTab:      string(l.DefaultTab),
		UpdatedCount:    int32(l.UpdatedCount),
		SubscribedCount: int32(l.SubscribedCount),
		Items:           itemsToProto(l.Items),
	}, nil
}

func (h *CatalogHandler) GetItem(ctx context.Context, req *catalogproto.ItemRequest) (*catalogproto.ItemResponse, error) {
	it, err := h.service.GetItem(ctx, req.GetItemId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ItemResponse{Item: itemToProto(it)}, nil
}

func (h *CatalogHandler) AddItem(ctx context.Context, req *catalogproto.AddItemRequest) (*catalogproto.ItemResponse, error) {
	file, content := upload(req.GetFile())
	it, err := h.service.AddItem(ctx, catalogService.NewItem{
		Name:       req.GetName(),
		Visibility: catalogInfo.Visibility(req.GetVisibility()),
		Users:      req.GetUsers(),
		File:       file,
		Content:    content,
	})
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ItemResponse{Item: itemToProto(it)}, nil
}

func (h *CatalogHandler) DeleteItem(ctx context.Context, req *catalogproto.ItemRequest) (*emptypb.Empty, error) {
	if err := h.service.DeleteItem(ctx, req.GetItemId()); err != nil {
		return nil, toStatus(ctx, err)
	}
	return &emptypb.Empty{}, nil
}

func (h *CatalogHandler) RenameItem(ctx context.Context, req *catalogproto.RenameItemRequest) (*catalogproto.ItemResponse, error) {
	it, err := h.service.RenameItem(ctx, req.GetItemId(), req.GetName())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ItemResponse{Item: itemToProto(it)}, nil
}

func (h *CatalogHandler) SetVisibility(ctx context.Context, req *catalogproto.SetVisibilityRequest) (*catalogproto.ItemResponse, error) {
	it, err := h.service.SetVisibility(ctx, req.GetItemId(), catalogInfo.Visibility(req.GetVisibility()), req.GetUsers())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ItemResponse{Item: itemToProto(it)}, nil
}

func (h *CatalogHandler) ToggleSubscription(ctx context.Context, req *catalogproto.ItemRequest) (*catalogproto.ItemResponse, error) {
	it, err := h.service.ToggleSubscription(ctx, req.GetItemId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ItemResponse{Item: itemToProto(it)}, nil
}

func (h *CatalogHandler) RecordDownload(ctx context.Context, req *catalogproto.ItemRequest) (*catalogproto.ItemResponse, error) {
	it, err := h.service.RecordDownload(ctx, req.GetItemId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ItemResponse{Item: itemToProto(it)}, nil
}

func (h *CatalogHandler) AddVersion(ctx context.Context, req *catalogproto.AddVersionRequest) (*catalogproto.AddVersionResponse, error) {
	file, content := upload(req.GetFile())
	it, v, err := h.service.AddVersion(ctx, req.GetItemId(), file, content)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.AddVersionResponse{Item: itemToProto(it), Version: versionToProto(v)}, nil
}

func (h *CatalogHandler) SetCurrentVersion(ctx context.Context, req *catalogproto.VersionRequest) (*catalogproto.ItemResponse, error) {
	it, err := h.service.SetCurrentVersion(ctx, req.GetItemId(), req.GetVersionId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ItemResponse{Item: itemToProto(it)}, nil
}

func (h *CatalogHandler) DeleteVersion(ctx context.Context, req *catalogproto.VersionRequest) (*catalogproto.ItemResponse, error) {
	it, err := h.service.DeleteVersion(ctx, req.GetItemId(), req.GetVersionId())
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ItemResponse{Item: itemToProto(it)}, nil
}

// DownloadVersion streams stored content. The first message carries the
// version metadata and every message after it only data.
func (h *CatalogHandler) DownloadVersion(req *catalogproto.VersionRequest, stream grpc.ServerStreamingServer[catalogproto.VersionChunk]) error {
	ctx := stream.Context()
	rc, v, err := h.service.OpenVersion(ctx, req.GetItemId(), req.GetVersionId())
	if err != nil {
		return toStatus(ctx, err)
	}
	defer rc.Close()

	if err := stream.Send(&catalogproto.VersionChunk{Version: versionToProto(v)}); err != nil {
		return err
	}
	buf := make([]byte, chunkSize)
	for {
		n, err := rc.Read(buf)
		if n > 0 {
			if sendErr := stream.Send(&catalogproto.VersionChunk{Data: append([]byte(nil), buf[:n]...)}); sendErr != nil {
				return sendErr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return toStatus(ctx, fmt.Errorf("read %s: %w", v.Filename, err))
		}
	}
}

func (h *CatalogHandler) ListUsers(ctx context.Context, _ *emptypb.Empty) (*catalogproto.ListUsersResponse, error) {
	users, err := h.service.ListUsers(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}
	return &catalogproto.ListUsersResponse{Users: usersToProto(users)}, nil
}
