package httpHandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"file-catalog/internal/model/catalogInfo"
	"file-catalog/internal/service/authService"
	"file-catalog/internal/service/catalogService"
	"file-catalog/internal/store"
	"file-catalog/pkg/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var errBadRequest = errors.New("malformed request")

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, catalogInfo.ErrItemNotFound):
		return http.StatusNotFound, "ITEM_NOT_FOUND"
	case errors.Is(err, catalogInfo.ErrVersionNotFound):
		return http.StatusNotFound, "VERSION_NOT_FOUND"
	case errors.Is(err, catalogInfo.ErrInvalidName):
		return http.StatusBadRequest, "INVALID_NAME"
	case errors.Is(err, catalogInfo.ErrInvalidVisibility):
		return http.StatusBadRequest, "INVALID_VISIBILITY"
	case errors.Is(err, catalogService.ErrUnknownUser):
		return http.StatusBadRequest, "UNKNOWN_USER"
	case errors.Is(err, catalogService.ErrInvalidUpload),
		errors.Is(err, catalogService.ErrInvalidArgument),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "BAD_REQUEST"
	case errors.Is(err, store.ErrDuplicateID):
		return http.StatusConflict, "CONFLICT"
	case errors.Is(err, catalogService.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, catalogService.ErrUnauthenticated):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, authService.ErrInvalidToken), errors.Is(err, authService.ErrTokenRevoked):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, catalogService.ErrNoBlobStore):
		return http.StatusNotImplemented, "NO_BLOB_STORE"
	case errors.Is(err, authService.ErrRevocationDisabled):
		return http.StatusNotImplemented, "NO_REVOCATION"
	}
	return http.StatusInternalServerError, "INTERNAL"
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.GetLogger(r.Context()).Error("request error",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.Error(err),
		)
		msg = "internal error"
	}
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
