package middleware

import (
	"context"
	"net/http"
	"strings"

	"file-catalog/internal/model/user"
	"file-catalog/pkg/logger"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Authenticator turns a bearer token into the caller it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (user.Principal, error)
}

func bearer(header string) string {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func authenticate(ctx context.Context, auth Authenticator, method string) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata not provided")
	}
	authHeader := md.Get("authorization")
	if len(authHeader) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token not provided")
	}
	token := bearer(authHeader[0])
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, "authorization must be a bearer token")
	}
	p, err := auth.Authenticate(ctx, token)
	if err != nil {
		logger.GetLogger(ctx).Debug("rejected token", zap.String("method", method), zap.Error(err))
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}
	return user.WithPrincipal(ctx, p), nil
}

func AuthInterceptor(auth Authenticator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		newCtx, err := authenticate(ctx, auth, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return handler(newCtx, req)
	}
}

func StreamAuthInterceptor(auth Authenticator) grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		newCtx, err := authenticate(ss.Context(), auth, info.FullMethod)
		if err != nil {
			return err
		}
		return handler(srv, &wrappedServerStream{ServerStream: ss, ctx: newCtx})
	}
}

// wrappedServerStream carries the authenticated context into stream handlers.
type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

// HTTPAuth requires an "Authorization: Bearer" header on every request.
func HTTPAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearer(r.Header.Get("Authorization"))
			if token == "" {
				writeUnauthorized(w, "authorization token not provided")
				return
			}
			p, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				logger.GetLogger(r.Context()).Debug("rejected token", zap.String("path", r.URL.Path), zap.Error(err))
				writeUnauthorized(w, "invalid token")
				return
			}
			next.ServeHTTP(w, r.WithContext(user.WithPrincipal(r.Context(), p)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"` + msg + `","code":"UNAUTHENTICATED"}`))
}
