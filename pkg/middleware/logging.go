package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"file-catalog/pkg/logger"
	"file-catalog/pkg/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// Logger attaches a request-scoped logger to the context and logs each
// request with its status and duration once it completes.
func Logger(base *logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			reqLogger := base.With(zap.String("request_id", chimw.GetReqID(r.Context())))
			next.ServeHTTP(ww, r.WithContext(logger.WithLogger(r.Context(), reqLogger)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			elapsed := time.Since(start)
			m.ObserveRequest("http", route, strconv.Itoa(status), elapsed)
			reqLogger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int64("duration_ms", elapsed.Milliseconds()),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
			)
		})
	}
}

// LoggingInterceptor is the gRPC counterpart of Logger.
func LoggingInterceptor(base *logger.Logger, m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		ctx = logger.WithLogger(ctx, base)
		resp, err := handler(ctx, req)

		code := status.Code(err)
		elapsed := time.Since(start)
		m.ObserveRequest("grpc", info.FullMethod, code.String(), elapsed)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Int64("duration_ms", elapsed.Milliseconds()),
		}
		if err != nil {
			base.Warn("rpc failed", append(fields, zap.Error(err))...)
		} else {
			base.Info("rpc", fields...)
		}
		return resp, err
	}
}
