// internal/adapters/grpc/server.go
package grpc

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/mahabubulhasibshawon/foodadmin/internal/application"
	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
)

// SessionHealthService reports SERVING only while the console holds a token.
const SessionHealthService = "foodadmin.session"

type Server struct {
	*grpc.Server
	health *health.Server
}

func NewServer(session *application.SessionService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	setSession := func(st domain.SessionState) {
		if st.IsAuthenticated() {
			hs.SetServingStatus(SessionHealthService, healthpb.HealthCheckResponse_SERVING)
			return
		}
		hs.SetServingStatus(SessionHealthService, healthpb.HealthCheckResponse_NOT_SERVING)
	}
	setSession(session.State())
	session.Subscribe(setSession)

	srv := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(logger)))
	healthpb.RegisterHealthServer(srv, hs)
	return &Server{Server: srv, health: hs}
}

// GracefulStop marks every service NOT_SERVING before draining.
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.Server.GracefulStop()
}

type requestIDKey struct{}

// RequestIDFromContext returns the id attached by LoggingInterceptor.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LoggingInterceptor tags each call with the caller's x-request-id, or a new
// one, and logs its outcome.
func LoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		id := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get("x-request-id"); len(v) > 0 {
				id = v[0]
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		ctx = context.WithValue(ctx, requestIDKey{}, id)

		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Debug("grpc_call",
			"method", info.FullMethod,
			"request_id", id,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		return resp, err
	}
}
