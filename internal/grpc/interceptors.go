package grpcserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestID returns the id assigned to the current call, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func withRequestID(ctx context.Context) (context.Context, string) {
	id := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(requestIDHeader); len(values) > 0 {
			id = values[0]
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	return context.WithValue(ctx, requestIDKey{}, id), id
}

func UnaryLogging() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, id := withRequestID(ctx)
		start := time.Now()

		resp, err := handler(ctx, req)

		entry := log.WithFields(log.Fields{
			"method":     info.FullMethod,
			"request_id": id,
			"code":       status.Code(err).String(),
			"duration":   time.Since(start),
		})
		if err != nil {
			entry.WithError(err).Warn("[grpc] Call failed")
		} else {
			entry.Debug("[grpc] Call served")
		}

		return resp, err
	}
}

type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *wrappedStream) Context() context.Context {
	return s.ctx
}

func StreamLogging() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, id := withRequestID(ss.Context())
		start := time.Now()

		err := handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})

		log.WithFields(log.Fields{
			"method":     info.FullMethod,
			"request_id": id,
			"code":       status.Code(err).String(),
			"duration":   time.Since(start),
		}).Info("[grpc] Stream closed")

		return err
	}
}
