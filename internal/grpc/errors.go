package grpcserver

import (
	"context"
	"errors"

	"product-vendor-go/internal/catalog"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps domain and context errors onto gRPC status errors.
func toStatus(err error) error {
	switch {
	case errors.Is(err, catalog.ErrOutOfRange):
		return status.Error(codes.OutOfRange, err.Error())
	case errors.Is(err, catalog.ErrInvalidPrice):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		log.WithError(err).Error("[grpc] Unexpected error")
		return status.Error(codes.Internal, "internal error")
	}
}
