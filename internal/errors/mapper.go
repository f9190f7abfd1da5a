// internal/errors/mapper.go
package errors

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/auth"
	"github.com/oggyb/waveos/internal/proximity"
)

// Map converts domain/repo/infra errors into gRPC-friendly status errors.
// Keeps service layer clean by centralizing error mapping.
//
// Store and other unexpected failures become a generic Internal so that
// nothing about the schema or another user's rows reaches the client.
func Map(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "unauthenticated")

	case errors.Is(err, proximity.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())

	// one message for unknown, expired, stale and blocked alike
	case errors.Is(err, proximity.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return status.Error(codes.NotFound, "not found")

	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")

	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request was canceled")

	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// InvalidArgument creates a gRPC InvalidArgument error.
// Use this in service layer for bad input validation.
func InvalidArgument(msg string) error {
	return status.Error(codes.InvalidArgument, msg)
}

// Unauthenticated creates a gRPC Unauthenticated error.
func Unauthenticated(msg string) error {
	return status.Error(codes.Unauthenticated, msg)
}

// ResourceExhausted creates a gRPC ResourceExhausted error for throttled callers.
func ResourceExhausted(msg string) error {
	return status.Error(codes.ResourceExhausted, msg)
}
