package errors

import (
	"context"
	goerrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates domain errors into gRPC status errors.
// Errors already carrying a status are returned untouched.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case goerrors.Is(err, ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case goerrors.Is(err, ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case goerrors.Is(err, ErrResourceExhausted):
		return status.Error(codes.ResourceExhausted, err.Error())
	case goerrors.Is(err, ErrHubClosed), goerrors.Is(err, ErrSubscriberClosed):
		return status.Error(codes.Unavailable, err.Error())
	case goerrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case goerrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
