package errors

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapToGRPCError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"invalid input", fmt.Errorf("sender: %w", ErrInvalidInput), codes.InvalidArgument},
		{"not found", ErrNotFound, codes.NotFound},
		{"resource exhausted", ErrResourceExhausted, codes.ResourceExhausted},
		{"hub closed", fmt.Errorf("submit: %w", ErrHubClosed), codes.Unavailable},
		{"subscriber closed", ErrSubscriberClosed, codes.Unavailable},
		{"canceled", context.Canceled, codes.Canceled},
		{"unknown", fmt.Errorf("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			st, ok := status.FromError(MapToGRPCError(tt.err))
			req.True(ok)
			req.Equal(tt.code, st.Code())
			req.Equal(tt.err.Error(), st.Message())
		})
	}
}

func TestMapToGRPCError_Passthrough(t *testing.T) {
	req := require.New(t)

	// Given nil
	req.NoError(MapToGRPCError(nil))

	// Given an error already carrying a status
	original := status.Error(codes.PermissionDenied, "nope")

	// Then it is returned as is
	req.Equal(original, MapToGRPCError(original))
}
