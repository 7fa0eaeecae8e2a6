// Package apierr carries the closed error taxonomy shared by every service.
//
// Synchronous RPC failures surface as gRPC status errors with the mapped
// transport code. Asynchronous job failures travel as ErrorDetail payloads
// inside Failed events; the correlation id in the detail equals the job id
// (or the workflow run's correlation id) so failures can be traced across
// services.
package apierr

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

// Detail builds a wire ErrorDetail for a Failed event payload.
func Detail(code apiv1.ErrorCode, message, technical, correlationID string) *apiv1.ErrorDetail {
	return &apiv1.ErrorDetail{
		Code:             code,
		Message:          message,
		TechnicalDetails: technical,
		CorrelationId:    correlationID,
	}
}

// WithRemedy appends a remediation hint to the detail and returns it.
func WithRemedy(d *apiv1.ErrorDetail, title, description string) *apiv1.ErrorDetail {
	d.Remedies = append(d.Remedies, &apiv1.Remediation{Title: title, Description: description})
	return d
}

// GRPCCode maps an ErrorCode onto its transport status code.
// Domain-specific codes collapse to Internal unless the condition they
// describe matches a generic kind (JobNotFound is a not-found condition,
// TargetNotReachable an unavailable one).
func GRPCCode(code apiv1.ErrorCode) codes.Code {
	switch code {
	case apiv1.ErrorCode_ERROR_CODE_INVALID_ARGUMENT:
		return codes.InvalidArgument
	case apiv1.ErrorCode_ERROR_CODE_NOT_FOUND, apiv1.ErrorCode_ERROR_CODE_JOB_NOT_FOUND:
		return codes.NotFound
	case apiv1.ErrorCode_ERROR_CODE_ALREADY_EXISTS:
		return codes.AlreadyExists
	case apiv1.ErrorCode_ERROR_CODE_PERMISSION_DENIED:
		return codes.PermissionDenied
	case apiv1.ErrorCode_ERROR_CODE_FAILED_PRECONDITION:
		return codes.FailedPrecondition
	case apiv1.ErrorCode_ERROR_CODE_UNAVAILABLE, apiv1.ErrorCode_ERROR_CODE_TARGET_NOT_REACHABLE:
		return codes.Unavailable
	case apiv1.ErrorCode_ERROR_CODE_CANCELLED:
		return codes.Canceled
	default:
		return codes.Internal
	}
}

// Status returns a gRPC status error with the transport code mapped from
// the taxonomy code.
func Status(code apiv1.ErrorCode, format string, args ...any) error {
	return status.Error(GRPCCode(code), fmt.Sprintf(format, args...))
}
