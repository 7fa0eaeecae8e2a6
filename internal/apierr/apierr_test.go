package apierr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	apiv1 "github.com/aadk-dev/aadk/pkg/api/v1"
)

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		code apiv1.ErrorCode
		want codes.Code
	}{
		{apiv1.ErrorCode_ERROR_CODE_INVALID_ARGUMENT, codes.InvalidArgument},
		{apiv1.ErrorCode_ERROR_CODE_NOT_FOUND, codes.NotFound},
		{apiv1.ErrorCode_ERROR_CODE_JOB_NOT_FOUND, codes.NotFound},
		{apiv1.ErrorCode_ERROR_CODE_ALREADY_EXISTS, codes.AlreadyExists},
		{apiv1.ErrorCode_ERROR_CODE_PERMISSION_DENIED, codes.PermissionDenied},
		{apiv1.ErrorCode_ERROR_CODE_FAILED_PRECONDITION, codes.FailedPrecondition},
		{apiv1.ErrorCode_ERROR_CODE_UNAVAILABLE, codes.Unavailable},
		{apiv1.ErrorCode_ERROR_CODE_TARGET_NOT_REACHABLE, codes.Unavailable},
		{apiv1.ErrorCode_ERROR_CODE_CANCELLED, codes.Canceled},
		{apiv1.ErrorCode_ERROR_CODE_INTERNAL, codes.Internal},
		{apiv1.ErrorCode_ERROR_CODE_BUILD_FAILED, codes.Internal},
		{apiv1.ErrorCode_ERROR_CODE_TOOLCHAIN_VERIFY_FAILED, codes.Internal},
		{apiv1.ErrorCode_ERROR_CODE_UNSPECIFIED, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, GRPCCode(tt.code))
		})
	}
}

func TestStatus(t *testing.T) {
	err := Status(apiv1.ErrorCode_ERROR_CODE_JOB_NOT_FOUND, "Job not found: %s", "abc")

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "Job not found: abc", st.Message())
}

func TestDetail(t *testing.T) {
	d := Detail(apiv1.ErrorCode_ERROR_CODE_BUILD_FAILED, "build failed", "exit status 1", "job-1")

	assert.Equal(t, apiv1.ErrorCode_ERROR_CODE_BUILD_FAILED, d.Code)
	assert.Equal(t, "build failed", d.Message)
	assert.Equal(t, "exit status 1", d.TechnicalDetails)
	assert.Equal(t, "job-1", d.CorrelationId)
	assert.Empty(t, d.Remedies)

	d = WithRemedy(d, "Check build logs", "Inspect the job log stream for compiler output.")
	require.Len(t, d.Remedies, 1)
	assert.Equal(t, "Check build logs", d.Remedies[0].Title)
}
