package apperror

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsMapStatusCodes(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{Validation("bad"), http.StatusBadRequest},
		{Conflict("dup"), http.StatusBadRequest},
		{Unauthorized("who"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{NotFound("gone"), http.StatusNotFound},
		{Upload("failed", errors.New("timeout")), http.StatusBadRequest},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.StatusCode, tc.err.Kind)
	}
}

func TestFrom_WrapsPlainErrorsAsInternal(t *testing.T) {
	appErr := From(errors.New("mongo: connection refused"))

	assert.Equal(t, KindInternal, appErr.Kind)
	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, "mongo: connection refused", appErr.Message)
}

func TestFrom_FillsDefaults(t *testing.T) {
	appErr := From(&AppError{Kind: KindInternal})

	assert.Equal(t, http.StatusInternalServerError, appErr.StatusCode)
	assert.Equal(t, "Internal Server Error", appErr.Message)
}

func TestAs_FindsWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("Invalid course id or course not found."))

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}

func TestUpload_KeepsCauseAndStack(t *testing.T) {
	cause := errors.New("bucket unavailable")
	appErr := Upload("Thumbnail upload failed, please try again", cause)

	assert.ErrorIs(t, appErr, cause)
	assert.Contains(t, appErr.Stack(), "bucket unavailable")
	assert.Contains(t, appErr.Stack(), "apperror")
}
