package kbportal_test

import (
	"errors"
	"testing"

	"github.com/dcsstech/kbportal"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := kbportal.Errorf(kbportal.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, kbportal.ENOTFOUND, kbportal.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", kbportal.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kbportal.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, kbportal.EINTERNAL, kbportal.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, kbportal.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", kbportal.ErrorMessage(errors.New("boom")))
}
