package campscout_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/campscout"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := campscout.Errorf(campscout.ENOTFOUND, "campsite %q not found", "https://example.com")

	assert.Equal(t, campscout.ENOTFOUND, campscout.ErrorCode(err))
	assert.Equal(t, "campsite \"https://example.com\" not found", campscout.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, campscout.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, campscout.EINTERNAL, campscout.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, campscout.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", campscout.ErrorMessage(errors.New("boom")))
}
