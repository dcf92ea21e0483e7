package faqcrawl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/faqcrawl"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := faqcrawl.Errorf(faqcrawl.ENOTFOUND, "result %q not found", "abc")

	assert.Equal(t, faqcrawl.ENOTFOUND, faqcrawl.ErrorCode(err))
	assert.Equal(t, "result \"abc\" not found", faqcrawl.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", faqcrawl.Errorf(faqcrawl.EUNAVAILABLE, "browser closed"))

	assert.Equal(t, faqcrawl.EUNAVAILABLE, faqcrawl.ErrorCode(err))
	assert.Equal(t, "browser closed", faqcrawl.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, faqcrawl.EINTERNAL, faqcrawl.ErrorCode(err))
	assert.Equal(t, "Internal error.", faqcrawl.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, faqcrawl.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, faqcrawl.ErrorMessage(nil))
}
