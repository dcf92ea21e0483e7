package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/faqcrawl/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_MayContain(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.01)

	assert.False(t, f.MayContain("https://example.com/faq"))

	f.Add("https://example.com/faq")

	assert.True(t, f.MayContain("https://example.com/faq"))
	assert.False(t, f.MayContain("https://example.com/help"))
}

func TestFilter_TestAndAdd(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(100, 0.01)

	assert.False(t, f.TestAndAdd("https://example.com/"))
	assert.True(t, f.TestAndAdd("https://example.com/"))
	assert.True(t, f.MayContain("https://example.com/"))
}

func TestFilter_ZeroCapacity(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(0, 0.01)
	f.Add("https://example.com/")

	assert.True(t, f.MayContain("https://example.com/"))
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(500, 0.01)
	for i := range 500 {
		f.Add(fmt.Sprintf("https://example.com/page%d", i))
	}

	for i := range 500 {
		assert.True(t, f.MayContain(fmt.Sprintf("https://example.com/page%d", i)))
	}
}
