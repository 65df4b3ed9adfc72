package idgen

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewID_MonotonicWithinProcess(t *testing.T) {
	seen := make(map[int64]bool)
	prev := int64(0)

	for i := 0; i < 1000; i++ {
		id := NewID()
		assert.Greater(t, id, prev)
		assert.False(t, seen[id])
		seen[id] = true
		prev = id
	}
}

func TestNewBookingCode_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^SU-\d{4}-\d{9}$`)

	for i := 0; i < 100; i++ {
		code := NewBookingCode()
		assert.Regexp(t, pattern, code)
	}
}
