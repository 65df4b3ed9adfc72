// Package idgen produces record ids and public booking codes. Both are
// time-based; the store is single-writer per process, so collision avoidance
// is best-effort rather than guaranteed.
package idgen

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/su-physio/clinic-scheduler/internal/timezone"
)

var (
	mu     sync.Mutex
	lastID int64
)

// NewID returns a millisecond timestamp, bumped by one whenever two calls
// land on the same tick so ids stay unique within the process.
func NewID() int64 {
	mu.Lock()
	defer mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}

// NewBookingCode builds the public-facing code:
// SU-<4-digit year>-<last 6 digits of unix ms><3-digit random>, upper-case.
// Uniqueness is not re-verified against the store; at clinic volumes the
// collision probability is accepted.
func NewBookingCode() string {
	year := timezone.Now().Year()
	suffix := time.Now().UnixMilli() % 1_000_000
	random := rand.Intn(1000)
	code := fmt.Sprintf("SU-%d-%06d%03d", year, suffix, random)
	return strings.ToUpper(code)
}
