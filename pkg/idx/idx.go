// Package idx generates request identifiers.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ErrInvalid reports a malformed request ID.
var ErrInvalid = errors.New("idx: invalid ulid")

// maxExternalLen bounds caller-supplied request IDs accepted by Sanitize.
const maxExternalLen = 128

var (
	mu      sync.Mutex
	once    sync.Once
	entropy *ulid.MonotonicEntropy
)

// New returns a lexicographically sortable ULID for the current time.
// Safe for concurrent use.
func New() string {
	return NewAt(time.Now().UTC())
}

// NewAt returns a ULID for t. IDs generated within the same millisecond are
// strictly increasing.
func NewAt(t time.Time) string {
	once.Do(func() {
		entropy = ulid.Monotonic(rand.Reader, 0)
	})

	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), entropy).String()
}

// Parse validates s as a canonical ULID.
func Parse(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return "", ErrInvalid
	}
	return s, nil
}

// Time returns the timestamp embedded in a ULID, or the zero time if s is
// not one.
func Time(s string) time.Time {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return time.Time{}
	}
	return ulid.Time(u.Time())
}

// Sanitize returns an upstream request ID if it is short and printable,
// otherwise a freshly generated one. Upstream IDs end up in log lines, so
// control characters are not accepted.
func Sanitize(external string) string {
	external = strings.TrimSpace(external)
	if external == "" || len(external) > maxExternalLen {
		return New()
	}
	for _, r := range external {
		if r < 0x21 || r > 0x7e {
			return New()
		}
	}
	return external
}
