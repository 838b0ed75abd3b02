package clock

import (
	"sync"
	"time"
)

// The whole deployment runs on a single shop-local wall clock. No
// per-request timezone conversion happens anywhere.

const DefaultTimezone = "Europe/Rome"

var (
	mu  sync.RWMutex
	loc = mustLoad(DefaultTimezone)

	// nowFn is swapped in tests to pin "now".
	nowFn = time.Now
)

func mustLoad(tz string) *time.Location {
	l, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return l
}

// Configure sets the shop-local timezone. Invalid names keep the default.
func Configure(tz string) {
	if tz == "" {
		return
	}
	if l, err := time.LoadLocation(tz); err == nil {
		mu.Lock()
		loc = l
		mu.Unlock()
	}
}

func Location() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return loc
}

func Now() time.Time {
	return nowFn().In(Location())
}

// SetNow overrides the clock for tests. Returns a restore func.
func SetNow(fn func() time.Time) func() {
	mu.Lock()
	prev := nowFn
	nowFn = fn
	mu.Unlock()
	return func() {
		mu.Lock()
		nowFn = prev
		mu.Unlock()
	}
}
