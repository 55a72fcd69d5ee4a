// Package clock abstracts wall time so that event timestamps can be
// frozen in tests.
package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type WallClock struct{}

func NewWallClock() WallClock { return WallClock{} }

func (WallClock) Now() time.Time { return time.Now().UTC() }

// FrozenClock always returns the time it was last set to.
type FrozenClock struct {
	mu   sync.Mutex
	time time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{time: t}
}

func (c *FrozenClock) SetTime(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.time = t
}

func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.time
}
