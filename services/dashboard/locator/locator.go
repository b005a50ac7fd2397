package locator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/services/dashboard"
)

// Geolocation request bounds
const (
	DefaultTimeout = 10 * time.Second
	DefaultMaxAge  = 5 * time.Minute
)

// StaticLocator reports a configured position
type StaticLocator struct {
	enabled  bool
	location *models.Location
	now      func() time.Time
}

// NewStaticLocator creates a locator for a fixed position. A disabled
// locator behaves like a denied permission, a nil location like a device
// without a fix.
func NewStaticLocator(enabled bool, location *models.Location) *StaticLocator {
	return &StaticLocator{enabled: enabled, location: location, now: models.Now}
}

// CurrentPosition returns the configured position
func (l *StaticLocator) CurrentPosition(ctx context.Context) (*dashboard.Position, error) {
	if !l.enabled {
		return nil, dashboard.ErrLocationDenied
	}
	if l.location == nil || !l.location.Valid() {
		return nil, dashboard.ErrLocationUnavailable
	}
	return &dashboard.Position{Location: *l.location, AcquiredAt: l.now()}, nil
}

// CachedLocator bounds the wait on the wrapped locator and serves a
// previous fix while it is younger than maxAge.
type CachedLocator struct {
	inner   dashboard.Locator
	timeout time.Duration
	maxAge  time.Duration
	now     func() time.Time

	mu   sync.Mutex
	last *dashboard.Position
}

// NewCachedLocator wraps inner. Zero durations select the defaults.
func NewCachedLocator(inner dashboard.Locator, timeout, maxAge time.Duration) *CachedLocator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &CachedLocator{
		inner:   inner,
		timeout: timeout,
		maxAge:  maxAge,
		now:     models.Now,
	}
}

type positionResult struct {
	position *dashboard.Position
	err      error
}

// CurrentPosition returns a cached fix when fresh enough, otherwise asks the
// wrapped locator and gives up with ErrLocationTimeout after the timeout.
func (l *CachedLocator) CurrentPosition(ctx context.Context) (*dashboard.Position, error) {
	l.mu.Lock()
	cached := l.last
	l.mu.Unlock()
	if cached != nil && l.now().Sub(cached.AcquiredAt) <= l.maxAge {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	resultCh := make(chan positionResult, 1)
	go func() {
		position, err := l.inner.CurrentPosition(ctx)
		resultCh <- positionResult{position: position, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, dashboard.ErrLocationTimeout
		}
		return nil, ctx.Err()
	case result := <-resultCh:
		if result.err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, dashboard.ErrLocationTimeout
			}
			return nil, result.err
		}
		l.mu.Lock()
		l.last = result.position
		l.mu.Unlock()
		return result.position, nil
	}
}
