package changelog

import (
	"context"
	"time"
)

// notify returns the channel closed by the next Append.
func (l *Log) notify() <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.notifyCh
}

// WaitForAppend blocks until a new append occurs, the timeout elapses or ctx
// is done. It returns true if woken by an append. A non-positive timeout
// waits on ctx alone.
func (l *Log) WaitForAppend(ctx context.Context, timeout time.Duration) bool {
	return waitOn(ctx, l.notify(), timeout)
}

// ReadWait is Read that long-polls: when the page is empty and timeout is
// positive it blocks until an append, the timeout or ctx, then reads again.
// The notify channel is taken before the first read so an append landing
// between the read and the wait still wakes the caller.
func (l *Log) ReadWait(ctx context.Context, opts ReadOptions, timeout time.Duration) (Page, error) {
	ch := l.notify()
	page, err := l.Read(opts)
	if err != nil || len(page.Changes) > 0 || timeout <= 0 {
		return page, err
	}
	waitOn(ctx, ch, timeout)
	return l.Read(opts)
}

func waitOn(ctx context.Context, ch <-chan struct{}, timeout time.Duration) bool {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	select {
	case <-ch:
		return true
	case <-ctx.Done():
		return false
	}
}
