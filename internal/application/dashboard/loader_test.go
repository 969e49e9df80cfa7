package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-dashboard/internal/domain/timewindow"
)

// gatedBuilder blocks the first Build until release is closed, ignoring ctx.
type gatedBuilder struct {
	started chan struct{}
	release chan struct{}
	calls   int
}

func (b *gatedBuilder) Build(_ context.Context, sel timewindow.Selector) (Dashboard, error) {
	b.calls++
	if b.calls == 1 {
		close(b.started)
		<-b.release
	}
	return Dashboard{Range: sel}, nil
}

// cancelAwareBuilder blocks the first Build until its ctx is cancelled.
type cancelAwareBuilder struct {
	started chan struct{}
	calls   int
}

func (b *cancelAwareBuilder) Build(ctx context.Context, sel timewindow.Selector) (Dashboard, error) {
	b.calls++
	if b.calls == 1 {
		close(b.started)
		<-ctx.Done()
		return Dashboard{}, ctx.Err()
	}
	return Dashboard{Range: sel}, nil
}

func TestLoader_StaleResponseCannotClobberNewer(t *testing.T) {
	b := &gatedBuilder{started: make(chan struct{}), release: make(chan struct{})}
	metrics := &fakeMetrics{}
	l := NewLoader(b, metrics)

	type result struct {
		d   Dashboard
		err error
	}
	first := make(chan result, 1)
	go func() {
		d, err := l.Load(context.Background(), timewindow.Month)
		first <- result{d, err}
	}()
	<-b.started

	d, err := l.Load(context.Background(), timewindow.Today)
	require.NoError(t, err)
	assert.Equal(t, timewindow.Today, d.Range)

	close(b.release)
	select {
	case r := <-first:
		assert.ErrorIs(t, r.err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("stale load did not return")
	}

	latest, ok := l.Latest()
	require.True(t, ok)
	assert.Equal(t, timewindow.Today, latest.Range)
	assert.Equal(t, 1, metrics.superseded)
}

func TestLoader_NewLoadCancelsInFlight(t *testing.T) {
	b := &cancelAwareBuilder{started: make(chan struct{})}
	l := NewLoader(b, nil)

	first := make(chan error, 1)
	go func() {
		_, err := l.Load(context.Background(), timewindow.Week)
		first <- err
	}()
	<-b.started

	_, err := l.Load(context.Background(), timewindow.Today)
	require.NoError(t, err)

	select {
	case err := <-first:
		assert.ErrorIs(t, err, ErrSuperseded)
	case <-time.After(2 * time.Second):
		t.Fatal("in-flight load was not cancelled")
	}
}

type errBuilder struct{ err error }

func (b errBuilder) Build(context.Context, timewindow.Selector) (Dashboard, error) {
	return Dashboard{}, b.err
}

func TestLoader_ErrorDoesNotPublish(t *testing.T) {
	l := NewLoader(errBuilder{err: errors.New("boom")}, nil)

	_, err := l.Load(context.Background(), timewindow.Today)
	require.Error(t, err)

	_, ok := l.Latest()
	assert.False(t, ok)
}

func TestLoaders_PerKey(t *testing.T) {
	ls := NewLoaders(errBuilder{}, nil)

	a := ls.For("user-a")
	assert.Same(t, a, ls.For("user-a"))
	assert.NotSame(t, a, ls.For("user-b"))
}

func TestLoaders_EvictsIdleAtLimit(t *testing.T) {
	ls := NewLoaders(errBuilder{}, nil)
	ls.limit = 1

	a := ls.For("user-a")
	b := ls.For("user-b")

	assert.Len(t, ls.loaders, 1)
	assert.Same(t, b, ls.For("user-b"))
	assert.NotSame(t, a, ls.For("user-a"), "evicted loader is recreated")
}

func TestLoaders_KeepsInFlightLoader(t *testing.T) {
	b := &gatedBuilder{started: make(chan struct{}), release: make(chan struct{})}
	ls := NewLoaders(b, nil)
	ls.limit = 1

	busy := ls.For("user-a")
	done := make(chan struct{})
	go func() {
		_, _ = busy.Load(context.Background(), timewindow.Week)
		close(done)
	}()
	<-b.started

	ls.For("user-b")
	assert.Same(t, busy, ls.For("user-a"), "loader with a build in flight is not evicted")

	close(b.release)
	<-done
}
