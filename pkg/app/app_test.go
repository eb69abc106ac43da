package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	started  chan struct{}
	stopped  atomic.Bool
	startErr error
	info     AppInfo
}

func (s *fakeServer) Start(ctx context.Context) error {
	s.info, _ = FromContext(ctx)
	close(s.started)
	if s.startErr != nil {
		return s.startErr
	}
	<-ctx.Done()
	return nil
}

func (s *fakeServer) Stop(context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunStopsServers(t *testing.T) {
	srv := &fakeServer{started: make(chan struct{})}
	a := New(Name("tunevideo"), Version("v1"), Servers(srv))
	done := make(chan error)
	go func() { done <- a.Run() }()

	<-srv.started
	require.NoError(t, a.Stop())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not stop")
	}
	assert.True(t, srv.stopped.Load())
	require.NotNil(t, srv.info)
	assert.Equal(t, "tunevideo", srv.info.Name())
	assert.Equal(t, "v1", srv.info.Version())
	assert.NotEmpty(t, srv.info.ID())
	assert.False(t, srv.info.StartTime().IsZero())
}

func TestRunReturnsStartError(t *testing.T) {
	boom := errors.New("listen tcp: address already in use")
	srv := &fakeServer{started: make(chan struct{}), startErr: boom}
	other := &fakeServer{started: make(chan struct{})}
	err := New(Servers(srv, other)).Run()
	assert.ErrorIs(t, err, boom)
	assert.True(t, srv.stopped.Load())
	assert.True(t, other.stopped.Load())
}

func TestFromContextEmpty(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}
