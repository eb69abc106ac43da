package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingRoute struct {
	entered chan struct{}
	release chan struct{}
}

func newBlockingRoute() *blockingRoute {
	return &blockingRoute{entered: make(chan struct{}, 4), release: make(chan struct{})}
}

func (b *blockingRoute) handle(c echo.Context) error {
	b.entered <- struct{}{}
	<-b.release
	return c.NoContent(http.StatusOK)
}

func serve(e *echo.Echo, h echo.HandlerFunc, req *http.Request) chan *httptest.ResponseRecorder {
	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		rec := httptest.NewRecorder()
		_ = h(e.NewContext(req, rec))
		done <- rec
	}()
	return done
}

func TestQueueLimitOneRunningOneWaiting(t *testing.T) {
	e := echo.New()
	q := NewQueueLimit(1)
	route := newBlockingRoute()
	h := q.QueueLimitMiddleware(route.handle)

	first := serve(e, h, httptest.NewRequest(http.MethodPost, "/api/v1/train", nil))
	<-route.entered
	second := serve(e, h, httptest.NewRequest(http.MethodPost, "/api/v1/train", nil))
	require.Eventually(t, func() bool { return q.Waiting() == 1 }, 5*time.Second, 5*time.Millisecond)
	assert.Len(t, route.entered, 0, "queued submission must not run alongside the first")

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/train", nil), rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	close(route.release)
	assert.Equal(t, http.StatusOK, (<-first).Code)
	assert.Equal(t, http.StatusOK, (<-second).Code)
	assert.Equal(t, int64(0), q.Waiting())
}

func TestQueueLimitQueuedRequestCancelled(t *testing.T) {
	e := echo.New()
	q := NewQueueLimit(1)
	route := newBlockingRoute()
	h := q.QueueLimitMiddleware(route.handle)

	first := serve(e, h, httptest.NewRequest(http.MethodPost, "/api/v1/train", nil))
	<-route.entered

	ctx, cancel := context.WithCancel(context.Background())
	second := serve(e, h, httptest.NewRequest(http.MethodPost, "/api/v1/train", nil).WithContext(ctx))
	require.Eventually(t, func() bool { return q.Waiting() == 1 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	assert.Equal(t, http.StatusServiceUnavailable, (<-second).Code)

	close(route.release)
	assert.Equal(t, http.StatusOK, (<-first).Code)
}

func TestQueueLimitReleasesSlot(t *testing.T) {
	e := echo.New()
	q := NewQueueLimit(0)
	h := q.QueueLimitMiddleware(func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	})
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	}
}
