//  Copyright (c) 2025 dingodb.com, Inc. All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http:www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package middleware

import (
	"net/http"
	"sync/atomic"

	"tunevideo/pkg/prom"
	"tunevideo/pkg/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// QueueLimit 训练任务串行执行，另有size个提交可以排队等待，超出的请求直接拒绝
type QueueLimit struct {
	admit   *semaphore.Weighted
	running *semaphore.Weighted
	waiting atomic.Int64
}

// NewQueueLimit admits one running submission plus size waiting ones. size < 1 is
// treated as 1.
func NewQueueLimit(size int64) *QueueLimit {
	if size < 1 {
		size = 1
	}
	return &QueueLimit{
		admit:   semaphore.NewWeighted(size + 1),
		running: semaphore.NewWeighted(1),
	}
}

func (q *QueueLimit) QueueLimitMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !q.admit.TryAcquire(1) {
			prom.QueueRejected.Inc()
			zap.S().Warnf("queue is full, reject %s %s", c.Request().Method, c.Path())
			return util.ErrorEntryUnknown(c, http.StatusTooManyRequests, "the training queue is full, try again later")
		}
		defer q.admit.Release(1)

		if !q.running.TryAcquire(1) {
			zap.S().Infof("training submission queued, %d waiting", q.waiting.Add(1))
			err := q.running.Acquire(c.Request().Context(), 1)
			q.waiting.Add(-1)
			if err != nil {
				zap.S().Infof("queued submission left before running: %v", err)
				return util.ErrorEntryUnknown(c, http.StatusServiceUnavailable, "submission cancelled while queued")
			}
		}
		defer q.running.Release(1)
		return next(c)
	}
}

// Waiting reports how many admitted submissions are waiting for the running one.
func (q *QueueLimit) Waiting() int64 {
	return q.waiting.Load()
}
