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

package prom

import (
	"tunevideo/pkg/consts"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrainingSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tunevideo_training_submissions_total",
		Help: "Training submissions by result.",
	}, []string{consts.PromResult})

	LogTailReads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tunevideo_log_tail_reads_total",
		Help: "Reads of the trainer log file.",
	})

	QueueRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tunevideo_queue_rejected_total",
		Help: "Submissions rejected because the queue was full.",
	})
)
