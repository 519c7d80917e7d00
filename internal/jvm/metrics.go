// Copyright 2026 The jvmhost Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jvm

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	coldStarts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jvmhost_cold_starts_total",
		Help: "Total successful JVM cold starts",
	})

	threadAttaches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jvmhost_thread_attaches_total",
		Help: "Total successful thread attachments to the JVM",
	})

	stops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jvmhost_stops_total",
		Help: "Total successful JVM shutdowns",
	})

	failuresByStage = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jvmhost_failures_total",
			Help: "Total lifecycle failures by stage",
		},
		[]string{"stage"},
	)

	coldStartDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "jvmhost_cold_start_duration_seconds",
		Help:    "Duration of JVM cold starts",
		Buckets: prometheus.DefBuckets,
	})
)
