/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package prometheus

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/trustbloc/rl2020/internal/logfields"
	"github.com/trustbloc/rl2020/pkg/observability/metrics"
)

var logger = metrics.Logger

var (
	createOnce sync.Once       //nolint:gochecknoglobals
	instance   metrics.Metrics //nolint:gochecknoglobals
)

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	createOnce.Do(func() {
		instance = NewMetrics(prometheus.DefaultRegisterer)
	})

	return instance
}

// PromMetrics manages the metrics for revocation lists.
type PromMetrics struct {
	listUpdateTime     prometheus.Histogram
	listEncodeTime     prometheus.Histogram
	listPublishTime    prometheus.Histogram
	statusCheckTime    prometheus.Histogram
	credentialsRevoked prometheus.Counter
	credentialsReset   prometheus.Counter
}

// NewMetrics creates instance of prometheus metrics registered with registerer.
func NewMetrics(registerer prometheus.Registerer) *PromMetrics {
	pm := &PromMetrics{
		listUpdateTime: newHistogram(
			metrics.RevocationList, metrics.ListUpdateTimeMetric,
			"The time (in seconds) it takes to revoke or reset a credential in the revocation list.",
			nil,
		),
		listEncodeTime: newHistogram(
			metrics.RevocationList, metrics.ListEncodeTimeMetric,
			"The time (in seconds) it takes to build and encode the revocation list credential.",
			nil,
		),
		listPublishTime: newHistogram(
			metrics.RevocationList, metrics.ListPublishTimeMetric,
			"The time (in seconds) it takes to sign and publish the revocation list credential.",
			nil,
		),
		statusCheckTime: newHistogram(
			metrics.Service, metrics.StatusCheckTimeMetric,
			"The time (in seconds) it takes to check a credential status against the ledger.",
			nil,
		),
		credentialsRevoked: newCounter(
			metrics.RevocationList, metrics.CredentialsRevoked,
			"The number of revoke operations.",
			nil,
		),
		credentialsReset: newCounter(
			metrics.RevocationList, metrics.CredentialsReset,
			"The number of reset operations.",
			nil,
		),
	}

	registerer.MustRegister(
		pm.listUpdateTime, pm.listEncodeTime, pm.listPublishTime, pm.statusCheckTime,
		pm.credentialsRevoked, pm.credentialsReset,
	)

	return pm
}

// ListUpdateTime records the time for a revoke or reset.
func (pm *PromMetrics) ListUpdateTime(value time.Duration) {
	pm.listUpdateTime.Observe(value.Seconds())

	logger.Debug("revocation list update time", logfields.WithDuration(value))
}

// ListEncodeTime records the time for packing the list.
func (pm *PromMetrics) ListEncodeTime(value time.Duration) {
	pm.listEncodeTime.Observe(value.Seconds())

	logger.Debug("revocation list encode time", logfields.WithDuration(value))
}

// ListPublishTime records the time for signing and publishing the list credential.
func (pm *PromMetrics) ListPublishTime(value time.Duration) {
	pm.listPublishTime.Observe(value.Seconds())

	logger.Debug("revocation list publish time", logfields.WithDuration(value))
}

// StatusCheckTime records the time for a status check.
func (pm *PromMetrics) StatusCheckTime(value time.Duration) {
	pm.statusCheckTime.Observe(value.Seconds())

	logger.Debug("status check time", logfields.WithDuration(value))
}

// CredentialRevoked counts a revoke operation.
func (pm *PromMetrics) CredentialRevoked() {
	pm.credentialsRevoked.Inc()
}

// CredentialReset counts a reset operation.
func (pm *PromMetrics) CredentialReset() {
	pm.credentialsReset.Inc()
}

func newCounter(subsystem, name, help string, labels prometheus.Labels) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}

func newHistogram(subsystem, name, help string, labels prometheus.Labels) prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace:   metrics.Namespace,
		Subsystem:   subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: labels,
	})
}
