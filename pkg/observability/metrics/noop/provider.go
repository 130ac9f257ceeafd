/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package noop

import (
	"time"

	"github.com/trustbloc/rl2020/pkg/observability/metrics"
)

// NoMetrics provides default no operation implementation for the NoMetrics interface.
type NoMetrics struct{}

// GetMetrics returns metrics implementation.
func GetMetrics() metrics.Metrics {
	return &NoMetrics{}
}

func (n *NoMetrics) ListUpdateTime(_ time.Duration)  {}
func (n *NoMetrics) ListEncodeTime(_ time.Duration)  {}
func (n *NoMetrics) ListPublishTime(_ time.Duration) {}
func (n *NoMetrics) StatusCheckTime(_ time.Duration) {}
func (n *NoMetrics) CredentialRevoked()              {}
func (n *NoMetrics) CredentialReset()                {}
