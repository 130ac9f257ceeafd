/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"time"

	"github.com/trustbloc/logutil-go/pkg/log"
)

// Logger used by different metrics provider.
var Logger = log.New("metrics-provider")

// Constants used by different metrics provider.
const (
	// Namespace Organization namespace.
	Namespace = "rl2020"

	// RevocationList operations on the revocation list.
	RevocationList        = "revocationlist"
	ListUpdateTimeMetric  = "list_update_seconds"
	ListEncodeTimeMetric  = "list_encode_seconds"
	CredentialsRevoked    = "credentials_revoked_total"
	CredentialsReset      = "credentials_reset_total"
	ListPublishTimeMetric = "list_publish_seconds"

	// Service operations.
	Service               = "service"
	StatusCheckTimeMetric = "status_check_seconds"
)

// Metrics is an interface for the metrics to be supported by the provider.
type Metrics interface {
	ListUpdateTime(value time.Duration)
	ListEncodeTime(value time.Duration)
	ListPublishTime(value time.Duration)
	StatusCheckTime(value time.Duration)
	CredentialRevoked()
	CredentialReset()
}
