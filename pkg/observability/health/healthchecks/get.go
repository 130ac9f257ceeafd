/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthchecks

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/alexliesenfeld/health"

	"github.com/trustbloc/rl2020/pkg/observability/health/healthutil"
)

const defaultTimeout = 5 * time.Second

// Pinger is a backend able to report its availability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Config lists the backends to check, keyed by component name.
type Config struct {
	Targets map[string]Pinger
	Timeout time.Duration
}

// Get returns one check per target, ordered by name.
func Get(config *Config) []health.Check {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	names := make([]string, 0, len(config.Targets))
	for name := range config.Targets {
		names = append(names, name)
	}

	sort.Strings(names)

	checks := make([]health.Check, 0, len(names))

	for _, name := range names {
		checks = append(checks, health.Check{
			Name:    name,
			Check:   config.Targets[name].Ping,
			Timeout: timeout,
		})
	}

	return checks
}

// NewHandler serves the aggregated status of checks as JSON.
func NewHandler(checks []health.Check) http.Handler {
	times := healthutil.NewResponseTimes()

	opts := []health.CheckerOption{
		health.WithInterceptors(healthutil.ResponseTimeInterceptor(times)),
	}

	for _, check := range checks {
		opts = append(opts, health.WithCheck(check))
	}

	return health.NewHandler(
		health.NewChecker(opts...),
		health.WithResultWriter(healthutil.NewJSONResultWriter(times)),
	)
}
