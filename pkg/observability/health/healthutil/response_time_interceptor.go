/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"context"
	"sync"
	"time"

	"github.com/alexliesenfeld/health"
)

// ResponseTimeState holds the timings of one check.
type ResponseTimeState struct {
	LastResponseTime    time.Duration
	AverageResponseTime time.Duration
}

// ResponseTimes is a concurrency-safe set of check timings.
type ResponseTimes struct {
	mu     sync.RWMutex
	states map[string]ResponseTimeState
}

// NewResponseTimes returns an empty set.
func NewResponseTimes() *ResponseTimes {
	return &ResponseTimes{states: map[string]ResponseTimeState{}}
}

// Get returns the timings of the named check.
func (r *ResponseTimes) Get(name string) (ResponseTimeState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, ok := r.states[name]

	return state, ok
}

func (r *ResponseTimes) record(name string, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.states[name]
	if !ok {
		r.states[name] = ResponseTimeState{LastResponseTime: elapsed, AverageResponseTime: elapsed}

		return
	}

	r.states[name] = ResponseTimeState{
		LastResponseTime:    elapsed,
		AverageResponseTime: (state.AverageResponseTime + elapsed) / 2, //nolint:mnd
	}
}

// ResponseTimeInterceptor times every check run into r.
func ResponseTimeInterceptor(r *ResponseTimes) health.Interceptor {
	return func(next health.InterceptorFunc) health.InterceptorFunc {
		return func(ctx context.Context, name string, state health.CheckState) health.CheckState {
			start := time.Now()
			result := next(ctx, name, state)

			r.record(name, time.Since(start))

			return result
		}
	}
}
