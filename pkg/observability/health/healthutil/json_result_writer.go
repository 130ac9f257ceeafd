/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
)

type report struct {
	Status     health.AvailabilityStatus `json:"status"`
	Components map[string]map[string]any `json:"components,omitempty"`
}

// JSONResultWriter renders checker results with the timings collected by ResponseTimeInterceptor.
type JSONResultWriter struct {
	timings *ResponseTimes
}

// NewJSONResultWriter returns a writer reading timings from t. t may be nil.
func NewJSONResultWriter(t *ResponseTimes) *JSONResultWriter {
	return &JSONResultWriter{timings: t}
}

// Write implements health.ResultWriter.
func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error { //nolint:lll
	components, err := componentDetails(result)
	if err != nil {
		return err
	}

	for name, details := range components {
		if rw.timings == nil {
			break
		}

		if state, ok := rw.timings.Get(name); ok {
			details["last_response_time"] = state.LastResponseTime.String()
			details["avg_response_time"] = state.AverageResponseTime.String()
		}
	}

	b, err := json.Marshal(&report{Status: result.Status, Components: components})
	if err != nil {
		return fmt.Errorf("cannot marshal health report: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}

func componentDetails(result *health.CheckerResult) (map[string]map[string]any, error) {
	b, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("cannot marshal checker result: %w", err)
	}

	var decoded struct {
		Details map[string]map[string]any `json:"details"`
	}

	if err = json.Unmarshal(b, &decoded); err != nil {
		return nil, fmt.Errorf("cannot decode checker result: %w", err)
	}

	return decoded.Details, nil
}
