/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// TracingSkipper leaves health check and metrics endpoints out of traces.
func TracingSkipper(c echo.Context) bool {
	switch c.Path() {
	case healthCheckEndpoint, readinessEndpoint, "/metrics":
		return true
	}

	return echomw.DefaultSkipper(c)
}
