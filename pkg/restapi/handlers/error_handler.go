/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/rl2020/pkg/doc/vc/bitstring"
	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
	"github.com/trustbloc/rl2020/pkg/doc/vc/statustype"
	"github.com/trustbloc/rl2020/pkg/ledger"
)

var logger = log.New("rest-err")

// HTTPErrorHandler writes errors returned by handlers as JSON, mapping domain errors to status codes.
func HTTPErrorHandler(tracer trace.Tracer) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		ctx, span := tracer.Start(c.Request().Context(), "HTTPErrorHandler")
		defer span.End()

		code, message := processError(err)

		span.SetStatus(codes.Error, fmt.Sprintf("%v", message))
		span.RecordError(err)

		logger.Errorc(ctx, "HTTP Error Handler",
			log.WithURL(c.Request().RequestURI),
			log.WithHTTPStatus(code),
			log.WithError(err),
		)

		sendResponse(c, code, message)
	}
}

func sendResponse(c echo.Context, code int, message interface{}) {
	if c.Response().Committed {
		return
	}

	var err error

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, message)
	}

	if err != nil {
		logger.Errorc(c.Request().Context(), "write http response", log.WithError(err))
	}
}

func processError(err error) (int, interface{}) {
	var echoHTTPError *echo.HTTPError
	if errors.As(err, &echoHTTPError) {
		code, message := echoHTTPError.Code, echoHTTPError.Message
		if echoHTTPError.Internal != nil {
			message = err.Error()
		}

		if strMsg, ok := message.(string); ok {
			message = map[string]interface{}{
				"message": strMsg,
			}
		}

		return code, message
	}

	switch {
	case errors.Is(err, ledger.ErrNoEntries):
		return http.StatusNotFound, errorBody("not-found", err)
	case errors.Is(err, statustype.ErrInvalidStatus),
		errors.Is(err, bitstring.ErrOutOfRange),
		errors.Is(err, revocationlist.ErrInvalidSize),
		errors.Is(err, revocationlist.ErrMalformedRecord):
		return http.StatusBadRequest, errorBody("bad-request", err)
	}

	return http.StatusInternalServerError, errorBody("generic-error", err)
}

func errorBody(code string, err error) map[string]interface{} {
	return map[string]interface{}{
		"code":    code,
		"message": err.Error(),
	}
}
