/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

//go:generate mockgen -destination serve_mocks_test.go -package startcmd -source=serve.go -mock_names server=MockServer

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"github.com/trustbloc/did-go/doc/did"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"

	"github.com/trustbloc/rl2020/cmd/common"
	"github.com/trustbloc/rl2020/pkg/doc/vc/jws"
	"github.com/trustbloc/rl2020/pkg/observability/health/healthchecks"
	metricsprovider "github.com/trustbloc/rl2020/pkg/observability/metrics/prometheus"
	"github.com/trustbloc/rl2020/pkg/observability/tracing"
	"github.com/trustbloc/rl2020/pkg/restapi/handlers"
	"github.com/trustbloc/rl2020/pkg/restapi/statuslist"
	"github.com/trustbloc/rl2020/pkg/service/statuscheck"
)

const (
	healthCheckEndpoint = "/healthcheck"
	readHeaderTimeout   = 10 * time.Second
)

type server interface {
	ListenAndServe(host string, router http.Handler) error
}

// HTTPServer represents an actual HTTP server implementation.
type HTTPServer struct{}

// ListenAndServe starts the server using the standard Go HTTP server implementation.
func (s *HTTPServer) ListenAndServe(host string, router http.Handler) error {
	srv := &http.Server{
		Addr:              host,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return srv.ListenAndServe()
}

// GetServeCmd returns the command serving published revocation lists over REST.
func GetServeCmd(srv server) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the revocation lists published on a ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := getServeParameters(cmd)
			if err != nil {
				return err
			}

			common.SetLogLevels(logger, params.logLevel)

			return startServer(cmd.Context(), params, srv)
		},
	}

	addServeFlags(cmd)

	return cmd
}

func startServer(ctx context.Context, params *serveParameters, srv server) error {
	shutdown, tracer, err := tracing.Initialize(params.tracingExporter, serviceName)
	if err != nil {
		return err
	}

	defer shutdown()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(tracer)

	e.Use(echomw.Recover())

	if params.tracingExporter != tracing.None {
		e.Use(otelecho.Middleware(serviceName, otelecho.WithSkipper(TracingSkipper)))
	}

	ready := newReadinessController(e)

	resolver, err := loadResolver(params.didDocPath)
	if err != nil {
		return err
	}

	backend, err := common.InitLedger(ctx, params.ledger, otel.GetTracerProvider(), logger)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := backend.Close(); closeErr != nil {
			logger.Warn("Failed to close ledger", log.WithError(closeErr))
		}
	}()

	statuslist.NewController(&statuslist.Config{
		StatusService: statuscheck.New(&statuscheck.Config{
			Ledger:      backend.Ledger,
			Resolver:    resolver,
			Verifier:    jws.NewVerifier(),
			LedgerIndex: params.ledgerIndex,
			Metrics:     metricsprovider.GetMetrics(),
		}),
	}).Register(e)

	metricsprovider.NewHandler(nil).Register(e)

	e.GET(healthCheckEndpoint, echo.WrapHandler(healthchecks.NewHandler(healthchecks.Get(&healthchecks.Config{
		Targets: backend.Checks,
	}))))

	ready.Ready(true)

	logger.Info("Starting status server", log.WithURL(params.hostURL))

	return srv.ListenAndServe(params.hostURL, e)
}

func loadResolver(path string) (*jws.StaticResolver, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read DID document: %w", err)
	}

	doc, err := did.ParseDocument(b)
	if err != nil {
		return nil, fmt.Errorf("parse DID document: %w", err)
	}

	return jws.NewStaticResolver(doc), nil
}
