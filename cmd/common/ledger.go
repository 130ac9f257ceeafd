/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/rl2020/internal/logfields"
	"github.com/trustbloc/rl2020/pkg/ledger"
	"github.com/trustbloc/rl2020/pkg/ledger/memlog"
	"github.com/trustbloc/rl2020/pkg/observability/health/healthchecks"
	"github.com/trustbloc/rl2020/pkg/rlmanager"
	"github.com/trustbloc/rl2020/pkg/storage/memstore"
	"github.com/trustbloc/rl2020/pkg/storage/mongodb"
	mongoledgerstore "github.com/trustbloc/rl2020/pkg/storage/mongodb/ledgerstore"
	"github.com/trustbloc/rl2020/pkg/storage/mongodb/rlstore"
	"github.com/trustbloc/rl2020/pkg/storage/redis"
	redisledgerstore "github.com/trustbloc/rl2020/pkg/storage/redis/ledgerstore"
	s3ledgerstore "github.com/trustbloc/rl2020/pkg/storage/s3/ledgerstore"
)

const (
	// LedgerURLFlagName is the ledger url.
	LedgerURLFlagName = "ledger-url"
	// LedgerURLEnvKey is the ledger url.
	LedgerURLEnvKey = "RL_LEDGER_URL"
	// LedgerURLFlagUsage describes the usage.
	LedgerURLFlagUsage = "Ledger URL with credentials if required." +
		" Format must be <driver>:[//]<driver-specific-dsn>." +
		" Examples: 'mem://', 'redis://:secret@localhost:6379', 'mongodb://mongodb.example.com:27017'," +
		" 's3://bucket?region=us-east-1&endpoint=http://localhost:4566'." +
		" Supported drivers are [mem, redis, mongodb, s3]. Defaults to mem://." +
		" Alternatively, this can be set with the following environment variable: " + LedgerURLEnvKey

	// LedgerDatabaseFlagName is the MongoDB database name.
	LedgerDatabaseFlagName = "ledger-database"
	// LedgerDatabaseEnvKey is the MongoDB database name.
	LedgerDatabaseEnvKey = "RL_LEDGER_DATABASE"
	// LedgerDatabaseFlagUsage describes the usage.
	LedgerDatabaseFlagUsage = "MongoDB database holding the ledger and list records. Defaults to " +
		LedgerDatabaseDefault + "." +
		" Alternatively, this can be set with the following environment variable: " + LedgerDatabaseEnvKey

	// LedgerTimeoutFlagName is the ledger connect timeout.
	LedgerTimeoutFlagName = "ledger-timeout"
	// LedgerTimeoutEnvKey is the ledger connect timeout.
	LedgerTimeoutEnvKey = "RL_LEDGER_TIMEOUT"
	// LedgerTimeoutFlagUsage describes the usage.
	LedgerTimeoutFlagUsage = "Total time in seconds to wait until the ledger is available before giving up." +
		" Alternatively, this can be set with the following environment variable: " + LedgerTimeoutEnvKey

	// LedgerDatabaseDefault is the default MongoDB database.
	LedgerDatabaseDefault = "rl2020"
	// LedgerTimeoutDefault is the default connect timeout in seconds.
	LedgerTimeoutDefault = 30

	defaultLedgerURL = "mem://"
)

// Ledger types.
const (
	LedgerTypeMem     = "mem"
	LedgerTypeRedis   = "redis"
	LedgerTypeMongoDB = "mongodb"
	LedgerTypeS3      = "s3"
)

// LedgerParameters holds ledger configuration.
type LedgerParameters struct {
	URL      string
	Database string
	Timeout  uint64
}

// Backend is an opened ledger with the list record store that goes with it. Checks holds
// the remote services behind the backend.
type Backend struct {
	Type    string
	Ledger  ledger.Store
	Records rlmanager.RecordStore
	Checks  map[string]healthchecks.Pinger
	closers []func() error
}

// Close releases the backend connections.
func (b *Backend) Close() error {
	var errs []error

	for _, closeFn := range b.closers {
		errs = append(errs, closeFn())
	}

	return errors.Join(errs...)
}

type backendFunc func(ctx context.Context, u *url.URL, params *LedgerParameters,
	tp trace.TracerProvider) (*Backend, error)

// nolint:gochecknoglobals
var supportedLedgers = map[string]backendFunc{
	LedgerTypeMem:     memBackend,
	LedgerTypeRedis:   redisBackend,
	LedgerTypeMongoDB: mongoBackend,
	LedgerTypeS3:      s3Backend,
}

// LedgerFlags registers ledger flags.
func LedgerFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(LedgerURLFlagName, "", "", LedgerURLFlagUsage)
	cmd.Flags().StringP(LedgerDatabaseFlagName, "", "", LedgerDatabaseFlagUsage)
	cmd.Flags().StringP(LedgerTimeoutFlagName, "", "", LedgerTimeoutFlagUsage)
}

// LedgerParams fetches the ledger parameters configured for this command.
func LedgerParams(cmd *cobra.Command) (*LedgerParameters, error) {
	params := &LedgerParameters{
		URL:      cmdutils.GetUserSetOptionalVarFromString(cmd, LedgerURLFlagName, LedgerURLEnvKey),
		Database: cmdutils.GetUserSetOptionalVarFromString(cmd, LedgerDatabaseFlagName, LedgerDatabaseEnvKey),
	}

	if params.URL == "" {
		params.URL = defaultLedgerURL
	}

	if params.Database == "" {
		params.Database = LedgerDatabaseDefault
	}

	timeout := cmdutils.GetUserSetOptionalVarFromString(cmd, LedgerTimeoutFlagName, LedgerTimeoutEnvKey)
	if timeout == "" {
		timeout = strconv.Itoa(LedgerTimeoutDefault)
	}

	var err error

	params.Timeout, err = strconv.ParseUint(timeout, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ledger timeout %s: %w", timeout, err)
	}

	return params, nil
}

// InitLedger opens the ledger named by params.URL, retrying until it is reachable.
func InitLedger(ctx context.Context, params *LedgerParameters, tp trace.TracerProvider,
	logger *log.Log) (*Backend, error) {
	u, err := url.Parse(params.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", params.URL, err)
	}

	open, supported := supportedLedgers[u.Scheme]
	if !supported {
		return nil, fmt.Errorf("unsupported ledger driver: %q", u.Scheme)
	}

	var backend *Backend

	err = retry(
		func() error {
			var openErr error
			backend, openErr = open(ctx, u, params, tp)

			return openErr
		},
		params.Timeout,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init %s ledger: %w", u.Scheme, err)
	}

	backend.Type = u.Scheme

	logger.Info("Ledger initialized", logfields.WithLedgerType(backend.Type))

	return backend, nil
}

func memBackend(context.Context, *url.URL, *LedgerParameters, trace.TracerProvider) (*Backend, error) {
	return &Backend{
		Ledger:  memlog.New(),
		Records: memstore.NewRecordStore(),
	}, nil
}

func redisBackend(_ context.Context, u *url.URL, _ *LedgerParameters, tp trace.TracerProvider) (*Backend, error) {
	if u.Host == "" {
		return nil, backoff.Permanent(fmt.Errorf("redis ledger URL has no address: %s", u.Redacted()))
	}

	var opts []redis.ClientOpt

	if password, ok := u.User.Password(); ok {
		opts = append(opts, redis.WithPassword(password))
	}

	if tp != nil {
		opts = append(opts, redis.WithTraceProvider(tp))
	}

	client, err := redis.New(strings.Split(u.Host, ","), opts...)
	if err != nil {
		return nil, err
	}

	return &Backend{
		Ledger:  redisledgerstore.New(client),
		Records: memstore.NewRecordStore(),
		Checks:  map[string]healthchecks.Pinger{LedgerTypeRedis: client},
		closers: []func() error{client.Close},
	}, nil
}

func mongoBackend(_ context.Context, _ *url.URL, params *LedgerParameters,
	tp trace.TracerProvider) (*Backend, error) {
	var opts []mongodb.ClientOpt

	if tp != nil {
		opts = append(opts, mongodb.WithTraceProvider(tp))
	}

	client, err := mongodb.New(params.URL, params.Database, opts...)
	if err != nil {
		return nil, err
	}

	return &Backend{
		Ledger:  mongoledgerstore.NewStore(client),
		Records: rlstore.NewStore(client),
		Checks:  map[string]healthchecks.Pinger{LedgerTypeMongoDB: client},
		closers: []func() error{client.Close},
	}, nil
}

func s3Backend(ctx context.Context, u *url.URL, _ *LedgerParameters, _ trace.TracerProvider) (*Backend, error) {
	if u.Host == "" {
		return nil, backoff.Permanent(fmt.Errorf("s3 ledger URL has no bucket: %s", u.Redacted()))
	}

	client, err := s3ledgerstore.NewClient(ctx, u.Query().Get("region"), u.Query().Get("endpoint"))
	if err != nil {
		return nil, err
	}

	return &Backend{
		Ledger:  s3ledgerstore.NewStore(client, u.Host),
		Records: memstore.NewRecordStore(),
	}, nil
}

func retry(task func() error, numRetries uint64, logger *log.Log) error {
	const sleep = 1 * time.Second

	return backoff.RetryNotify(
		task,
		backoff.WithMaxRetries(backoff.NewConstantBackOff(sleep), numRetries),
		func(retryErr error, t time.Duration) {
			logger.Warn("Failed to connect to ledger, will sleep before trying again.",
				logfields.WithSleep(t), log.WithError(retryErr))
		},
	)
}
