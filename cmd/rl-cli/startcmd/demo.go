/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/trustbloc/did-go/doc/did"
	"github.com/trustbloc/logutil-go/pkg/log"
	"go.opentelemetry.io/otel"

	"github.com/trustbloc/rl2020/cmd/common"
	"github.com/trustbloc/rl2020/internal/logfields"
	"github.com/trustbloc/rl2020/pkg/doc/vc/jws"
	"github.com/trustbloc/rl2020/pkg/doc/vc/statustype"
	"github.com/trustbloc/rl2020/pkg/observability/tracing"
	rlmanagertracing "github.com/trustbloc/rl2020/pkg/observability/tracing/wrappers/rlmanager"
	"github.com/trustbloc/rl2020/pkg/rlmanager"
	"github.com/trustbloc/rl2020/pkg/service/statuscheck"
)

var logger = log.New("rl-cli")

// Config drives the demo flow.
type Config struct {
	IssuerDID   string
	KeyRef      string
	ListURL     string
	LedgerIndex string
	SizeKB      int
	Ledger      *common.LedgerParameters

	// StatusIndexes are the indexes of the issued credentials. When empty, Credentials
	// indexes are allocated by the list manager.
	StatusIndexes []uint32
	Credentials   int
	RevokeIndexes []uint32

	// DIDDocOut is an optional file receiving the issuer DID document.
	DIDDocOut       string
	TracingExporter string
	LogLevel        string
}

// StatusReport is the verified state of one issued credential.
type StatusReport struct {
	Index     uint32 `json:"index"`
	Revoked   bool   `json:"revoked"`
	ListVC    string `json:"listVC"`
	MessageID string `json:"messageID"`
}

// DemoReport is the outcome of a demo run.
type DemoReport struct {
	IssuerDID   string          `json:"issuerDID"`
	LedgerType  string          `json:"ledgerType"`
	LedgerIndex string          `json:"ledgerIndex"`
	Published   []string        `json:"published"`
	Statuses    []*StatusReport `json:"statuses"`
}

// GetDemoCmd returns the command running the issue, publish, revoke, republish and verify flow.
func GetDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the revocation list flow against a ledger",
		Long: "Issues credential statuses, publishes the list credential, revokes some statuses, " +
			"publishes again and verifies every status against the newest list on the ledger.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := getDemoConfig(cmd)
			if err != nil {
				return err
			}

			common.SetLogLevels(logger, config.LogLevel)

			report, err := RunDemo(cmd.Context(), config)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(report)
		},
	}

	addDemoFlags(cmd)

	return cmd
}

// RunDemo runs the demo flow described by config.
func RunDemo(ctx context.Context, config *Config) (*DemoReport, error) {
	shutdown, tracer, err := tracing.Initialize(config.TracingExporter, serviceName)
	if err != nil {
		return nil, err
	}

	defer shutdown()

	backend, err := common.InitLedger(ctx, config.Ledger, otel.GetTracerProvider(), logger)
	if err != nil {
		return nil, err
	}

	defer func() {
		if closeErr := backend.Close(); closeErr != nil {
			logger.Warn("Failed to close ledger", log.WithError(closeErr))
		}
	}()

	keys := jws.NewKeyring()

	if _, err = keys.GenerateKey(config.KeyRef); err != nil {
		return nil, err
	}

	didDoc, err := keys.DIDDocument(config.IssuerDID)
	if err != nil {
		return nil, err
	}

	if config.DIDDocOut != "" {
		if err = writeDIDDocument(config.DIDDocOut, didDoc); err != nil {
			return nil, err
		}
	}

	manager, err := rlmanager.New(&rlmanager.Config{
		ListVCURL:   config.ListURL,
		IssuerDID:   config.IssuerDID,
		KeyRef:      config.KeyRef,
		SizeKB:      config.SizeKB,
		LedgerIndex: config.LedgerIndex,
		Store:       backend.Records,
		Ledger:      backend.Ledger,
		Signer:      jws.NewSigner(keys),
	})
	if err != nil {
		return nil, err
	}

	issuer := rlmanagertracing.Wrap(manager, tracer)

	statuses, err := issueStatuses(ctx, issuer, config)
	if err != nil {
		return nil, err
	}

	report := &DemoReport{
		IssuerDID:   config.IssuerDID,
		LedgerType:  backend.Type,
		LedgerIndex: config.LedgerIndex,
	}

	issued := time.Now().UTC().Truncate(time.Second)

	messageID, err := issuer.PublishList(ctx, issued)
	if err != nil {
		return nil, err
	}

	report.Published = append(report.Published, messageID)

	for _, index := range config.RevokeIndexes {
		status := statustype.NewRevocationList2020Status(config.IssuerDID, index, config.ListURL)

		if err = issuer.UpdateStatus(ctx, status.TypedID(), true); err != nil {
			return nil, fmt.Errorf("revoke index %d: %w", index, err)
		}
	}

	// RFC 3339 issuance dates have second precision.
	messageID, err = issuer.PublishList(ctx, issued.Add(time.Second))
	if err != nil {
		return nil, err
	}

	report.Published = append(report.Published, messageID)

	checker := statuscheck.New(&statuscheck.Config{
		Ledger:      backend.Ledger,
		Resolver:    jws.NewStaticResolver(didDoc),
		Verifier:    jws.NewVerifier(),
		LedgerIndex: config.LedgerIndex,
		Retries:     statuscheck.DefaultRetries,
	})

	for _, status := range statuses {
		result, checkErr := checker.Check(ctx, status.TypedID(), config.IssuerDID)
		if checkErr != nil {
			return nil, checkErr
		}

		report.Statuses = append(report.Statuses, &StatusReport{
			Index:     result.Index,
			Revoked:   result.Revoked,
			ListVC:    result.ListVCID,
			MessageID: result.MessageID,
		})
	}

	logger.Infoc(ctx, "Demo completed",
		logfields.WithIssuerDID(config.IssuerDID), logfields.WithLedgerType(backend.Type),
		logfields.WithLedgerIndex(config.LedgerIndex))

	return report, nil
}

func issueStatuses(ctx context.Context, issuer rlmanager.ServiceInterface,
	config *Config) ([]*statustype.RevocationList2020Status, error) {
	if len(config.StatusIndexes) > 0 {
		statuses := make([]*statustype.RevocationList2020Status, 0, len(config.StatusIndexes))

		for _, index := range config.StatusIndexes {
			statuses = append(statuses,
				statustype.NewRevocationList2020Status(config.IssuerDID, index, config.ListURL))
		}

		return statuses, nil
	}

	statuses := make([]*statustype.RevocationList2020Status, 0, config.Credentials)

	for i := 0; i < config.Credentials; i++ {
		status, err := issuer.CreateStatusEntry(ctx)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}

func writeDIDDocument(path string, doc *did.Doc) error {
	b, err := doc.JSONBytes()
	if err != nil {
		return fmt.Errorf("marshal DID document: %w", err)
	}

	if err = os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write DID document: %w", err)
	}

	return nil
}
