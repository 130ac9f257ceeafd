/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package startcmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"

	"github.com/trustbloc/rl2020/cmd/common"
	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
	"github.com/trustbloc/rl2020/pkg/observability/tracing"
)

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	issuerDIDFlagName  = "issuer-did"
	issuerDIDEnvKey    = "RL_ISSUER_DID"
	issuerDIDFlagUsage = "DID of the list issuer. Defaults to " + defaultIssuerDID + ". " +
		commonEnvVarUsageText + issuerDIDEnvKey

	keyRefFlagName  = "key-ref"
	keyRefEnvKey    = "RL_KEY_REF"
	keyRefFlagUsage = "Verification method fragment of the issuer signing key. Defaults to " + defaultKeyRef + ". " +
		commonEnvVarUsageText + keyRefEnvKey

	listURLFlagName  = "list-url"
	listURLEnvKey    = "RL_LIST_URL"
	listURLFlagUsage = "Id of the revocation list credential. Defaults to " + defaultListURL + ". " +
		commonEnvVarUsageText + listURLEnvKey

	ledgerIndexFlagName  = "ledger-index"
	ledgerIndexEnvKey    = "RL_LEDGER_INDEX"
	ledgerIndexFlagUsage = "Ledger index the list credentials are published on. Defaults to " +
		defaultLedgerIndex + ". " + commonEnvVarUsageText + ledgerIndexEnvKey

	sizeKBFlagName  = "size-kb"
	sizeKBEnvKey    = "RL_LIST_SIZE_KB"
	sizeKBFlagUsage = "Revocation list size in KB, between 16 and 128. Defaults to 16. " +
		commonEnvVarUsageText + sizeKBEnvKey

	statusIndexesFlagName  = "status-indexes"
	statusIndexesEnvKey    = "RL_STATUS_INDEXES"
	statusIndexesFlagUsage = "Comma-separated status indexes of the credentials issued by the demo. " +
		"When empty, indexes are allocated in order. Defaults to 7,2500,100. " +
		commonEnvVarUsageText + statusIndexesEnvKey

	credentialsFlagName  = "credentials"
	credentialsEnvKey    = "RL_CREDENTIALS"
	credentialsFlagUsage = "Number of credentials to issue with allocated indexes when status-indexes is empty. " +
		commonEnvVarUsageText + credentialsEnvKey

	revokeIndexesFlagName  = "revoke-indexes"
	revokeIndexesEnvKey    = "RL_REVOKE_INDEXES"
	revokeIndexesFlagUsage = "Comma-separated status indexes revoked by the demo. Defaults to 7,2500. " +
		commonEnvVarUsageText + revokeIndexesEnvKey

	didDocOutFlagName  = "did-doc-out"
	didDocOutEnvKey    = "RL_DID_DOC_OUT"
	didDocOutFlagUsage = "Optional file the demo writes the issuer DID document to, for use by serve. " +
		commonEnvVarUsageText + didDocOutEnvKey

	issuerDIDDocFlagName  = "issuer-did-doc"
	issuerDIDDocEnvKey    = "RL_ISSUER_DID_DOC"
	issuerDIDDocFlagUsage = "File holding the DID document used to verify published lists. " +
		commonEnvVarUsageText + issuerDIDDocEnvKey

	hostURLFlagName  = "host-url"
	hostURLEnvKey    = "RL_HOST_URL"
	hostURLFlagUsage = "URL to run the status server on. Format: HostName:Port. " +
		commonEnvVarUsageText + hostURLEnvKey

	tracingExporterFlagName  = "tracing-exporter"
	tracingExporterEnvKey    = "RL_TRACING_EXPORTER"
	tracingExporterFlagUsage = "Span exporter: empty (disabled) or STDOUT. " +
		commonEnvVarUsageText + tracingExporterEnvKey

	serviceName = "rl-cli"

	defaultIssuerDID   = "did:example:rl2020-issuer"
	defaultKeyRef      = "key-1"
	defaultListURL     = "https://example.com/credentials/status/3"
	defaultLedgerIndex = "RL2020_MyList"
)

// nolint:gochecknoglobals
var (
	defaultStatusIndexes = []uint32{7, 2500, 100}
	defaultRevokeIndexes = []uint32{7, 2500}
)

func addCommonFlags(cmd *cobra.Command) {
	common.LogLevelFlags(cmd)
	cmd.Flags().StringP(ledgerIndexFlagName, "", "", ledgerIndexFlagUsage)
	cmd.Flags().StringP(tracingExporterFlagName, "", "", tracingExporterFlagUsage)
	common.LedgerFlags(cmd)
}

func addDemoFlags(cmd *cobra.Command) {
	addCommonFlags(cmd)

	cmd.Flags().StringP(issuerDIDFlagName, "", "", issuerDIDFlagUsage)
	cmd.Flags().StringP(keyRefFlagName, "", "", keyRefFlagUsage)
	cmd.Flags().StringP(listURLFlagName, "", "", listURLFlagUsage)
	cmd.Flags().StringP(sizeKBFlagName, "", "", sizeKBFlagUsage)
	cmd.Flags().StringP(statusIndexesFlagName, "", "", statusIndexesFlagUsage)
	cmd.Flags().StringP(credentialsFlagName, "", "", credentialsFlagUsage)
	cmd.Flags().StringP(revokeIndexesFlagName, "", "", revokeIndexesFlagUsage)
	cmd.Flags().StringP(didDocOutFlagName, "", "", didDocOutFlagUsage)
}

func addServeFlags(cmd *cobra.Command) {
	addCommonFlags(cmd)

	cmd.Flags().StringP(hostURLFlagName, "", "", hostURLFlagUsage)
	cmd.Flags().StringP(issuerDIDDocFlagName, "", "", issuerDIDDocFlagUsage)
}

func getCommonParameters(cmd *cobra.Command) (*commonParameters, error) {
	ledgerParams, err := common.LedgerParams(cmd)
	if err != nil {
		return nil, err
	}

	params := &commonParameters{
		logLevel:        common.LogLevel(cmd),
		ledger:          ledgerParams,
		ledgerIndex:     optionalString(cmd, ledgerIndexFlagName, ledgerIndexEnvKey, defaultLedgerIndex),
		tracingExporter: cmdutils.GetUserSetOptionalVarFromString(cmd, tracingExporterFlagName, tracingExporterEnvKey),
	}

	if !tracing.IsExportedSupported(params.tracingExporter) {
		return nil, fmt.Errorf("unsupported %s: %q", tracingExporterFlagName, params.tracingExporter)
	}

	return params, nil
}

func getDemoConfig(cmd *cobra.Command) (*Config, error) {
	commonParams, err := getCommonParameters(cmd)
	if err != nil {
		return nil, err
	}

	config := &Config{
		IssuerDID:       optionalString(cmd, issuerDIDFlagName, issuerDIDEnvKey, defaultIssuerDID),
		KeyRef:          optionalString(cmd, keyRefFlagName, keyRefEnvKey, defaultKeyRef),
		ListURL:         optionalString(cmd, listURLFlagName, listURLEnvKey, defaultListURL),
		LedgerIndex:     commonParams.ledgerIndex,
		Ledger:          commonParams.ledger,
		TracingExporter: commonParams.tracingExporter,
		LogLevel:        commonParams.logLevel,
		SizeKB:          revocationlist.MinSizeKB,
		StatusIndexes:   defaultStatusIndexes,
		RevokeIndexes:   defaultRevokeIndexes,
		DIDDocOut:       cmdutils.GetUserSetOptionalVarFromString(cmd, didDocOutFlagName, didDocOutEnvKey),
	}

	if v := cmdutils.GetUserSetOptionalVarFromString(cmd, sizeKBFlagName, sizeKBEnvKey); v != "" {
		if config.SizeKB, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", sizeKBFlagName, err)
		}
	}

	if v := cmdutils.GetUserSetOptionalVarFromString(cmd, credentialsFlagName, credentialsEnvKey); v != "" {
		if config.Credentials, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", credentialsFlagName, err)
		}

		config.StatusIndexes = nil
	}

	if isSet(cmd, statusIndexesFlagName, statusIndexesEnvKey) {
		config.StatusIndexes, err = parseIndexes(
			cmdutils.GetUserSetOptionalVarFromString(cmd, statusIndexesFlagName, statusIndexesEnvKey))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", statusIndexesFlagName, err)
		}
	}

	if isSet(cmd, revokeIndexesFlagName, revokeIndexesEnvKey) {
		config.RevokeIndexes, err = parseIndexes(
			cmdutils.GetUserSetOptionalVarFromString(cmd, revokeIndexesFlagName, revokeIndexesEnvKey))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", revokeIndexesFlagName, err)
		}
	}

	return config, nil
}

func getServeParameters(cmd *cobra.Command) (*serveParameters, error) {
	commonParams, err := getCommonParameters(cmd)
	if err != nil {
		return nil, err
	}

	hostURL, err := cmdutils.GetUserSetVarFromString(cmd, hostURLFlagName, hostURLEnvKey, false)
	if err != nil {
		return nil, err
	}

	didDocPath, err := cmdutils.GetUserSetVarFromString(cmd, issuerDIDDocFlagName, issuerDIDDocEnvKey, false)
	if err != nil {
		return nil, err
	}

	return &serveParameters{
		commonParameters: commonParams,
		hostURL:          hostURL,
		didDocPath:       didDocPath,
	}, nil
}

type commonParameters struct {
	logLevel        string
	ledger          *common.LedgerParameters
	ledgerIndex     string
	tracingExporter string
}

type serveParameters struct {
	*commonParameters
	hostURL    string
	didDocPath string
}

func optionalString(cmd *cobra.Command, flagName, envKey, defaultValue string) string {
	if v := cmdutils.GetUserSetOptionalVarFromString(cmd, flagName, envKey); v != "" {
		return v
	}

	return defaultValue
}

func isSet(cmd *cobra.Command, flagName, envKey string) bool {
	if cmd.Flags().Changed(flagName) {
		return true
	}

	_, ok := os.LookupEnv(envKey)

	return ok
}

func parseIndexes(csv string) ([]uint32, error) {
	var indexes []uint32

	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, err
		}

		indexes = append(indexes, uint32(index))
	}

	return indexes, nil
}
