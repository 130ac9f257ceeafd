/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"github.com/spf13/cobra"
	cmdutils "github.com/trustbloc/cmdutil-go/pkg/utils/cmd"
	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/trustbloc/rl2020/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting log levels.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting log levels.
	LogLevelEnvKey = "LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting log levels.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Sets logging levels for individual modules as well as the default level. " +
		"The format of the string is as follows: module1=level1:module2=level2:defaultLevel. " +
		"Supported levels are: PANIC, FATAL, ERROR, WARNING, INFO, DEBUG. " +
		"Example: rl-manager=DEBUG:status-check=WARNING:INFO. " +
		"Defaults to info if not set. Setting to debug may adversely impact performance. Alternatively, this can be " +
		"set with the following environment variable: " + LogLevelEnvKey
)

// LogLevelFlags registers the log level flag on cmd.
func LogLevelFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(LogLevelFlagName, LogLevelFlagShorthand, "", LogLevelPrefixFlagUsage)
}

// LogLevel returns the log level spec set by flag or env var, or empty.
func LogLevel(cmd *cobra.Command) string {
	return cmdutils.GetUserSetOptionalVarFromString(cmd, LogLevelFlagName, LogLevelEnvKey)
}

// SetLogLevels applies a module=level spec. An empty or invalid spec leaves every module at INFO.
func SetLogLevels(logger *log.Log, spec string) {
	log.SetLevel("", log.INFO)

	if spec == "" {
		return
	}

	if err := log.SetSpec(spec); err != nil {
		logger.Warn(`User log level is not a valid. Each level must be one of the following: `+
			log.PANIC.String()+", "+
			log.FATAL.String()+", "+
			log.ERROR.String()+", "+
			log.WARNING.String()+", "+
			log.INFO.String()+", "+
			log.DEBUG.String()+". Defaulting to info.", logfields.WithUserLogLevel(spec), log.WithError(err))

		log.SetLevel("", log.INFO)

		return
	}

	if log.GetLevel("") == log.DEBUG {
		logger.Info(`Log level set to "debug". Performance may be adversely impacted.`)
	}
}
