/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package listcmd

const (
	commonEnvVarUsageText = "Alternatively, this can be set with the following environment variable: "

	listIDFlagName  = "id"
	listIDEnvKey    = "RL_LIST_ID"
	listIDFlagUsage = "Revocation list id (the id of its list credential). " + commonEnvVarUsageText + listIDEnvKey

	sizeKBFlagName  = "size-kb"
	sizeKBEnvKey    = "RL_LIST_SIZE_KB"
	sizeKBFlagUsage = "Revocation list size in KB, between 16 and 128. Defaults to 16. " +
		commonEnvVarUsageText + sizeKBEnvKey

	encodedListFlagName  = "encoded-list"
	encodedListEnvKey    = "RL_ENCODED_LIST"
	encodedListFlagUsage = "Encoded list (base64 of the zlib compressed bitstring). " +
		commonEnvVarUsageText + encodedListEnvKey

	indexFlagName  = "index"
	indexEnvKey    = "RL_STATUS_INDEX"
	indexFlagUsage = "Status index in the list. " + commonEnvVarUsageText + indexEnvKey

	recordFlagName  = "record"
	recordEnvKey    = "RL_LIST_RECORD"
	recordFlagUsage = "Full list record (URL-safe base64 of the zlib compressed CBOR record). " +
		commonEnvVarUsageText + recordEnvKey
)
