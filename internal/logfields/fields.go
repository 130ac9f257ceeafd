/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package logfields

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log Fields.
const (
	FieldCommand      = "command"
	FieldDuration     = "duration"
	FieldIssuerDID    = "issuerDID"
	FieldLedgerIndex  = "ledgerIndex"
	FieldLedgerType   = "ledgerType"
	FieldListID       = "listID"
	FieldMessageID    = "messageID"
	FieldRetry        = "retry"
	FieldRevoked      = "revoked"
	FieldSizeKB       = "sizeKB"
	FieldSleep        = "sleep"
	FieldStatus       = "status"
	FieldStatusIndex  = "statusIndex"
	FieldUserLogLevel = "userLogLevel"
)

// WithCommand sets the Command field.
func WithCommand(command string) zap.Field {
	return zap.String(FieldCommand, command)
}

// WithDuration sets the Duration field.
func WithDuration(value time.Duration) zap.Field {
	return zap.Duration(FieldDuration, value)
}

// WithIssuerDID sets the IssuerDID field.
func WithIssuerDID(issuerDID string) zap.Field {
	return zap.String(FieldIssuerDID, issuerDID)
}

// WithLedgerIndex sets the LedgerIndex field.
func WithLedgerIndex(index string) zap.Field {
	return zap.String(FieldLedgerIndex, index)
}

// WithLedgerType sets the LedgerType field.
func WithLedgerType(ledgerType string) zap.Field {
	return zap.String(FieldLedgerType, ledgerType)
}

// WithListID sets the ListID (revocation list VC ID) field.
func WithListID(listID string) zap.Field {
	return zap.String(FieldListID, listID)
}

// WithMessageID sets the MessageID field.
func WithMessageID(messageID string) zap.Field {
	return zap.String(FieldMessageID, messageID)
}

// WithRetry sets the Retry field.
func WithRetry(retry int) zap.Field {
	return zap.Int(FieldRetry, retry)
}

// WithRevoked sets the Revoked field.
func WithRevoked(revoked bool) zap.Field {
	return zap.Bool(FieldRevoked, revoked)
}

// WithSizeKB sets the SizeKB field.
func WithSizeKB(sizeKB int) zap.Field {
	return zap.Int(FieldSizeKB, sizeKB)
}

// WithSleep sets the Sleep field.
func WithSleep(value time.Duration) zap.Field {
	return zap.Duration(FieldSleep, value)
}

// WithStatus sets the Status (credential status) field.
func WithStatus(status interface{}) zap.Field {
	return zap.Inline(NewObjectMarshaller(FieldStatus, status))
}

// WithStatusIndex sets the StatusIndex field.
func WithStatusIndex(index uint64) zap.Field {
	return zap.Uint64(FieldStatusIndex, index)
}

// WithUserLogLevel sets the UserLogLevel field.
func WithUserLogLevel(userLogLevel string) zap.Field {
	return zap.String(FieldUserLogLevel, userLogLevel)
}

// ObjectMarshaller uses reflection to marshal an object's fields.
type ObjectMarshaller struct {
	key string
	obj interface{}
}

// NewObjectMarshaller returns a new ObjectMarshaller.
func NewObjectMarshaller(key string, obj interface{}) *ObjectMarshaller {
	return &ObjectMarshaller{key: key, obj: obj}
}

// MarshalLogObject marshals the object's fields.
func (m *ObjectMarshaller) MarshalLogObject(e zapcore.ObjectEncoder) error {
	return e.AddReflected(m.key, m.obj)
}
