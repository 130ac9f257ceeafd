/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memlog

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/trustbloc/rl2020/pkg/ledger"
)

// Log is an in-memory ledger.Store.
type Log struct {
	mu      sync.RWMutex
	indexes map[string][]ledger.Message
}

// New returns an empty log.
func New() *Log {
	return &Log{indexes: map[string][]ledger.Message{}}
}

// Publish appends payload to index.
func (l *Log) Publish(_ context.Context, index string, payload []byte) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := ledger.Message{
		ID:      uuid.NewString(),
		Payload: append([]byte{}, payload...),
	}

	l.indexes[index] = append(l.indexes[index], msg)

	return msg.ID, nil
}

// Messages returns copies of the messages published on index.
func (l *Log) Messages(_ context.Context, index string) ([]ledger.Message, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return lo.Map(l.indexes[index], func(m ledger.Message, _ int) ledger.Message {
		return ledger.Message{ID: m.ID, Payload: append([]byte{}, m.Payload...)}
	}), nil
}
