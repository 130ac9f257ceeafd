/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledger

import (
	"context"
	"errors"
	"time"
)

// ErrNoEntries is returned when a ledger index holds no usable entry.
var ErrNoEntries = errors.New("no entries")

// Message is a payload published on a ledger index.
type Message struct {
	ID      string
	Payload []byte
}

// Entry is a ledger message together with the time its payload was issued.
type Entry struct {
	Timestamp time.Time
	Payload   []byte
	MessageID string
}

// Store is an append-only log of messages grouped by index.
type Store interface {
	// Publish appends payload to index and returns the message id.
	Publish(ctx context.Context, index string, payload []byte) (string, error)
	// Messages returns the messages of index in publication order.
	Messages(ctx context.Context, index string) ([]Message, error)
}

// Newest returns the entry with the latest timestamp. When timestamps are equal
// the later entry wins.
func Newest(entries []Entry) (Entry, error) {
	if len(entries) == 0 {
		return Entry{}, ErrNoEntries
	}

	newest := entries[0]

	for _, e := range entries[1:] {
		if !e.Timestamp.Before(newest.Timestamp) {
			newest = e
		}
	}

	return newest, nil
}
