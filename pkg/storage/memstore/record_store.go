/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
	"github.com/trustbloc/rl2020/pkg/rlmanager"
)

type entry struct {
	record    string
	nextIndex uint64
}

// RecordStore keeps list records in memory in their compressed record form.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]entry
}

// NewRecordStore returns an empty store.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: map[string]entry{}}
}

// Get returns the record stored for listID.
func (s *RecordStore) Get(_ context.Context, listID string) (*rlmanager.ListRecord, error) {
	s.mu.RLock()
	e, ok := s.records[listID]
	s.mu.RUnlock()

	if !ok {
		return nil, rlmanager.ErrDataNotFound
	}

	list, err := revocationlist.DecodeDecompress(e.record)
	if err != nil {
		return nil, fmt.Errorf("decode record %s: %w", listID, err)
	}

	return &rlmanager.ListRecord{List: list, NextIndex: e.nextIndex}, nil
}

// Put stores record under the id of its list.
func (s *RecordStore) Put(_ context.Context, record *rlmanager.ListRecord) error {
	encoded, err := revocationlist.CompressEncode(record.List)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[record.List.ID()] = entry{record: encoded, nextIndex: record.NextIndex}

	return nil
}
