/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
	"github.com/trustbloc/rl2020/pkg/rlmanager"
	"github.com/trustbloc/rl2020/pkg/storage/mongodb"
)

const (
	collectionName             = "rl2020_lists"
	mongoDBDocumentIDFieldName = "_id"
)

type listDocument struct {
	ID        string    `bson:"_id,omitempty"`
	Record    string    `bson:"record"`
	NextIndex int64     `bson:"nextIndex"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// Store keeps revocation lists in MongoDB in their compressed record form.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store.
func NewStore(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Put upserts record keyed by its list id.
func (s *Store) Put(ctx context.Context, record *rlmanager.ListRecord) error {
	encoded, err := revocationlist.CompressEncode(record.List)
	if err != nil {
		return err
	}

	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	collection := s.mongoClient.Database().Collection(collectionName)

	_, err = collection.UpdateByID(ctxWithTimeout, record.List.ID(), bson.M{
		"$set": listDocument{
			Record:    encoded,
			NextIndex: int64(record.NextIndex),
			UpdatedAt: time.Now().UTC(),
		},
	}, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("revocation list upsert failed: %w", err)
	}

	return nil
}

// Get returns the record of listID or rlmanager.ErrDataNotFound.
func (s *Store) Get(ctx context.Context, listID string) (*rlmanager.ListRecord, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	collection := s.mongoClient.Database().Collection(collectionName)

	doc := &listDocument{}

	err := collection.FindOne(ctxWithTimeout, bson.M{mongoDBDocumentIDFieldName: listID}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, rlmanager.ErrDataNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("revocation list find failed: %w", err)
	}

	list, err := revocationlist.DecodeDecompress(doc.Record)
	if err != nil {
		return nil, fmt.Errorf("decode revocation list %s: %w", listID, err)
	}

	return &rlmanager.ListRecord{List: list, NextIndex: uint64(doc.NextIndex)}, nil
}
