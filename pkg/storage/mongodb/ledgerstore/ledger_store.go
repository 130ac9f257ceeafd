/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trustbloc/rl2020/pkg/ledger"
	"github.com/trustbloc/rl2020/pkg/storage/mongodb"
)

const (
	collectionName = "rl2020_ledger"
	indexFieldName = "index"
	seqFieldName   = "seq"
)

type messageDocument struct {
	ID          string    `bson:"_id"`
	Index       string    `bson:"index"`
	Seq         int64     `bson:"seq"`
	Payload     []byte    `bson:"payload"`
	PublishedAt time.Time `bson:"publishedAt"`
}

// Store keeps ledger messages in a MongoDB collection.
type Store struct {
	mongoClient *mongodb.Client
}

// NewStore creates Store.
func NewStore(mongoClient *mongodb.Client) *Store {
	return &Store{mongoClient: mongoClient}
}

// Publish inserts payload as a new message of index.
func (s *Store) Publish(ctx context.Context, index string, payload []byte) (string, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()

	doc := &messageDocument{
		ID:          uuid.NewString(),
		Index:       index,
		Seq:         now.UnixNano(),
		Payload:     payload,
		PublishedAt: now,
	}

	collection := s.mongoClient.Database().Collection(collectionName)

	if _, err := collection.InsertOne(ctxWithTimeout, doc); err != nil {
		return "", fmt.Errorf("publish to %s: %w", index, err)
	}

	return doc.ID, nil
}

// Messages returns the messages of index ordered by publication.
func (s *Store) Messages(ctx context.Context, index string) ([]ledger.Message, error) {
	ctxWithTimeout, cancel := s.mongoClient.ContextWithTimeout(ctx)
	defer cancel()

	collection := s.mongoClient.Database().Collection(collectionName)

	cursor, err := collection.Find(ctxWithTimeout,
		bson.M{indexFieldName: index},
		options.Find().SetSort(bson.D{{Key: seqFieldName, Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("find messages of %s: %w", index, err)
	}

	var docs []messageDocument

	if err = cursor.All(ctxWithTimeout, &docs); err != nil {
		return nil, fmt.Errorf("decode messages of %s: %w", index, err)
	}

	messages := make([]ledger.Message, 0, len(docs))

	for _, doc := range docs {
		messages = append(messages, ledger.Message{ID: doc.ID, Payload: doc.Payload})
	}

	return messages, nil
}
