/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trustbloc/rl2020/pkg/ledger"
	"github.com/trustbloc/rl2020/pkg/storage/redis"
)

const (
	keyPrefix = "rl2020ledger"
)

type messageDocument struct {
	ID          string    `json:"id"`
	Payload     []byte    `json:"payload"`
	PublishedAt time.Time `json:"publishedAt"`
}

func (d *messageDocument) MarshalBinary() ([]byte, error) {
	return json.Marshal(d)
}

// Store keeps every ledger index as a Redis list.
type Store struct {
	redisClient *redis.Client
}

// New creates Store.
func New(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

// Publish appends payload to the list of index.
func (s *Store) Publish(ctx context.Context, index string, payload []byte) (string, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	doc := &messageDocument{
		ID:          uuid.NewString(),
		Payload:     payload,
		PublishedAt: time.Now().UTC(),
	}

	if err := s.redisClient.API().RPush(ctxWithTimeout, resolveRedisKey(index), doc).Err(); err != nil {
		return "", fmt.Errorf("publish to %s: %w", index, err)
	}

	return doc.ID, nil
}

// Messages returns the messages of index in publication order.
func (s *Store) Messages(ctx context.Context, index string) ([]ledger.Message, error) {
	ctxWithTimeout, cancel := s.redisClient.ContextWithTimeout(ctx)
	defer cancel()

	values, err := s.redisClient.API().LRange(ctxWithTimeout, resolveRedisKey(index), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", index, err)
	}

	messages := make([]ledger.Message, 0, len(values))

	for _, v := range values {
		doc := &messageDocument{}
		if err = json.Unmarshal([]byte(v), doc); err != nil {
			return nil, fmt.Errorf("message decode failed: %w", err)
		}

		messages = append(messages, ledger.Message{ID: doc.ID, Payload: doc.Payload})
	}

	return messages, nil
}

func resolveRedisKey(index string) string {
	return fmt.Sprintf("%s-%s", keyPrefix, index)
}
