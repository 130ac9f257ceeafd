/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ledgerstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/trustbloc/rl2020/pkg/ledger"
)

const (
	contentType = "application/jwt"
	seqWidth    = 20
	delimiter   = "/"
)

type s3Client interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	ListObjectsV2(ctx context.Context, input *s3.ListObjectsV2Input,
		opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Store keeps every ledger message as an S3 object under "<index>/". Objects of nested
// indexes such as "<index>/other/" are not part of index.
type Store struct {
	client s3Client
	bucket string
	now    func() time.Time
}

// NewStore creates S3 Store.
func NewStore(client s3Client, bucket string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		now:    time.Now,
	}
}

// NewClient creates an S3 client from the default AWS configuration. A non-empty
// endpoint switches to path-style addressing against that endpoint.
func NewClient(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Publish uploads payload as a new object of index.
func (p *Store) Publish(ctx context.Context, index string, payload []byte) (string, error) {
	messageID := fmt.Sprintf("%0*d-%s", seqWidth, p.now().UnixNano(), uuid.NewString())

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Body:        bytes.NewReader(payload),
		Key:         aws.String(resolveS3Key(index, messageID)),
		Bucket:      aws.String(p.bucket),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload message: %w", err)
	}

	return messageID, nil
}

// Messages returns the messages of index in publication order.
func (p *Store) Messages(ctx context.Context, index string) ([]ledger.Message, error) {
	keys, err := p.listKeys(ctx, resolveS3Key(index, ""))
	if err != nil {
		return nil, err
	}

	sort.Strings(keys)

	messages := make([]ledger.Message, 0, len(keys))

	for _, key := range keys {
		payload, err := p.get(ctx, key)
		if err != nil {
			return nil, err
		}

		messages = append(messages, ledger.Message{
			ID:      key[strings.LastIndex(key, delimiter)+1:],
			Payload: payload,
		})
	}

	return messages, nil
}

func (p *Store) listKeys(ctx context.Context, prefix string) ([]string, error) {
	var (
		keys  []string
		token *string
	)

	for {
		out, err := p.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(p.bucket),
			Prefix:            aws.String(prefix),
			Delimiter:         aws.String(delimiter),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list messages: %w", err)
		}

		for _, obj := range out.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}

		if out.NextContinuationToken == nil {
			return keys, nil
		}

		token = out.NextContinuationToken
	}
}

func (p *Store) get(ctx context.Context, key string) ([]byte, error) {
	out, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", key, err)
	}

	defer out.Body.Close() //nolint:errcheck

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read message body: %w", err)
	}

	return payload, nil
}

func resolveS3Key(index, messageID string) string {
	return index + delimiter + messageID
}
