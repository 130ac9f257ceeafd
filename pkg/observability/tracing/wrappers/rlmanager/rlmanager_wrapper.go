/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package rlmanager

//go:generate mockgen -destination gomocks_test.go -package rlmanager . Service

import (
	"context"
	"strconv"
	"time"

	"github.com/trustbloc/vc-go/verifiable"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
	"github.com/trustbloc/rl2020/pkg/doc/vc/statustype"
	"github.com/trustbloc/rl2020/pkg/rlmanager"
)

type Service rlmanager.ServiceInterface

type Wrapper struct {
	svc    Service
	tracer trace.Tracer
}

func Wrap(svc Service, tracer trace.Tracer) *Wrapper {
	return &Wrapper{svc: svc, tracer: tracer}
}

func (w *Wrapper) CreateStatusEntry(ctx context.Context) (*statustype.RevocationList2020Status, error) {
	ctx, span := w.tracer.Start(ctx, "rlmanager.CreateStatusEntry")
	defer span.End()

	status, err := w.svc.CreateStatusEntry(ctx)
	if err != nil {
		return nil, err
	}

	if index, indexErr := status.Index(); indexErr == nil {
		span.SetAttributes(attribute.String("status_index", strconv.FormatUint(uint64(index), 10)))
	}

	return status, nil
}

func (w *Wrapper) UpdateStatus(ctx context.Context, status *verifiable.TypedID, revoked bool) error {
	ctx, span := w.tracer.Start(ctx, "rlmanager.UpdateStatus")
	defer span.End()

	if status != nil {
		span.SetAttributes(attribute.String("status_id", status.ID))
	}

	span.SetAttributes(attribute.Bool("revoked", revoked))

	return w.svc.UpdateStatus(ctx, status, revoked)
}

func (w *Wrapper) PublishList(ctx context.Context, issued time.Time) (string, error) {
	ctx, span := w.tracer.Start(ctx, "rlmanager.PublishList")
	defer span.End()

	span.SetAttributes(attribute.String("issued", issued.UTC().Format(time.RFC3339)))

	messageID, err := w.svc.PublishList(ctx, issued)
	if err != nil {
		return "", err
	}

	span.SetAttributes(attribute.String("message_id", messageID))

	return messageID, nil
}

func (w *Wrapper) RevocationList(ctx context.Context) (*revocationlist.RevocationList, error) {
	ctx, span := w.tracer.Start(ctx, "rlmanager.RevocationList")
	defer span.End()

	return w.svc.RevocationList(ctx)
}
