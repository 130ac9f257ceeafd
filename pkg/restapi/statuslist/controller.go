/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statuslist

//go:generate mockgen -destination controller_mocks_test.go -package statuslist_test -source=controller.go -mock_names statusService=MockStatusService

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trustbloc/rl2020/pkg/service/statuscheck"
)

const (
	listPath  = "/revocation-lists/:index"
	entryPath = "/revocation-lists/:index/entries/:bit"

	jwtContentType = "application/jwt"
)

type statusService interface {
	LatestListVC(ctx context.Context, index string) (*statuscheck.ListVC, error)
}

// Config holds the dependencies of Controller.
type Config struct {
	StatusService statusService
}

// Controller serves revocation lists published on the ledger.
type Controller struct {
	statusService statusService
}

// EntryResponse is the state of one list entry.
type EntryResponse struct {
	Index     uint64    `json:"index"`
	Revoked   bool      `json:"revoked"`
	ListVC    string    `json:"listVC"`
	Issued    time.Time `json:"issued"`
	MessageID string    `json:"messageID"`
}

// NewController returns a controller.
func NewController(config *Config) *Controller {
	return &Controller{statusService: config.StatusService}
}

// Register adds the controller routes to e.
func (c *Controller) Register(e *echo.Echo) {
	e.GET(listPath, c.GetRevocationList)
	e.GET(entryPath, c.GetEntry)
}

// GetRevocationList returns the newest signed list credential of a ledger index.
// GET /revocation-lists/{index}.
func (c *Controller) GetRevocationList(ctx echo.Context) error {
	latest, err := c.statusService.LatestListVC(ctx.Request().Context(), ctx.Param("index"))
	if err != nil {
		return err
	}

	return ctx.Blob(http.StatusOK, jwtContentType, latest.Record)
}

// GetEntry reports whether one bit of the newest list of a ledger index is set.
// GET /revocation-lists/{index}/entries/{bit}.
func (c *Controller) GetEntry(ctx echo.Context) error {
	bit, err := strconv.ParseUint(ctx.Param("bit"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid entry index %q", ctx.Param("bit")))
	}

	latest, err := c.statusService.LatestListVC(ctx.Request().Context(), ctx.Param("index"))
	if err != nil {
		return err
	}

	rl, err := latest.Info.RevocationList()
	if err != nil {
		return fmt.Errorf("decode revocation list: %w", err)
	}

	revoked, err := rl.IsRevoked(bit)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, &EntryResponse{
		Index:     bit,
		Revoked:   revoked,
		ListVC:    latest.Info.ID,
		Issued:    latest.Info.Issued,
		MessageID: latest.MessageID,
	})
}
