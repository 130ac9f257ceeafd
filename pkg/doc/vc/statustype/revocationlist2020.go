/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statustype

import (
	"strconv"

	"github.com/trustbloc/did-go/doc/did"
	"github.com/trustbloc/vc-go/verifiable"

	vcapi "github.com/trustbloc/rl2020/pkg/doc/vc"
)

const (
	// RevocationListIndex identifies the bit position of the status value of the VC.
	//  VC > Status > CustomFields key.
	RevocationListIndex = "revocationListIndex"
	// RevocationListCredential stores the link to the revocation list VC.
	//  VC > Status > CustomFields key.
	RevocationListCredential = "revocationListCredential"

	// RevocationList2020Context is the JSON-LD context of Revocation List 2020.
	RevocationList2020Context = "https://w3id.org/vc-revocation-list-2020/v1"
)

// RevocationList2020Status is the credential status of a credential tracked in a
// RevocationList2020. Doc: https://w3c-ccg.github.io/vc-status-rl-2020/
type RevocationList2020Status struct {
	status *verifiable.TypedID
}

// NewRevocationList2020Status creates a status pointing at index of the list published
// as listCredential. The index is stored in its decimal string form.
func NewRevocationList2020Status(locator string, index uint32, listCredential string) *RevocationList2020Status {
	return &RevocationList2020Status{
		status: &verifiable.TypedID{
			ID:   locator,
			Type: string(vcapi.RevocationList2020VCStatus),
			CustomFields: verifiable.CustomFields{
				RevocationListIndex:      strconv.FormatUint(uint64(index), 10),
				RevocationListCredential: listCredential,
			},
		},
	}
}

// FromTypedID validates a generic credential status and wraps it.
func FromTypedID(vcStatus *verifiable.TypedID) (*RevocationList2020Status, error) {
	if vcStatus == nil {
		return nil, newInvalidStatusError(ReasonTypeMismatch, nil, "vc status not exist")
	}

	if vcStatus.Type != string(vcapi.RevocationList2020VCStatus) {
		return nil, newInvalidStatusError(ReasonTypeMismatch, nil,
			"expected type '%s', got '%s'", vcapi.RevocationList2020VCStatus, vcStatus.Type)
	}

	if vcStatus.CustomFields[RevocationListIndex] == nil {
		return nil, newInvalidStatusError(ReasonMissingIndex, nil,
			"missing required property '%s'", RevocationListIndex)
	}

	if vcStatus.CustomFields[RevocationListCredential] == nil {
		return nil, newInvalidStatusError(ReasonMissingListCredential, nil,
			"missing required property '%s'", RevocationListCredential)
	}

	return &RevocationList2020Status{status: vcStatus}, nil
}

// TypedID returns the generic form of the status.
func (s *RevocationList2020Status) TypedID() *verifiable.TypedID {
	return s.status
}

// Index returns the index of the credential in the revocation list.
func (s *RevocationList2020Status) Index() (uint32, error) {
	value, ok := s.status.CustomFields[RevocationListIndex]
	if !ok || value == nil {
		return 0, newInvalidStatusError(ReasonMissingIndex, nil,
			"missing required property '%s'", RevocationListIndex)
	}

	raw, ok := value.(string)
	if !ok {
		return 0, newInvalidStatusError(ReasonInvalidIndex, nil,
			"expected %s to be an unsigned 32-bit integer expressed as a string", RevocationListIndex)
	}

	index, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, newInvalidStatusError(ReasonInvalidIndex, err,
			"expected %s to be an unsigned 32-bit integer", RevocationListIndex)
	}

	return uint32(index), nil
}

// ListCredential returns the locator of the published revocation list VC.
func (s *RevocationList2020Status) ListCredential() (string, error) {
	listCredential, ok := s.status.CustomFields[RevocationListCredential].(string)
	if !ok || listCredential == "" {
		return "", newInvalidStatusError(ReasonMissingListCredential, nil,
			"expected %s to be a non-empty string", RevocationListCredential)
	}

	return listCredential, nil
}

// LocatorID parses the status id as a DID URL.
func (s *RevocationList2020Status) LocatorID() (*did.DIDURL, error) {
	didURL, err := did.ParseDIDURL(s.status.ID)
	if err != nil {
		return nil, newInvalidStatusError(ReasonMalformedLocator, err, "invalid DID Url '%s'", s.status.ID)
	}

	return didURL, nil
}
