/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package statustype

import (
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/gjson"
	utiltime "github.com/trustbloc/did-go/doc/util/time"
	"github.com/trustbloc/vc-go/verifiable"

	"github.com/trustbloc/rl2020/pkg/doc/vc/revocationlist"
)

const (
	// DefVCContext is the base context of every verifiable credential.
	DefVCContext = "https://www.w3.org/2018/credentials/v1"

	vcType = "VerifiableCredential"
	// RevocationList2020VCType is the type of the credential carrying a revocation list.
	RevocationList2020VCType = "RevocationList2020Credential"
	// revocationList2020VCSubjectType is the subject type of revocation list VC.
	// 	revocation list VC > Subject > Type
	revocationList2020VCSubjectType = revocationlist.Type
)

// ErrInvalidListVC is returned when a payload is not a revocation list credential.
var ErrInvalidListVC = errors.New("invalid revocation list credential")

type credentialSubject struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	EncodedList string `json:"encodedList"`
}

func toVerifiableSubject(subject credentialSubject) []verifiable.Subject {
	return []verifiable.Subject{{
		ID: subject.ID,
		CustomFields: verifiable.CustomFields{
			"type":        subject.Type,
			"encodedList": subject.EncodedList,
		},
	}}
}

// CreateListVC wraps the encoded list of rl into an unsigned RevocationList2020Credential.
func CreateListVC(listVCID, issuerDID string, issued time.Time, rl *revocationlist.RevocationList,
) (*verifiable.Credential, error) {
	vcc := verifiable.CredentialContents{
		Context: []string{DefVCContext, RevocationList2020Context},
		ID:      listVCID,
		Types:   []string{vcType, RevocationList2020VCType},
		Issuer:  &verifiable.Issuer{ID: issuerDID},
		Issued:  utiltime.NewTime(issued.UTC()),
		Subject: toVerifiableSubject(credentialSubject{
			ID:          listVCID + "#list",
			Type:        revocationList2020VCSubjectType,
			EncodedList: rl.EncodedList(),
		}),
	}

	return verifiable.CreateCredential(vcc, nil)
}

// ListVCInfo is the part of a revocation list credential needed to check a status.
type ListVCInfo struct {
	ID          string
	Issuer      string
	Issued      time.Time
	EncodedList string
}

// ParseListVC reads a revocation list credential JSON without JSON-LD processing.
func ParseListVC(data []byte) (*ListVCInfo, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not a JSON document", ErrInvalidListVC)
	}

	if !hasType(gjson.GetBytes(data, "type"), RevocationList2020VCType) {
		return nil, fmt.Errorf("%w: missing type %s", ErrInvalidListVC, RevocationList2020VCType)
	}

	info := &ListVCInfo{
		ID:     gjson.GetBytes(data, "id").String(),
		Issuer: firstString(data, "issuer.id", "issuer"),
	}

	info.EncodedList = firstString(data, "credentialSubject.encodedList", "credentialSubject.0.encodedList")
	if info.EncodedList == "" {
		return nil, fmt.Errorf("%w: missing credentialSubject.encodedList", ErrInvalidListVC)
	}

	if issued := firstString(data, "issuanceDate", "validFrom"); issued != "" {
		t, err := time.Parse(time.RFC3339, issued)
		if err != nil {
			return nil, fmt.Errorf("%w: parse issuance date: %w", ErrInvalidListVC, err)
		}

		info.Issued = t
	}

	return info, nil
}

// RevocationList decodes the encoded list carried by the credential.
func (i *ListVCInfo) RevocationList() (*revocationlist.RevocationList, error) {
	return revocationlist.FromEncoded(i.ID, i.EncodedList)
}

func hasType(types gjson.Result, want string) bool {
	if !types.IsArray() {
		return types.String() == want
	}

	for _, t := range types.Array() {
		if t.String() == want {
			return true
		}
	}

	return false
}

func firstString(data []byte, paths ...string) string {
	for _, path := range paths {
		if v := gjson.GetBytes(data, path); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}

	return ""
}
