// Package model defines domain models for metaprotocol decoding.
package model

import (
	"fmt"
	"strings"
)

type Protocol string
type Network string

var (
	// Ordinals marks envelopes tagged with the "ord" identifier.
	Ordinals Protocol = "ordinals"
	// Atomicals marks envelopes tagged with the "atom" identifier.
	Atomicals Protocol = "atomicals"
	// Stamps marks payloads carried by bare multisig output pairs.
	Stamps Protocol = "stamps"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// FieldName names a decoded envelope field.
type FieldName string

const (
	FieldProtocolName FieldName = "protocol_name"
	FieldContentType  FieldName = "content_type"
	FieldPayload      FieldName = "payload"
)

// ParseProtocol resolves a protocol by name or by its on-chain identifier.
func ParseProtocol(value string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ordinals", "ord":
		return Ordinals, nil
	case "atomicals", "atom":
		return Atomicals, nil
	case "stamps", "stamp", "src20":
		return Stamps, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, value)
	}
}

// IsEnvelope reports whether the protocol hides its data in a witness envelope.
func (p Protocol) IsEnvelope() bool {
	return p == Ordinals || p == Atomicals
}
