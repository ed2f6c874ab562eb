// Package fields projects envelope chunks onto named, per-protocol fields.
package fields

import (
	"fmt"
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
)

// DecodeAs selects how a chunk is interpreted.
type DecodeAs string

const (
	Text  DecodeAs = "text"
	CBOR  DecodeAs = "cbor"
	Bytes DecodeAs = "bytes"
)

// Entry binds a chunk position to a field.
type Entry struct {
	Position int
	Field    model.FieldName
	DecodeAs DecodeAs
}

// Schema is the validated field layout of one envelope protocol.
// Positions not listed are tag chunks and are ignored.
type Schema struct {
	protocol   model.Protocol
	identifier string
	entries    []Entry
}

// NewSchema validates a layout. Entries are sorted by position.
func NewSchema(protocol model.Protocol, identifier string, entries []Entry) (*Schema, error) {
	if protocol == "" {
		return nil, fmt.Errorf("%w: protocol is required", model.ErrInvalidSchema)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s has no entries", model.ErrInvalidSchema, protocol)
	}

	positions := make(map[int]struct{}, len(entries))
	names := make(map[model.FieldName]struct{}, len(entries))
	sorted := append([]Entry(nil), entries...)
	for _, e := range sorted {
		if e.Position < 0 {
			return nil, fmt.Errorf("%w: %s field %s has negative position %d", model.ErrInvalidSchema, protocol, e.Field, e.Position)
		}
		if e.Field == "" {
			return nil, fmt.Errorf("%w: %s position %d has no field name", model.ErrInvalidSchema, protocol, e.Position)
		}
		switch e.DecodeAs {
		case Text, CBOR, Bytes:
		default:
			return nil, fmt.Errorf("%w: %s field %s has unknown decoder %q", model.ErrInvalidSchema, protocol, e.Field, e.DecodeAs)
		}
		if _, dup := positions[e.Position]; dup {
			return nil, fmt.Errorf("%w: %s position %d declared twice", model.ErrInvalidSchema, protocol, e.Position)
		}
		if _, dup := names[e.Field]; dup {
			return nil, fmt.Errorf("%w: %s field %s declared twice", model.ErrInvalidSchema, protocol, e.Field)
		}
		positions[e.Position] = struct{}{}
		names[e.Field] = struct{}{}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	return &Schema{protocol: protocol, identifier: identifier, entries: sorted}, nil
}

// MustSchema is NewSchema for built-in layouts.
func MustSchema(protocol model.Protocol, identifier string, entries []Entry) *Schema {
	s, err := NewSchema(protocol, identifier, entries)
	if err != nil {
		panic(err)
	}
	return s
}

// Protocol returns the protocol the schema decodes.
func (s *Schema) Protocol() model.Protocol {
	return s.protocol
}

// Identifier returns the marker the protocol pushes as its first chunk on chain.
func (s *Schema) Identifier() string {
	return s.identifier
}

// Entries returns a copy of the layout in position order.
func (s *Schema) Entries() []Entry {
	return append([]Entry(nil), s.entries...)
}

// MinChunks is the number of chunks needed to satisfy every entry.
func (s *Schema) MinChunks() int {
	return s.entries[len(s.entries)-1].Position + 1
}

var (
	// OrdinalsSchema follows the ord layout: tag chunks (content type tag,
	// body separator) sit between the fields at positions 1 and 3.
	OrdinalsSchema = MustSchema(model.Ordinals, "ord", []Entry{
		{Position: 0, Field: model.FieldProtocolName, DecodeAs: Text},
		{Position: 2, Field: model.FieldContentType, DecodeAs: Text},
		{Position: 4, Field: model.FieldPayload, DecodeAs: Text},
	})

	// AtomicalsSchema carries the operation as content type and a CBOR payload.
	AtomicalsSchema = MustSchema(model.Atomicals, "atom", []Entry{
		{Position: 0, Field: model.FieldProtocolName, DecodeAs: Text},
		{Position: 1, Field: model.FieldContentType, DecodeAs: Text},
		{Position: 2, Field: model.FieldPayload, DecodeAs: CBOR},
	})
)
