package fields

import (
	"fmt"
	"unicode/utf8"

	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
)

// Decode projects chunks onto the schema fields. It never modifies chunks.
// A list too short for the layout fails with the first missing position
// before any field is decoded.
func (s *Schema) Decode(chunks [][]byte) (model.DecodedFields, error) {
	if len(chunks) < s.MinChunks() {
		for _, e := range s.entries {
			if e.Position >= len(chunks) {
				return nil, &model.MissingFieldError{Position: e.Position, Field: e.Field}
			}
		}
	}

	out := make(model.DecodedFields, len(s.entries))
	for _, e := range s.entries {
		v, err := decodeChunk(e.DecodeAs, chunks[e.Position])
		if err != nil {
			return nil, fmt.Errorf("%s field %s at position %d: %w", s.protocol, e.Field, e.Position, err)
		}
		out[e.Field] = v
	}
	return out, nil
}

func decodeChunk(as DecodeAs, chunk []byte) (any, error) {
	switch as {
	case Text:
		if !utf8.Valid(chunk) {
			return nil, model.ErrInvalidText
		}
		return string(chunk), nil
	case CBOR:
		return DecodeCBOR(chunk)
	case Bytes:
		return append([]byte{}, chunk...), nil
	default:
		return nil, fmt.Errorf("%w: unknown decoder %q", model.ErrInvalidSchema, as)
	}
}

// Registry holds the schemas known to a decoder.
type Registry struct {
	schemas map[model.Protocol]*Schema
	order   []model.Protocol
}

// NewRegistry indexes schemas by protocol. Duplicate protocols or identifiers
// are rejected.
func NewRegistry(schemas ...*Schema) (*Registry, error) {
	r := &Registry{schemas: make(map[model.Protocol]*Schema, len(schemas))}
	identifiers := make(map[string]model.Protocol, len(schemas))
	for _, s := range schemas {
		if _, dup := r.schemas[s.protocol]; dup {
			return nil, fmt.Errorf("%w: protocol %s registered twice", model.ErrInvalidSchema, s.protocol)
		}
		if s.identifier != "" {
			if other, dup := identifiers[s.identifier]; dup {
				return nil, fmt.Errorf("%w: identifier %q shared by %s and %s", model.ErrInvalidSchema, s.identifier, other, s.protocol)
			}
			identifiers[s.identifier] = s.protocol
		}
		r.schemas[s.protocol] = s
		r.order = append(r.order, s.protocol)
	}
	return r, nil
}

// DefaultRegistry returns the built-in envelope layouts.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(OrdinalsSchema, AtomicalsSchema)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the schema for protocol.
func (r *Registry) Lookup(protocol model.Protocol) (*Schema, error) {
	s, ok := r.schemas[protocol]
	if !ok {
		return nil, fmt.Errorf("%w: no envelope schema for %q", model.ErrUnsupported, protocol)
	}
	return s, nil
}

// Identify returns the schema whose on-chain identifier equals the first chunk.
func (r *Registry) Identify(chunks [][]byte) (*Schema, bool) {
	if len(chunks) == 0 {
		return nil, false
	}
	for _, p := range r.order {
		s := r.schemas[p]
		if s.identifier != "" && s.identifier == string(chunks[0]) {
			return s, true
		}
	}
	return nil, false
}

// Protocols lists registered protocols in registration order.
func (r *Registry) Protocols() []model.Protocol {
	return append([]model.Protocol(nil), r.order...)
}
