package model

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedScript    = errors.New("malformed script")
	ErrNoScriptPath       = errors.New("witness has no script path")
	ErrInvalidText        = errors.New("invalid utf-8 text")
	ErrPayloadDecode      = errors.New("payload decode error")
	ErrMissingField       = errors.New("missing field")
	ErrChunkTooShort      = errors.New("chunk too short")
	ErrInsufficientPushes = errors.New("insufficient pushes")
	ErrInvalidTxid        = errors.New("invalid txid")
	ErrNotFound           = errors.New("not found")
	ErrOutputOutOfRange   = errors.New("output index out of range")
	ErrInvalidSchema      = errors.New("invalid schema")
	ErrNotStamp           = errors.New("not a stamp payload")
	ErrUnsupported        = errors.New("unsupported protocol")
)

// MissingFieldError reports a chunk position beyond the extracted chunks.
type MissingFieldError struct {
	Position int
	Field    FieldName
}

func (e *MissingFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("missing field at position %d", e.Position)
	}
	return fmt.Sprintf("missing field %s at position %d", e.Field, e.Position)
}

// Is matches ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

var kinds = []struct {
	err  error
	name string
}{
	{ErrMalformedScript, "MalformedScript"},
	{ErrNoScriptPath, "NoScriptPath"},
	{ErrInvalidText, "InvalidText"},
	{ErrPayloadDecode, "PayloadDecodeError"},
	{ErrMissingField, "MissingField"},
	{ErrChunkTooShort, "ChunkTooShort"},
	{ErrInsufficientPushes, "InsufficientPushes"},
	{ErrInvalidTxid, "InvalidTxid"},
	{ErrNotFound, "NotFound"},
	{ErrOutputOutOfRange, "OutputOutOfRange"},
	{ErrInvalidSchema, "InvalidSchema"},
	{ErrNotStamp, "NotStamp"},
	{ErrUnsupported, "UnsupportedProtocol"},
}

// Kind names the taxonomy class of err. Errors outside the taxonomy come
// from the chain data provider and are reported as "Transport".
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Transport"
}
