package fields

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/ugorji/go/codec"
)

var cborHandle = &codec.CborHandle{}

// DecodeCBOR decodes exactly one CBOR data item. Truncated input, malformed
// input and trailing bytes after the item all fail with model.ErrPayloadDecode.
// Maps are returned as map[string]any; maps with non-text keys are rejected.
func DecodeCBOR(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", model.ErrPayloadDecode)
	}

	var v any
	dec := codec.NewDecoderBytes(data, cborHandle)
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrPayloadDecode, err)
	}
	if n := dec.NumBytesRead(); n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after value", model.ErrPayloadDecode, len(data)-n)
	}
	out, err := normalize(v)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeCBOR encodes v with the same handle used for decoding.
func EncodeCBOR(v any) ([]byte, error) {
	var out []byte
	if err := codec.NewEncoderBytes(&out, cborHandle).Encode(v); err != nil {
		return nil, err
	}
	return out, nil
}

func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: map key %v of type %T is not text", model.ErrPayloadDecode, k, k)
			}
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			out[key] = n
		}
		return out, nil
	case map[string]any:
		for k, val := range t {
			n, err := normalize(val)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case []any:
		for i := range t {
			n, err := normalize(t[i])
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	default:
		return v, nil
	}
}
