package model

import (
	"encoding/hex"
	"time"
)

// HexBytes is a byte buffer rendered as lowercase hex in JSON.
type HexBytes []byte

func (b HexBytes) MarshalText() ([]byte, error) {
	out := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(out, b)
	return out, nil
}

func (b *HexBytes) UnmarshalText(text []byte) error {
	out := make([]byte, hex.DecodedLen(len(text)))
	n, err := hex.Decode(out, text)
	if err != nil {
		return err
	}
	*b = out[:n]
	return nil
}

// DecodedFields maps envelope field names to text or structured values.
type DecodedFields map[FieldName]any

// Text returns the field as a string when it was decoded as text.
func (f DecodedFields) Text(name FieldName) (string, bool) {
	v, ok := f[name].(string)
	return v, ok
}

// Envelope is the decoded content of a witness envelope.
type Envelope struct {
	TxID     string        `json:"txid"`
	Protocol Protocol      `json:"protocol"`
	Chunks   int           `json:"chunks"`
	Fields   DecodedFields `json:"fields"`
}

// OutputPair is the payload reassembled from two output scripts.
type OutputPair struct {
	TxID           string   `json:"txid"`
	OutputA        uint32   `json:"output_a"`
	OutputB        uint32   `json:"output_b"`
	EncodedPayload HexBytes `json:"encoded_payload"`
}

// Stamp is a decrypted SRC-20 document carried by multisig outputs.
type Stamp struct {
	TxID       string         `json:"txid"`
	SigningKey string         `json:"signing_key"`
	Outputs    []uint32       `json:"outputs"`
	Document   map[string]any `json:"document"`
}

// ScanEvent is one decoded payload found while scanning a block.
type ScanEvent struct {
	Height    uint64    `json:"height"`
	BlockTime time.Time `json:"blocktime"`
	TxIndex   int       `json:"txindex"`
	TxID      string    `json:"txhash"`
	Protocol  Protocol  `json:"protocol"`
	Payload   any       `json:"payload"`
}
