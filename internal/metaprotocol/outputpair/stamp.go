package outputpair

import (
	"bytes"
	"crypto/rc4"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/script"
)

var stampPrefix = []byte("stamp:")

// MultisigOutputs returns the indexes of the first two outputs whose script
// contains OP_CHECKMULTISIG.
func MultisigOutputs(tx *wire.MsgTx) ([]int, error) {
	var idx []int
	for i, out := range tx.TxOut {
		if len(idx) == pushesPerScript {
			break
		}
		ok, err := hasCheckMultisig(out.PkScript)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		if ok {
			idx = append(idx, i)
		}
	}
	if len(idx) < pushesPerScript {
		return nil, fmt.Errorf("%w: %d multisig outputs", model.ErrNotStamp, len(idx))
	}
	return idx, nil
}

func hasCheckMultisig(pkScript []byte) (bool, error) {
	for ins, err := range script.Instructions(pkScript) {
		if err != nil {
			return false, err
		}
		if ins.Is(txscript.OP_CHECKMULTISIG) {
			return true, nil
		}
	}
	return false, nil
}

// SigningKey is the key stamps are obfuscated with: the displayed txid of the
// output spent by the first input, hex decoded.
func SigningKey(tx *wire.MsgTx) ([]byte, error) {
	if len(tx.TxIn) == 0 {
		return nil, fmt.Errorf("%w: transaction has no inputs", model.ErrNotStamp)
	}
	return hex.DecodeString(tx.TxIn[0].PreviousOutPoint.Hash.String())
}

// DecodeStamp decrypts an output-pair payload and parses its JSON document.
// The plaintext is a 2-byte big-endian length, the "stamp:" prefix and the
// document; the length covers prefix and document.
func DecodeStamp(payload, signingKey []byte) (map[string]any, error) {
	if len(payload) < 2+len(stampPrefix) {
		return nil, fmt.Errorf("%w: payload has %d bytes", model.ErrNotStamp, len(payload))
	}
	cipher, err := rc4.NewCipher(signingKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNotStamp, err)
	}
	plain := make([]byte, len(payload))
	cipher.XORKeyStream(plain, payload)

	body := plain[2:]
	if n := int(binary.BigEndian.Uint16(plain)); n >= len(stampPrefix) && n <= len(body) {
		body = body[:n]
	}
	if !bytes.HasPrefix(body, stampPrefix) {
		return nil, model.ErrNotStamp
	}
	body = bytes.TrimRight(body[len(stampPrefix):], "\x00")

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrPayloadDecode, err)
	}
	return doc, nil
}
