package service

import (
	"crypto/rc4"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

type errMatcher struct {
	target error
}

func (m errMatcher) Matches(x interface{}) bool {
	if m.target == nil {
		return x == nil
	}
	err, ok := x.(error)
	return ok && errors.Is(err, m.target)
}

func (m errMatcher) String() string {
	return fmt.Sprintf("error matching %v", m.target)
}

func push(data []byte) []byte {
	if len(data) == 0 {
		return []byte{txscript.OP_0}
	}
	if len(data) < txscript.OP_PUSHDATA1 {
		return append([]byte{byte(len(data))}, data...)
	}
	return append([]byte{txscript.OP_PUSHDATA1, byte(len(data))}, data...)
}

func build(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func op(code byte) []byte {
	return []byte{code}
}

// revealTx spends a taproot output through script, with a dummy signature
// and control block around it. The spent outpoint is derived from script so
// distinct scripts give distinct txids.
func revealTx(script []byte) *wire.MsgTx {
	tx := wire.NewMsgTx(2)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: chainhash.HashH(script), Index: 0},
		Witness:          wire.TxWitness{make([]byte, 64), script, append([]byte{0xc0}, make([]byte, 32)...)},
		Sequence:         wire.MaxTxInSequenceNum,
	})
	tx.AddTxOut(wire.NewTxOut(546, build(op(txscript.OP_1), push(make([]byte, 32)))))
	return tx
}

// envelopeTx hides chunks in an OP_FALSE OP_IF branch after a key check.
func envelopeTx(chunks ...[]byte) *wire.MsgTx {
	parts := [][]byte{push(make([]byte, 32)), op(txscript.OP_CHECKSIG), push(nil), op(txscript.OP_IF)}
	for _, c := range chunks {
		parts = append(parts, push(c))
	}
	parts = append(parts, op(txscript.OP_ENDIF))
	return revealTx(build(parts...))
}

const stampPrevTxID = "50aeb77245a9483a5b077e4e7506c331dc2f628c22046e7d2b4c6ad6c6236ae1"

// stampTx carries an ARC4 obfuscated SRC-20 document in two bare multisig
// outputs.
func stampTx(t *testing.T, doc string) *wire.MsgTx {
	t.Helper()

	prev, err := chainhash.NewHashFromStr(stampPrevTxID)
	if err != nil {
		t.Fatal(err)
	}
	key, err := hex.DecodeString(stampPrevTxID)
	if err != nil {
		t.Fatal(err)
	}

	body := append([]byte("stamp:"), doc...)
	plain := binary.BigEndian.AppendUint16(nil, uint16(len(body)))
	plain = append(plain, body...)
	if len(plain) > 4*31 {
		t.Fatalf("document too long for two outputs: %d", len(plain))
	}
	plain = append(plain, make([]byte, 4*31-len(plain))...)
	c, err := rc4.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	payload := make([]byte, len(plain))
	c.XORKeyStream(payload, plain)

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(prev, 1), nil, nil))
	for i := 0; i < 2; i++ {
		k1 := append(append([]byte{0x02}, payload[i*62:i*62+31]...), 0x00)
		k2 := append(append([]byte{0x03}, payload[i*62+31:i*62+62]...), 0x00)
		k3 := append([]byte{0x02}, make([]byte, 32)...)
		tx.AddTxOut(wire.NewTxOut(546, build(op(txscript.OP_1), push(k1), push(k2), push(k3),
			op(txscript.OP_3), op(txscript.OP_CHECKMULTISIG))))
	}
	tx.AddTxOut(wire.NewTxOut(10_000, build(op(txscript.OP_0), push(make([]byte, 20)))))
	return tx
}

func utilTx(tx *wire.MsgTx) *btcutil.Tx {
	return btcutil.NewTx(tx)
}
