package envelope

import (
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/script"
)

// Chunks is the ordered list of pushes found inside an envelope branch.
// Position N is field N; callers must not modify the buffers.
type Chunks [][]byte

// Len returns the number of chunks.
func (c Chunks) Len() int {
	return len(c)
}

// At returns the chunk at position, or false when the envelope is too short.
func (c Chunks) At(position int) ([]byte, bool) {
	if position < 0 || position >= len(c) {
		return nil, false
	}
	return c[position], true
}

// Extract walks a witness script and returns the pushes of its first envelope
// branch. Spans opened after the first branch closes are ignored, but the
// whole script is still tokenized so a malformed tail fails the extraction.
// A script without an envelope yields empty chunks and no error.
func Extract(tapscript []byte) (Chunks, error) {
	chunks := Chunks{}
	state := Idle
	opened, closed := false, false

	w := script.NewWalker(tapscript)
	for w.Next() {
		if closed {
			continue
		}
		ins := w.Instruction()
		next, collect := Transition(state, ins)
		if collect {
			chunks = append(chunks, append([]byte{}, ins.Data...))
		}
		if next == InBranch {
			opened = true
		}
		if opened && next == Idle {
			closed = true
		}
		state = next
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return chunks, nil
}

// ExtractWitness selects the script-path script of witness and extracts its
// envelope chunks.
func ExtractWitness(witness wire.TxWitness) (Chunks, error) {
	tapscript, err := TapScript(witness)
	if err != nil {
		return nil, err
	}
	return Extract(tapscript)
}
