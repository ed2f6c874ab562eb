// Package script walks raw Bitcoin scripts as a sequence of typed instructions.
package script

import (
	"fmt"
	"iter"

	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
)

// Instruction is a single opcode or data push of a script.
// Data aliases the walked script and must be copied before the script is reused.
type Instruction struct {
	Opcode byte
	Data   []byte
	Push   bool
}

// IsEmptyPush reports whether the instruction pushes zero bytes (OP_0/OP_FALSE).
func (i Instruction) IsEmptyPush() bool {
	return i.Push && len(i.Data) == 0
}

// Is reports whether the instruction is the given non-push opcode.
func (i Instruction) Is(opcode byte) bool {
	return !i.Push && i.Opcode == opcode
}

func (i Instruction) String() string {
	if i.Push {
		return fmt.Sprintf("PUSH(%x)", i.Data)
	}
	name, err := txscript.DisasmString([]byte{i.Opcode})
	if err != nil {
		return fmt.Sprintf("OP_UNKNOWN%d", i.Opcode)
	}
	return name
}

// Walker lazily tokenizes a script. It is restartable via Reset.
type Walker struct {
	script    []byte
	tokenizer txscript.ScriptTokenizer
	current   Instruction
	err       error
}

// NewWalker constructs a walker positioned before the first instruction.
func NewWalker(script []byte) *Walker {
	w := &Walker{script: script}
	w.Reset()
	return w
}

// Reset rewinds the walker to the start of the script.
func (w *Walker) Reset() {
	w.tokenizer = txscript.MakeScriptTokenizer(0, w.script)
	w.current = Instruction{}
	w.err = nil
}

// Next advances to the next instruction. It returns false at the end of the
// script or on a parse failure; Err distinguishes the two.
func (w *Walker) Next() bool {
	if w.err != nil {
		return false
	}
	if !w.tokenizer.Next() {
		if err := w.tokenizer.Err(); err != nil {
			w.err = fmt.Errorf("%w: offset %d: %v", model.ErrMalformedScript, w.tokenizer.ByteIndex(), err)
		}
		return false
	}
	op := w.tokenizer.Opcode()
	w.current = Instruction{
		Opcode: op,
		Data:   w.tokenizer.Data(),
		Push:   op <= txscript.OP_PUSHDATA4,
	}
	return true
}

// Instruction returns the instruction produced by the last successful Next.
func (w *Walker) Instruction() Instruction {
	return w.current
}

// Err returns the parse failure that stopped the walk, if any.
func (w *Walker) Err() error {
	return w.err
}

// Instructions yields the instructions of script in order. A parse failure is
// yielded once as the final element.
func Instructions(script []byte) iter.Seq2[Instruction, error] {
	return func(yield func(Instruction, error) bool) {
		w := NewWalker(script)
		for w.Next() {
			if !yield(w.Instruction(), nil) {
				return
			}
		}
		if err := w.Err(); err != nil {
			yield(Instruction{}, err)
		}
	}
}

// Parse tokenizes the whole script. A malformed script yields no partial result.
func Parse(script []byte) ([]Instruction, error) {
	var out []Instruction
	for ins, err := range Instructions(script) {
		if err != nil {
			return nil, err
		}
		out = append(out, ins)
	}
	return out, nil
}
