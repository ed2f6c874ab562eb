// Package outputpair reassembles payloads split across the pushes of two
// sibling transaction outputs.
package outputpair

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/script"
)

const pushesPerScript = 2

// Extract concatenates the framed pushes of two output scripts. From each
// script the first two pushes are taken, their first and last byte are
// stripped, and the remainders are appended in script order, scriptA first.
// Non-push opcodes are skipped. Neither script is modified.
func Extract(scriptA, scriptB []byte) ([]byte, error) {
	var out []byte
	for i, s := range [][]byte{scriptA, scriptB} {
		var err error
		out, err = appendPushes(out, s)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
	}
	return out, nil
}

func appendPushes(dst, s []byte) ([]byte, error) {
	taken := 0
	w := script.NewWalker(s)
	for taken < pushesPerScript && w.Next() {
		ins := w.Instruction()
		if !ins.Push {
			continue
		}
		if len(ins.Data) < 2 {
			return nil, fmt.Errorf("%w: push %d has %d bytes", model.ErrChunkTooShort, taken, len(ins.Data))
		}
		dst = append(dst, ins.Data[1:len(ins.Data)-1]...)
		taken++
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	if taken < pushesPerScript {
		return nil, fmt.Errorf("%w: found %d of %d", model.ErrInsufficientPushes, taken, pushesPerScript)
	}
	return dst, nil
}
