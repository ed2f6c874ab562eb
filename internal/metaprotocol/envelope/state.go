// Package envelope isolates the pushes hidden in an OP_FALSE OP_IF ... OP_ENDIF
// branch of a Taproot script-path script.
package envelope

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/script"
)

// State is the position of the extractor relative to an envelope branch.
type State uint8

const (
	Idle State = iota
	ZeroSeen
	InBranch
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case ZeroSeen:
		return "zero_seen"
	case InBranch:
		return "in_branch"
	default:
		return "unknown"
	}
}

// Transition computes the next state for ins and whether ins is an envelope
// chunk that must be collected.
//
// Once an empty push is seen the marker stays armed until OP_IF opens the
// branch or OP_ENDIF resets it.
func Transition(s State, ins script.Instruction) (State, bool) {
	if ins.Is(txscript.OP_ENDIF) {
		return Idle, false
	}
	switch s {
	case InBranch:
		return InBranch, ins.Push
	case ZeroSeen:
		if ins.Is(txscript.OP_IF) {
			return InBranch, false
		}
		return ZeroSeen, false
	default:
		if ins.IsEmptyPush() {
			return ZeroSeen, false
		}
		return Idle, false
	}
}
