package envelope

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockinsight7000-metaprotocol/internal/metaprotocol/model"
)

// TapScript returns the script revealed by a Taproot script-path spend.
// Per BIP-341 an annex (last element starting with 0x50) is dropped first;
// the script is then the second element from the end, before the control block.
func TapScript(witness wire.TxWitness) ([]byte, error) {
	witness = removeAnnex(witness)
	if len(witness) < 2 {
		return nil, model.ErrNoScriptPath
	}
	return witness[len(witness)-2], nil
}

func removeAnnex(witness wire.TxWitness) wire.TxWitness {
	if len(witness) >= 2 {
		last := witness[len(witness)-1]
		if len(last) > 0 && last[0] == txscript.TaprootAnnexTag {
			return witness[:len(witness)-1]
		}
	}
	return witness
}
