package chain

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/caretrust/medledger-backend/internal/model"
)

// blockHeader is the exact hashed encoding of a block. Field order and the
// unix-nano timestamp are frozen; recomputing the hash from stored fields
// must reproduce the stored hash for any valid block.
type blockHeader struct {
	Index     uint64             `json:"index"`
	Timestamp int64              `json:"timestamp"`
	Payload   model.BlockPayload `json:"payload"`
	PrevHash  string             `json:"prev_hash"`
}

// HashBlock computes the double-SHA256 hash of a block from its stored fields.
func HashBlock(b model.Block) (chainhash.Hash, error) {
	header := blockHeader{
		Index:     b.Index,
		Timestamp: b.Timestamp.UTC().UnixNano(),
		Payload:   b.Payload,
		PrevHash:  b.PrevHash.String(),
	}
	encoded, err := json.Marshal(header)
	if err != nil {
		return chainhash.Hash{}, fmt.Errorf("encode block header: %w", err)
	}
	return chainhash.DoubleHashH(encoded), nil
}
