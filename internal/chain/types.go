package chain

import (
	"context"
	"time"

	"github.com/caretrust/medledger-backend/internal/model"
)

type (
	// BlockStore persists blocks durably. The chain writes through it on
	// every append and replays it once at startup.
	BlockStore interface {
		SaveBlock(ctx context.Context, block model.Block) error
		BlockByIndex(ctx context.Context, index uint64) (model.Block, error)
		LatestIndex(ctx context.Context) (uint64, bool, error)
	}

	// Metrics tracks chain operations.
	Metrics interface {
		ObserveAppend(err error, started time.Time)
		ObserveVerify(valid bool, length uint64, started time.Time)
		SetLength(length uint64)
	}
)
