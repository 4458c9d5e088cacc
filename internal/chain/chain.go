// Package chain maintains the append-only hash-linked ledger sequence.
package chain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/caretrust/medledger-backend/internal/model"
	"go.uber.org/zap"
)

// Chain owns the ledger state. Appends are serialized: two concurrent calls
// never observe the same tip and never produce two blocks with the same
// previous hash. The chain exposes no update or delete operation.
type Chain struct {
	logger  *zap.Logger
	store   BlockStore
	metrics Metrics
	now     func() time.Time

	mu     sync.RWMutex
	blocks []model.Block
}

// New loads the chain from the store, appending the genesis block first if
// the store is empty.
func New(ctx context.Context, store BlockStore, metrics Metrics, logger *zap.Logger) (*Chain, error) {
	if store == nil {
		return nil, errors.New("block store is required")
	}
	if metrics == nil {
		return nil, errors.New("chain metrics is required")
	}

	c := &Chain{
		logger:  logger.Named("chain"),
		store:   store,
		metrics: metrics,
		now:     time.Now,
	}

	latest, found, err := store.LatestIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("load latest index: %w", err)
	}
	if !found {
		c.logger.Info("empty block store, appending genesis")
		if _, err := c.Append(ctx, model.GenesisPayload()); err != nil {
			return nil, fmt.Errorf("append genesis: %w", err)
		}
		return c, nil
	}

	c.blocks = make([]model.Block, 0, latest+1)
	for i := uint64(0); i <= latest; i++ {
		block, err := store.BlockByIndex(ctx, i)
		if err != nil {
			return nil, fmt.Errorf("load block %d: %w", i, err)
		}
		c.blocks = append(c.blocks, block)
	}
	c.metrics.SetLength(uint64(len(c.blocks)))
	c.logger.Info("chain loaded", zap.Uint64("tip", latest))

	return c, nil
}

// Append extends the chain by exactly one block and persists it before the
// block becomes visible to readers.
func (c *Chain) Append(ctx context.Context, payload model.BlockPayload) (model.Block, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.ObserveAppend(err, started)
	}()

	c.mu.Lock()
	defer c.mu.Unlock()

	block := model.Block{
		Index:     uint64(len(c.blocks)),
		Timestamp: c.now().UTC(),
		Payload:   payload,
	}
	if len(c.blocks) > 0 {
		tip := c.blocks[len(c.blocks)-1]
		block.PrevHash, err = HashBlock(tip)
		if err != nil {
			return model.Block{}, fmt.Errorf("hash tip %d: %w", tip.Index, err)
		}
	} else {
		block.PrevHash = chainhash.Hash{}
	}

	block.Hash, err = HashBlock(block)
	if err != nil {
		return model.Block{}, fmt.Errorf("hash block %d: %w", block.Index, err)
	}

	if err = c.store.SaveBlock(ctx, block); err != nil {
		return model.Block{}, fmt.Errorf("%w: persist block %d: %w", model.ErrChainUnavailable, block.Index, err)
	}

	c.blocks = append(c.blocks, block)
	c.metrics.SetLength(uint64(len(c.blocks)))
	c.logger.Debug("block appended",
		zap.Uint64("index", block.Index),
		zap.String("kind", string(payload.Kind)),
		zap.String("hash", block.Hash.String()),
	)

	return block, nil
}

// Verify rescans the whole chain, recomputing every hash from stored fields.
// No caching: a cached "valid" would go stale the moment any upstream field
// is tampered with.
func (c *Chain) Verify(_ context.Context) model.VerifyResult {
	started := time.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	result := model.VerifyResult{Valid: true, Length: uint64(len(c.blocks))}
	for i := 1; i < len(c.blocks); i++ {
		prevHash, err := HashBlock(c.blocks[i-1])
		if err != nil || c.blocks[i].PrevHash != prevHash {
			result = model.VerifyResult{FirstInvalidIndex: uint64(i), Length: result.Length}
			break
		}
		selfHash, err := HashBlock(c.blocks[i])
		if err != nil || c.blocks[i].Hash != selfHash {
			result = model.VerifyResult{FirstInvalidIndex: uint64(i), Length: result.Length}
			break
		}
	}

	c.metrics.ObserveVerify(result.Valid, result.Length, started)
	if !result.Valid {
		c.logger.Error("chain integrity violation",
			zap.Uint64("first_invalid_index", result.FirstInvalidIndex),
		)
	}
	return result
}

// BlockByIndex returns the block at index.
func (c *Chain) BlockByIndex(_ context.Context, index uint64) (model.Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index >= uint64(len(c.blocks)) {
		return model.Block{}, fmt.Errorf("block %d: %w", index, model.ErrNotFound)
	}
	return c.blocks[index], nil
}

// Length returns the number of blocks including genesis.
func (c *Chain) Length() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return uint64(len(c.blocks))
}

// Replay invokes fn for every block in order. Used to rebuild derived
// indexes at startup; fn must not call back into the chain.
func (c *Chain) Replay(fn func(model.Block) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, block := range c.blocks {
		if err := fn(block); err != nil {
			return fmt.Errorf("replay block %d: %w", block.Index, err)
		}
	}
	return nil
}
