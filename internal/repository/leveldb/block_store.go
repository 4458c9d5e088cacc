package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/caretrust/medledger-backend/internal/model"
	"github.com/syndtr/goleveldb/leveldb"
)

const (
	blockKeyPrefix  = "block_"
	blockHashPrefix = "hash_"
	latestHeightKey = "height_latest"
)

// BlockStore persists chain blocks. Blocks are written under two keys, by
// index and by hash, with a separate latest-height meta key so startup replay
// knows where the chain ends without scanning.
type BlockStore struct {
	db      *leveldb.DB
	metrics Metrics
}

// NewBlockStore opens (or creates) the block database at path.
func NewBlockStore(path string, metrics Metrics) (*BlockStore, error) {
	if path == "" {
		return nil, errors.New("block store path is required")
	}
	if metrics == nil {
		return nil, errors.New("block store metrics is required")
	}

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open block store at %s: %w", path, err)
	}
	return &BlockStore{db: db, metrics: metrics}, nil
}

// Close releases the underlying database.
func (s *BlockStore) Close() error {
	return s.db.Close()
}

// storedBlock is the on-disk block encoding. Hashes are stored as hex
// strings so the layout stays readable with standard LevelDB tooling.
type storedBlock struct {
	Index     uint64             `json:"index"`
	Timestamp int64              `json:"timestamp"`
	Payload   model.BlockPayload `json:"payload"`
	PrevHash  string             `json:"prevHash"`
	Hash      string             `json:"hash"`
}

// SaveBlock writes a block and advances the latest-height meta key in one
// atomic batch.
func (s *BlockStore) SaveBlock(ctx context.Context, block model.Block) error {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("save_block", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(storedBlock{
		Index:     block.Index,
		Timestamp: block.Timestamp.UnixNano(),
		Payload:   block.Payload,
		PrevHash:  block.PrevHash.String(),
		Hash:      block.Hash.String(),
	})
	if err != nil {
		return fmt.Errorf("encode block %d: %w", block.Index, err)
	}

	batch := new(leveldb.Batch)
	batch.Put([]byte(blockKeyPrefix+strconv.FormatUint(block.Index, 10)), data)
	batch.Put([]byte(blockHashPrefix+block.Hash.String()), data)
	batch.Put([]byte(latestHeightKey), []byte(strconv.FormatUint(block.Index, 10)))

	if err = s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("write block %d: %w", block.Index, err)
	}
	return nil
}

// BlockByIndex loads the block stored at index.
func (s *BlockStore) BlockByIndex(ctx context.Context, index uint64) (model.Block, error) {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("block_by_index", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return model.Block{}, err
	}

	data, err := s.db.Get([]byte(blockKeyPrefix+strconv.FormatUint(index, 10)), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		err = fmt.Errorf("block %d: %w", index, model.ErrNotFound)
		return model.Block{}, err
	}
	if err != nil {
		return model.Block{}, fmt.Errorf("read block %d: %w", index, err)
	}
	return decodeBlock(data)
}

// BlockByHash loads the block stored under hash.
func (s *BlockStore) BlockByHash(ctx context.Context, hash string) (model.Block, error) {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("block_by_hash", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return model.Block{}, err
	}

	data, err := s.db.Get([]byte(blockHashPrefix+hash), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		err = fmt.Errorf("block %s: %w", hash, model.ErrNotFound)
		return model.Block{}, err
	}
	if err != nil {
		return model.Block{}, fmt.Errorf("read block %s: %w", hash, err)
	}
	return decodeBlock(data)
}

// LatestIndex returns the highest stored block index. The second return is
// false when the database holds no blocks yet.
func (s *BlockStore) LatestIndex(ctx context.Context) (uint64, bool, error) {
	started := time.Now()
	var err error
	defer func() {
		s.metrics.Observe("latest_index", err, started)
	}()

	if err = ctx.Err(); err != nil {
		return 0, false, err
	}

	data, err := s.db.Get([]byte(latestHeightKey), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		err = nil
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read latest height: %w", err)
	}

	index, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("parse latest height %q: %w", data, err)
	}
	return index, true, nil
}

func decodeBlock(data []byte) (model.Block, error) {
	var stored storedBlock
	if err := json.Unmarshal(data, &stored); err != nil {
		return model.Block{}, fmt.Errorf("decode block: %w", err)
	}

	prev, err := chainhash.NewHashFromStr(stored.PrevHash)
	if err != nil {
		return model.Block{}, fmt.Errorf("decode prev hash %q: %w", stored.PrevHash, err)
	}
	hash, err := chainhash.NewHashFromStr(stored.Hash)
	if err != nil {
		return model.Block{}, fmt.Errorf("decode hash %q: %w", stored.Hash, err)
	}

	return model.Block{
		Index:     stored.Index,
		Timestamp: time.Unix(0, stored.Timestamp).UTC(),
		Payload:   stored.Payload,
		PrevHash:  *prev,
		Hash:      *hash,
	}, nil
}
